package paymentrequesthandler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"uni-payments-backend/lib/notify"
	requesthistorystore "uni-payments-backend/lib/payment-request/history-store"
	paymentrequeststore "uni-payments-backend/lib/payment-request/store"
	usersstore "uni-payments-backend/lib/users/store"
	"uni-payments-backend/models"
	paymentapimodels "uni-payments-backend/models/api/payment"
	dbmodels "uni-payments-backend/models/db"
)

type fakeStore struct {
	created    *dbmodels.PaymentRequest
	byID       map[string]*dbmodels.PaymentRequest
	updateRows int64
	expected   models.RequestStatus
	updMap     map[string]interface{}
}

func (f *fakeStore) WithTx(tx *gorm.DB) paymentrequeststore.Provider {
	return f
}

func (f *fakeStore) Create(rec dbmodels.PaymentRequest) (string, error) {
	rec.ID = "req-new"
	f.created = &rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.PaymentRequest, error) {
	return f.byID[id], nil
}

func (f *fakeStore) UpdateStatus(id string, expected models.RequestStatus, updMap map[string]interface{}) (int64, error) {
	f.expected = expected
	f.updMap = updMap
	return f.updateRows, nil
}

func (f *fakeStore) List(filter paymentrequeststore.ListFilter, page, limit int) ([]dbmodels.PaymentRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeStore) ListCreatedBetween(from, to time.Time) ([]dbmodels.PaymentRequest, error) {
	return nil, nil
}

type fakeHistoryStore struct {
	rows []dbmodels.RequestStatusHistory
}

func (f *fakeHistoryStore) WithTx(tx *gorm.DB) requesthistorystore.Provider {
	return f
}

func (f *fakeHistoryStore) Create(rec dbmodels.RequestStatusHistory) (string, error) {
	f.rows = append(f.rows, rec)
	return "hist-1", nil
}

func (f *fakeHistoryStore) List(requestID string) ([]dbmodels.RequestStatusHistory, error) {
	return f.rows, nil
}

type fakeUsersStore struct {
	byID    map[string]*dbmodels.PortalUser
	updMaps []map[string]interface{}
}

func (f *fakeUsersStore) WithTx(tx *gorm.DB) usersstore.Provider {
	return f
}

func (f *fakeUsersStore) Create(rec dbmodels.PortalUser) (string, error) { return "", nil }
func (f *fakeUsersStore) Update(string, map[string]interface{}) error    { return nil }
func (f *fakeUsersStore) UpdateByEmail(email string, updMap map[string]interface{}) error {
	f.updMaps = append(f.updMaps, updMap)
	return nil
}
func (f *fakeUsersStore) Delete(string) error                                         { return nil }
func (f *fakeUsersStore) GetList(page, limit int) ([]dbmodels.PortalUser, error)      { return nil, nil }
func (f *fakeUsersStore) ExistByEmail(string) (bool, error)                           { return false, nil }
func (f *fakeUsersStore) FindByEmail(email string) (*dbmodels.PortalUser, error)      { return nil, nil }
func (f *fakeUsersStore) GetByID(userID string) (*dbmodels.PortalUser, error) {
	return f.byID[userID], nil
}

type fakeDepartmentStore struct {
	byID map[string]*dbmodels.Department
}

func (f *fakeDepartmentStore) Create(rec dbmodels.Department) (string, error)    { return "", nil }
func (f *fakeDepartmentStore) Update(string, map[string]interface{}) error       { return nil }
func (f *fakeDepartmentStore) GetByCode(code string) (*dbmodels.Department, error) {
	return nil, nil
}
func (f *fakeDepartmentStore) List() ([]dbmodels.Department, error) { return nil, nil }
func (f *fakeDepartmentStore) Delete(string) error                  { return nil }
func (f *fakeDepartmentStore) GetByID(id string) (*dbmodels.Department, error) {
	return f.byID[id], nil
}

type fakeNotifier struct {
	sent []sentNotice
}

type sentNotice struct {
	to   string
	kind notify.TemplateKind
}

func (f *fakeNotifier) Notify(to string, kind notify.TemplateKind, snap notify.Snapshot) {
	f.sent = append(f.sent, sentNotice{to: to, kind: kind})
}

type fakeOtp struct {
	consumed []string
	err      error
}

func (f *fakeOtp) Send(email string, purpose models.OtpPurpose, requestID string) error {
	return nil
}

func (f *fakeOtp) Consume(tx *gorm.DB, email string, purpose models.OtpPurpose, requestID, code string) error {
	if f.err != nil {
		return f.err
	}
	f.consumed = append(f.consumed, code)
	return nil
}

type fakeFiles struct {
	stored map[string][]byte
	getErr error
}

func (f *fakeFiles) UploadVoucher(ctx context.Context, requestID string, file []byte) error {
	f.stored[requestID] = file
	return nil
}

func (f *fakeFiles) GetVoucher(ctx context.Context, requestID string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored[requestID], nil
}

func getTestInstance() (impl, *fakeStore, *fakeHistoryStore, *fakeNotifier) {
	staff := &dbmodels.PortalUser{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "staff@uni.example",
		DepartmentID: "dep-eie",
		Role:         models.UserRoleStaff,
	}
	staff.ID = "user-staff"
	dept := &dbmodels.Department{
		Code:      "eie",
		Name:      "Electrical Engineering",
		HeadEmail: "hod.eie@uni.example",
	}
	dept.ID = "dep-eie"
	store := &fakeStore{byID: map[string]*dbmodels.PaymentRequest{}, updateRows: 1}
	historyStore := &fakeHistoryStore{}
	notifier := &fakeNotifier{}
	i := impl{
		store:           store,
		historyStore:    historyStore,
		usersStore:      &fakeUsersStore{byID: map[string]*dbmodels.PortalUser{"user-staff": staff}},
		departmentStore: &fakeDepartmentStore{byID: map[string]*dbmodels.Department{"dep-eie": dept}},
		notifier:        notifier,
		otp:             &fakeOtp{},
		files:           &fakeFiles{stored: map[string][]byte{}},
		financeEmail:    financeEmail,
		transact: func(fc func(tx *gorm.DB) error) error {
			return fc(nil)
		},
	}
	return i, store, historyStore, notifier
}

func TestSubmit(t *testing.T) {
	formData := json.RawMessage(`{"amount": 120.50, "purpose": "stationery"}`)

	t.Run(`submit check`, func(t *testing.T) {
		i, store, historyStore, notifier := getTestInstance()
		id, err := i.Submit("user-staff", paymentapimodels.SubmitData{
			FormType: models.FormTypePettyCash,
			FormData: formData,
		})
		require.Nil(t, err)
		require.Equal(t, "req-new", id)

		require.NotNil(t, store.created)
		require.Equal(t, models.RequestStatusPendingHodApproval, store.created.Status)
		require.Equal(t, "hod.eie@uni.example", store.created.CurrentApproverEmail)
		require.Equal(t, "staff@uni.example", store.created.SubmitterEmail)
		require.Equal(t, "John Doe", store.created.SubmitterName)
		require.Equal(t, "dep-eie", store.created.DepartmentID)
		require.Equal(t, []byte(formData), store.created.FormData)

		require.Len(t, historyStore.rows, 1)
		require.Equal(t, models.RequestStatusPendingHodApproval, historyStore.rows[0].ToStatus)
		require.Equal(t, models.UserRoleStaff, historyStore.rows[0].ActorRole)

		require.Len(t, notifier.sent, 2)
		require.Equal(t, "staff@uni.example", notifier.sent[0].to)
		require.Equal(t, notify.KindSubmitted, notifier.sent[0].kind)
		require.Equal(t, "hod.eie@uni.example", notifier.sent[1].to)
		require.Equal(t, notify.KindHodApprovalNeeded, notifier.sent[1].kind)
	})

	t.Run(`unknown submitter check`, func(t *testing.T) {
		i, _, _, _ := getTestInstance()
		_, err := i.Submit("user-ghost", paymentapimodels.SubmitData{
			FormType: models.FormTypePettyCash,
			FormData: formData,
		})
		require.NotNil(t, err)
		require.Equal(t, models.KindValidation, models.KindOf(err))
	})

	t.Run(`missing department check`, func(t *testing.T) {
		i, _, _, _ := getTestInstance()
		orphan := &dbmodels.PortalUser{Email: "orphan@uni.example", DepartmentID: "dep-none"}
		orphan.ID = "user-orphan"
		i.usersStore.(*fakeUsersStore).byID["user-orphan"] = orphan
		_, err := i.Submit("user-orphan", paymentapimodels.SubmitData{
			FormType: models.FormTypeTransport,
			FormData: formData,
		})
		require.NotNil(t, err)
		require.Equal(t, models.KindValidation, models.KindOf(err))
	})
}

func TestGetByID(t *testing.T) {
	t.Run(`not found check`, func(t *testing.T) {
		i, _, _, _ := getTestInstance()
		_, err := i.GetByID("req-missing", financeActor())
		require.NotNil(t, err)
		require.Equal(t, models.KindNotFound, models.KindOf(err))
	})

	t.Run(`foreign submitter check`, func(t *testing.T) {
		i, store, _, _ := getTestInstance()
		rec := pendingHodRec()
		rec.SubmittedByID = "user-staff"
		store.byID[rec.ID] = &rec

		actor := models.Actor{UserID: "user-other", Role: models.UserRoleStaff}
		_, err := i.GetByID(rec.ID, actor)
		require.NotNil(t, err)
		require.Equal(t, models.KindAuthorization, models.KindOf(err))

		actor.UserID = "user-staff"
		view, err := i.GetByID(rec.ID, actor)
		require.Nil(t, err)
		require.Equal(t, rec.ID, view.ID)
		require.Equal(t, models.RequestStatusPendingHodApproval, view.Status)
	})
}

func TestApplyDecision(t *testing.T) {
	decisionData := paymentapimodels.DecisionData{
		OtpCode:  "123456",
		Comments: "looks fine",
	}

	t.Run(`hod approve check`, func(t *testing.T) {
		i, store, historyStore, notifier := getTestInstance()
		rec := pendingHodRec()
		store.byID[rec.ID] = &rec

		err := i.Approve(rec.ID, hodActor(), decisionData)
		require.Nil(t, err)

		require.Equal(t, []string{"123456"}, i.otp.(*fakeOtp).consumed)
		require.Equal(t, models.RequestStatusPendingHodApproval, store.expected)
		require.Equal(t, models.RequestStatusPendingFinanceApproval, store.updMap["status"])

		require.Len(t, historyStore.rows, 1)
		require.Equal(t, models.RequestStatusPendingFinanceApproval, historyStore.rows[0].ToStatus)
		require.Equal(t, "hod.eie@uni.example", historyStore.rows[0].ActorEmail)

		flags := i.usersStore.(*fakeUsersStore).updMaps
		require.Len(t, flags, 1)
		require.Equal(t, false, flags[0]["otp_verified"])

		require.Len(t, notifier.sent, 1)
		require.Equal(t, financeEmail, notifier.sent[0].to)
		require.Equal(t, notify.KindFinanceApprovalNeeded, notifier.sent[0].kind)
	})

	t.Run(`concurrent decision check`, func(t *testing.T) {
		i, store, historyStore, notifier := getTestInstance()
		rec := pendingHodRec()
		store.byID[rec.ID] = &rec
		store.updateRows = 0

		err := i.Approve(rec.ID, hodActor(), decisionData)
		require.NotNil(t, err)
		require.Equal(t, models.KindInvalidState, models.KindOf(err))

		require.Empty(t, historyStore.rows)
		require.Empty(t, notifier.sent)
	})

	t.Run(`wrong code check`, func(t *testing.T) {
		i, store, historyStore, notifier := getTestInstance()
		rec := pendingHodRec()
		store.byID[rec.ID] = &rec
		i.otp.(*fakeOtp).err = models.NewOtpError("verification code does not match")

		err := i.Approve(rec.ID, hodActor(), decisionData)
		require.NotNil(t, err)
		require.Equal(t, models.KindOtp, models.KindOf(err))

		require.Nil(t, store.updMap)
		require.Empty(t, historyStore.rows)
		require.Empty(t, notifier.sent)
	})
}

func TestVoucher(t *testing.T) {
	approvedRec := func() dbmodels.PaymentRequest {
		rec := pendingHodRec()
		rec.Status = models.RequestStatusApproved
		return rec
	}

	t.Run(`pending request check`, func(t *testing.T) {
		i, store, _, _ := getTestInstance()
		rec := pendingHodRec()
		store.byID[rec.ID] = &rec

		_, err := i.Voucher(context.TODO(), rec.ID, financeActor())
		require.NotNil(t, err)
		require.Equal(t, models.KindInvalidState, models.KindOf(err))
	})

	t.Run(`stored voucher check`, func(t *testing.T) {
		i, store, _, _ := getTestInstance()
		rec := approvedRec()
		store.byID[rec.ID] = &rec
		i.files.(*fakeFiles).stored[rec.ID] = []byte("%PDF stored")

		file, err := i.Voucher(context.TODO(), rec.ID, financeActor())
		require.Nil(t, err)
		require.Equal(t, []byte("%PDF stored"), file)
	})

	t.Run(`fetch error regenerate check`, func(t *testing.T) {
		i, store, _, _ := getTestInstance()
		rec := approvedRec()
		store.byID[rec.ID] = &rec
		files := i.files.(*fakeFiles)
		files.stored[rec.ID] = []byte("%PDF unreachable")
		files.getErr = errors.New("connection refused")

		file, err := i.Voucher(context.TODO(), rec.ID, financeActor())
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(file, []byte("%PDF")))
		require.Equal(t, file, files.stored[rec.ID])
	})
}
