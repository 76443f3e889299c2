package paymentrequesthandler

import (
	"bytes"
	"context"
	"time"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"uni-payments-backend/config"
	"uni-payments-backend/db"
	departmentstore "uni-payments-backend/lib/dicts/department/store"
	pdfexport "uni-payments-backend/lib/export/pdf"
	xlsexport "uni-payments-backend/lib/export/xls"
	filestorage "uni-payments-backend/lib/file-storage"
	"uni-payments-backend/lib/notify"
	"uni-payments-backend/lib/otp"
	requesthistorystore "uni-payments-backend/lib/payment-request/history-store"
	paymentrequeststore "uni-payments-backend/lib/payment-request/store"
	usersstore "uni-payments-backend/lib/users/store"
	"uni-payments-backend/lib/utils/helpers"
	initchecker "uni-payments-backend/lib/utils/init-checker"
	"uni-payments-backend/models"
	paymentapimodels "uni-payments-backend/models/api/payment"
	dbmodels "uni-payments-backend/models/db"
)

type Provider interface {
	Submit(userID string, data paymentapimodels.SubmitData) (id string, err error)
	Approve(id string, actor models.Actor, data paymentapimodels.DecisionData) error
	Reject(id string, actor models.Actor, data paymentapimodels.DecisionData) error
	GetByID(id string, actor models.Actor) (paymentapimodels.PaymentRequestView, error)
	List(actor models.Actor, filter paymentapimodels.RequestFilter) (list []paymentapimodels.PaymentRequestView, rowCount int64, err error)
	History(id string, actor models.Actor) ([]paymentapimodels.HistoryView, error)
	Voucher(ctx context.Context, id string, actor models.Actor) ([]byte, error)
	Register(filter paymentapimodels.RegisterFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:           paymentrequeststore.NewInstance(db.DB),
		historyStore:    requesthistorystore.NewInstance(db.DB),
		usersStore:      usersstore.NewInstance(db.DB),
		departmentStore: departmentstore.NewInstance(db.DB),
		notifier:        notify.Instance,
		otp:             otp.Instance,
		files:           filestorage.Instance,
		financeEmail:    config.Conf.Portal.FinanceEmail,
		transact: func(fc func(tx *gorm.DB) error) error {
			return db.DB.Transaction(fc)
		},
	}
	initchecker.CheckInit(
		"store", instance.store,
		"historyStore", instance.historyStore,
		"usersStore", instance.usersStore,
		"departmentStore", instance.departmentStore,
		"notifier", instance.notifier,
		"otp", instance.otp,
		"files", instance.files,
	)
	Instance = instance
}

type impl struct {
	store           paymentrequeststore.Provider
	historyStore    requesthistorystore.Provider
	usersStore      usersstore.Provider
	departmentStore departmentstore.Provider
	notifier        notify.Provider
	otp             otp.Provider
	files           filestorage.Provider
	financeEmail    string
	transact        func(fc func(tx *gorm.DB) error) error
}

func (i impl) GetLogger(id string) *log.Entry {
	return log.WithField("request_id", id)
}

func (i impl) Submit(userID string, data paymentapimodels.SubmitData) (id string, err error) {
	logger := log.WithField("user_id", userID)
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return "", models.NewPersistenceError(err, "submitter lookup error")
	}
	if user == nil {
		return "", models.NewValidationError("submitter is not registered in the portal")
	}
	dept, err := i.departmentStore.GetByID(user.DepartmentID)
	if err != nil {
		return "", models.NewPersistenceError(err, "department lookup error")
	}
	if dept == nil {
		return "", models.NewValidationError("submitter has no department assigned")
	}
	rec := dbmodels.PaymentRequest{
		FormType:             data.FormType,
		FormData:             []byte(data.FormData),
		SubmittedByID:        user.ID,
		SubmitterEmail:       user.Email,
		SubmitterName:        user.GetFullName(),
		DepartmentID:         dept.ID,
		Status:               models.RequestStatusPendingHodApproval,
		CurrentApproverEmail: dept.HeadEmail,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", models.NewPersistenceError(err, "request create error")
	}
	logger = logger.WithField("request_id", id)
	_, err = i.historyStore.Create(dbmodels.RequestStatusHistory{
		RequestID:      id,
		ToStatus:       models.RequestStatusPendingHodApproval,
		ActorEmail:     user.Email,
		ActorRole:      models.UserRoleStaff,
		NotifiedEmails: pq.StringArray{user.Email, dept.HeadEmail},
	})
	if err != nil {
		logger.WithError(err).Error("history append error")
	}

	snap := notify.Snapshot{
		RequestID:     id,
		FormType:      data.FormType,
		SubmitterName: user.GetFullName(),
		Department:    dept.Name,
		Status:        models.RequestStatusPendingHodApproval,
	}
	i.notifier.Notify(user.Email, notify.KindSubmitted, snap)
	i.notifier.Notify(dept.HeadEmail, notify.KindHodApprovalNeeded, snap)

	logger.Info("payment request submitted")
	return id, nil
}

func (i impl) Approve(id string, actor models.Actor, data paymentapimodels.DecisionData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	dec, err := approveDecision(*rec, actor, data.Comments, i.financeEmail, time.Now())
	if err != nil {
		return err
	}
	return i.applyDecision(rec, actor, dec, data)
}

func (i impl) Reject(id string, actor models.Actor, data paymentapimodels.DecisionData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	dec, err := rejectDecision(*rec, actor, data.Comments, time.Now())
	if err != nil {
		return err
	}
	return i.applyDecision(rec, actor, dec, data)
}

// applyDecision consumes the OTP, applies the conditional status
// update and appends the audit row in one transaction; the notice goes
// out only after commit.
func (i impl) applyDecision(rec *dbmodels.PaymentRequest, actor models.Actor, dec decision, data paymentapimodels.DecisionData) error {
	logger := i.GetLogger(rec.ID).
		WithField("actor", actor.Email).
		WithField("next_status", string(dec.next))
	to, kind, snap := transitionNotice(*rec, dec.next, data.Comments, i.financeEmail)
	err := i.transact(func(tx *gorm.DB) error {
		err := i.otp.Consume(tx, actor.Email, dec.purpose, rec.ID, data.OtpCode)
		if err != nil {
			return err
		}
		rows, err := i.store.WithTx(tx).UpdateStatus(rec.ID, rec.Status, dec.updMap)
		if err != nil {
			return models.NewPersistenceError(err, "request update error")
		}
		if rows == 0 {
			// a concurrent decision won the conditional update
			return models.NewInvalidStateError("request status has changed, action was not applied")
		}
		_, err = i.historyStore.WithTx(tx).Create(dbmodels.RequestStatusHistory{
			RequestID:      rec.ID,
			FromStatus:     rec.Status,
			ToStatus:       dec.next,
			ActorEmail:     actor.Email,
			ActorRole:      actor.Role,
			Comments:       data.Comments,
			NotifiedEmails: pq.StringArray{to},
		})
		if err != nil {
			return models.NewPersistenceError(err, "history append error")
		}
		err = i.usersStore.WithTx(tx).UpdateByEmail(actor.Email, map[string]interface{}{
			"otp_verified": false,
		})
		if err != nil {
			return models.NewPersistenceError(err, "verification flag reset error")
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("decision apply error")
		return err
	}
	i.notifier.Notify(to, kind, snap)
	logger.Info("request status updated")
	return nil
}

func (i impl) GetByID(id string, actor models.Actor) (paymentapimodels.PaymentRequestView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return paymentapimodels.PaymentRequestView{}, err
	}
	if err = checkReadAccess(*rec, actor); err != nil {
		return paymentapimodels.PaymentRequestView{}, err
	}
	return paymentapimodels.PaymentRequestConvert(*rec), nil
}

func (i impl) List(actor models.Actor, filter paymentapimodels.RequestFilter) (list []paymentapimodels.PaymentRequestView, rowCount int64, err error) {
	storeFilter := paymentrequeststore.ListFilter{
		Status:   filter.Status,
		FormType: filter.FormType,
	}
	switch actor.Role {
	case models.UserRoleFinanceOfficer:
		// global scope
	case models.UserRoleDepartmentHead:
		storeFilter.DepartmentID = actor.DepartmentID
	default:
		storeFilter.SubmittedByID = actor.UserID
	}
	page, limit := filter.GetPage()
	recList, rowCount, err := i.store.List(storeFilter, page, limit)
	if err != nil {
		return nil, 0, models.NewPersistenceError(err, "request list error")
	}
	list = make([]paymentapimodels.PaymentRequestView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, paymentapimodels.PaymentRequestConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) History(id string, actor models.Actor) ([]paymentapimodels.HistoryView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	if err = checkReadAccess(*rec, actor); err != nil {
		return nil, err
	}
	recList, err := i.historyStore.List(id)
	if err != nil {
		return nil, models.NewPersistenceError(err, "history list error")
	}
	list := make([]paymentapimodels.HistoryView, 0, len(recList))
	for _, histRec := range recList {
		list = append(list, paymentapimodels.HistoryConvert(histRec))
	}
	return list, nil
}

func (i impl) Voucher(ctx context.Context, id string, actor models.Actor) ([]byte, error) {
	logger := i.GetLogger(id)
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	if err = checkReadAccess(*rec, actor); err != nil {
		return nil, err
	}
	if rec.Status != models.RequestStatusApproved {
		return nil, models.NewInvalidStateError("voucher is available for approved requests only")
	}
	if helpers.IsContextDone(ctx) {
		return nil, ctx.Err()
	}
	file, err := i.files.GetVoucher(ctx, id)
	if err != nil {
		logger.WithError(err).Warn("stored voucher fetch error")
	}
	if err == nil && len(file) != 0 {
		return file, nil
	}
	file, err = pdfexport.GenerateVoucher(*rec)
	if err != nil {
		return nil, models.NewPersistenceError(err, "voucher build error")
	}
	err = i.files.UploadVoucher(ctx, id, file)
	if err != nil {
		logger.WithError(err).Error("voucher upload error")
	}
	return file, nil
}

func (i impl) Register(filter paymentapimodels.RegisterFilter) (*bytes.Buffer, error) {
	recList, err := i.store.ListCreatedBetween(filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, models.NewPersistenceError(err, "request list error")
	}
	return xlsexport.Instance.ExportRegister(recList)
}

func (i impl) getRec(id string) (*dbmodels.PaymentRequest, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		i.GetLogger(id).WithError(err).Error("request lookup error")
		return nil, models.NewPersistenceError(err, "request lookup error")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("payment request not found")
	}
	return rec, nil
}

func checkReadAccess(rec dbmodels.PaymentRequest, actor models.Actor) error {
	switch actor.Role {
	case models.UserRoleFinanceOfficer:
		return nil
	case models.UserRoleDepartmentHead:
		if rec.DepartmentID == actor.DepartmentID {
			return nil
		}
	default:
		if rec.SubmittedByID == actor.UserID {
			return nil
		}
	}
	return models.NewAuthorizationError("request belongs to a different department or submitter")
}
