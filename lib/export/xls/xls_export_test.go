package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"uni-payments-backend/models"
	dbmodels "uni-payments-backend/models/db"
)

func TestExportRegister(t *testing.T) {
	hodAt := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)
	rejectedAt := time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC)

	approved := dbmodels.PaymentRequest{
		FormType:      models.FormTypePettyCash,
		SubmitterName: "John Doe",
		Status:        models.RequestStatusPendingFinanceApproval,
		HodApprovedBy: "hod.eie@uni.example",
		HodApprovedAt: &hodAt,
		HodComments:   "ok to pay",
		Department:    &dbmodels.Department{Name: "Electrical Engineering"},
	}
	approved.ID = "req-1"
	rejected := dbmodels.PaymentRequest{
		FormType:        models.FormTypeOvertime,
		SubmitterName:   "Jane Roe",
		Status:          models.RequestStatusRejected,
		RejectedBy:      "hod.cee@uni.example",
		RejectedAt:      &rejectedAt,
		RejectionReason: "missing timesheet",
	}
	rejected.ID = "req-2"

	t.Run(`register build check`, func(t *testing.T) {
		i := impl{}
		buf, err := i.ExportRegister([]dbmodels.PaymentRequest{approved, rejected})
		require.Nil(t, err)
		require.NotNil(t, buf)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows("Payment requests")
		require.Nil(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, registerHeaders, rows[0][:len(registerHeaders)])
		require.Equal(t, "req-1", rows[1][0])
		require.Equal(t, "Petty cash", rows[1][1])
		require.Equal(t, "hod.eie@uni.example", rows[1][6])
		require.Equal(t, "missing timesheet", rows[2][8])
	})

	t.Run(`empty register check`, func(t *testing.T) {
		i := impl{}
		buf, err := i.ExportRegister(nil)
		require.Nil(t, err)
		require.NotNil(t, buf)
	})
}

func TestDecisionColumns(t *testing.T) {
	t.Run(`undecided check`, func(t *testing.T) {
		decidedBy, decidedAt, comments := decisionColumns(dbmodels.PaymentRequest{})
		require.Equal(t, "", decidedBy)
		require.Equal(t, "", decidedAt)
		require.Equal(t, "", comments)
	})

	t.Run(`rejection wins check`, func(t *testing.T) {
		at := time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC)
		rec := dbmodels.PaymentRequest{
			HodApprovedBy:   "hod.eie@uni.example",
			HodApprovedAt:   &at,
			RejectedBy:      "finance@uni.example",
			RejectedAt:      &at,
			RejectionReason: "over budget",
		}
		decidedBy, _, comments := decisionColumns(rec)
		require.Equal(t, "finance@uni.example", decidedBy)
		require.Equal(t, "over budget", comments)
	})
}
