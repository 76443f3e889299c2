package pdfexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"uni-payments-backend/models"
	dbmodels "uni-payments-backend/models/db"
)

func TestGenerateVoucher(t *testing.T) {
	t.Run(`voucher build check`, func(t *testing.T) {
		hodAt := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)
		finAt := time.Date(2026, 2, 12, 9, 15, 0, 0, time.UTC)
		rec := dbmodels.PaymentRequest{
			FormType:          models.FormTypeExamDuty,
			SubmitterEmail:    "staff@uni.example",
			SubmitterName:     "John Doe",
			Status:            models.RequestStatusApproved,
			HodApprovedBy:     "hod.eie@uni.example",
			HodApprovedAt:     &hodAt,
			FinanceApprovedBy: "finance@uni.example",
			FinanceApprovedAt: &finAt,
			Department:        &dbmodels.Department{Name: "Electrical Engineering"},
		}
		rec.ID = "req-1"

		pdfFile, err := GenerateVoucher(rec)
		require.Nil(t, err)
		require.NotEmpty(t, pdfFile)
		require.Equal(t, "%PDF", string(pdfFile[:4]))
	})
}
