package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "uni-payments-backend/models/db"
)

type Provider interface {
	ExportRegister(list []dbmodels.PaymentRequest) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var registerHeaders = []string{"Request", "Form", "Submitted by", "Department", "Status", "Submitted on", "Decided by", "Decided on", "Comments"}

func (i impl) ExportRegister(list []dbmodels.PaymentRequest) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("file close error")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, registerHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header build error")
	}
	if len(list) != 0 {
		row, err = writeRegisterData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data build error")
		}
	}
	f.SetSheetName(sheet, "Payment requests")
	return f.WriteToBuffer()
}

func writeRegisterData(f *excelize.File, sheet string, list []dbmodels.PaymentRequest, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(registerHeaders), len(list)+1); err != nil {
		return row, err
	}
	const dateLayout = "02.01.2006 15:04"
	for _, item := range list {
		row++
		// "Request"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.ID); err != nil {
			return row, err
		}

		// "Form"
		col++
		if err := writeColumn(f, sheet, col, row, item.FormType.ToHuman()); err != nil {
			return row, err
		}

		// "Submitted by"
		col++
		if err := writeColumn(f, sheet, col, row, item.SubmitterName); err != nil {
			return row, err
		}

		// "Department"
		col++
		if item.Department != nil {
			if err := writeColumn(f, sheet, col, row, item.Department.Name); err != nil {
				return row, err
			}
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Submitted on"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format(dateLayout)); err != nil {
			return row, err
		}

		// "Decided by" / "Decided on" / "Comments"
		decidedBy, decidedAt, comments := decisionColumns(item)
		col++
		if err := writeColumn(f, sheet, col, row, decidedBy); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, decidedAt); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, comments); err != nil {
			return row, err
		}
	}
	return row, nil
}

func decisionColumns(item dbmodels.PaymentRequest) (decidedBy, decidedAt, comments string) {
	const dateLayout = "02.01.2006 15:04"
	if item.RejectedAt != nil {
		return item.RejectedBy, item.RejectedAt.Format(dateLayout), item.RejectionReason
	}
	if item.FinanceApprovedAt != nil {
		return item.FinanceApprovedBy, item.FinanceApprovedAt.Format(dateLayout), item.FinanceComments
	}
	if item.HodApprovedAt != nil {
		return item.HodApprovedBy, item.HodApprovedAt.Format(dateLayout), item.HodComments
	}
	return "", "", ""
}
