package pdfexport

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	dbmodels "uni-payments-backend/models/db"
)

const voucherTemplate = `<b>Payment voucher</b><br><br>` +
	`Request: {{.ID}}<br>` +
	`Form: {{.FormName}}<br>` +
	`Submitted by: {{.SubmitterName}} ({{.SubmitterEmail}})<br>` +
	`Department: {{.Department}}<br><br>` +
	`Approved by head of department: {{.HodApprovedBy}} on {{.HodApprovedAt}}<br>` +
	`Approved by finance: {{.FinanceApprovedBy}} on {{.FinanceApprovedAt}}<br>`

type voucherData struct {
	ID                string
	FormName          string
	SubmitterName     string
	SubmitterEmail    string
	Department        string
	HodApprovedBy     string
	HodApprovedAt     string
	FinanceApprovedBy string
	FinanceApprovedAt string
}

// GenerateVoucher renders an approved request as a payment voucher.
func GenerateVoucher(rec dbmodels.PaymentRequest) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateVoucher panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	data := voucherData{
		ID:             rec.ID,
		FormName:       rec.FormType.ToHuman(),
		SubmitterName:  rec.SubmitterName,
		SubmitterEmail: rec.SubmitterEmail,
	}
	if rec.Department != nil {
		data.Department = rec.Department.Name
	}
	const dateLayout = "02.01.2006 15:04"
	if rec.HodApprovedAt != nil {
		data.HodApprovedBy = rec.HodApprovedBy
		data.HodApprovedAt = rec.HodApprovedAt.Format(dateLayout)
	}
	if rec.FinanceApprovedAt != nil {
		data.FinanceApprovedBy = rec.FinanceApprovedBy
		data.FinanceApprovedAt = rec.FinanceApprovedAt.Format(dateLayout)
	}

	tpl, err := template.New("voucher_body").Parse(voucherTemplate)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, data)
	if err != nil {
		return nil, err
	}

	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt+2, buf.String())

	posY := pdf.GetY() + 15
	pdf.SetY(posY)
	pdf.SetFont("Helvetica", "I", 9)
	html = pdf.HTMLBasicNew()
	_, lineHt = pdf.GetFontSize()
	html.Write(lineHt, fmt.Sprintf("Generated by the payment portal, record %v", rec.ID))

	out := new(bytes.Buffer)
	err = pdf.Output(out)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
