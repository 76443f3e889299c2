package notify

import (
	log "github.com/sirupsen/logrus"
	"uni-payments-backend/lib/smtp"
)

// Provider is fire-and-forget: delivery failures are logged, never
// surfaced to the calling operation.
type Provider interface {
	Notify(to string, kind TemplateKind, snap Snapshot)
}

var Instance Provider

func NewHandler(emailFrom string) {
	Instance = impl{
		emailFrom: emailFrom,
	}
}

type impl struct {
	emailFrom string
}

func (i impl) Notify(to string, kind TemplateKind, snap Snapshot) {
	logger := log.
		WithField("request_id", snap.RequestID).
		WithField("recipient", to).
		WithField("template", string(kind))
	if to == "" {
		logger.Warn("notification skipped, empty recipient")
		return
	}
	subject, body, ok := buildMessage(kind, snap)
	if !ok {
		logger.Error("notification skipped, unknown template")
		return
	}
	err := smtp.Instance.SendEMail(i.emailFrom, to, body, subject)
	if err != nil {
		logger.WithError(err).Error("notification send error")
		return
	}
	logger.Info("notification sent")
}
