package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "uni-payments-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "Department migration error")
	}
	if err := DB.AutoMigrate(&dbmodels.PortalUser{}); err != nil {
		return errors.Wrap(err, "PortalUser migration error")
	}
	if err := DB.AutoMigrate(&dbmodels.PaymentRequest{}); err != nil {
		return errors.Wrap(err, "PaymentRequest migration error")
	}
	if err := DB.AutoMigrate(&dbmodels.RequestStatusHistory{}); err != nil {
		return errors.Wrap(err, "RequestStatusHistory migration error")
	}
	if err := DB.AutoMigrate(&dbmodels.OtpCode{}); err != nil {
		return errors.Wrap(err, "OtpCode migration error")
	}
	log.Info("migrations finished")
	return nil
}
