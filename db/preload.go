package db

import (
	"fmt"

	"uni-payments-backend/config"
	departmentstore "uni-payments-backend/lib/dicts/department/store"
	usersstore "uni-payments-backend/lib/users/store"
	authutils "uni-payments-backend/lib/utils/auth-utils"
	"uni-payments-backend/models"
	dbmodels "uni-payments-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	fillDepartments()
	addFinanceOfficer()
}

// departments seeded once; head contacts are maintained through the dict api
var departmentSeed = []dbmodels.Department{
	{Code: "eie", Name: "Electrical and Information Engineering"},
	{Code: "cee", Name: "Civil and Environmental Engineering"},
	{Code: "mme", Name: "Mechanical and Manufacturing Engineering"},
}

func fillDepartments() {
	store := departmentstore.NewInstance(DB)
	for _, dept := range departmentSeed {
		existedRec, err := store.GetByCode(dept.Code)
		if err != nil {
			log.WithError(err).Error("department seed error")
			return
		}
		if existedRec != nil {
			continue
		}
		dept.HeadEmail = fmt.Sprintf("hod.%s@%s", dept.Code, config.Conf.Portal.EmailDomain)
		_, err = store.Create(dept)
		if err != nil {
			log.WithError(err).Error("department seed error")
			return
		}
	}
}

func addFinanceOfficer() {
	if config.Conf.Portal.FinanceEmail == "" {
		log.Warn("finance officer not added, FINANCE_EMAIL is not configured")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Portal.FinanceEmail)
	if err != nil {
		log.WithError(err).Error("finance officer seed error")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.PortalUser{
		IsActive:  true,
		Role:      models.UserRoleFinanceOfficer,
		Password:  authutils.GetMD5Hash(config.Conf.Finance.Password),
		FirstName: config.Conf.Portal.FinanceName,
		Email:     config.Conf.Portal.FinanceEmail,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("finance officer seed error")
	}
}
