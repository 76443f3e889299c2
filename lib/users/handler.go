package usershandler

import (
	log "github.com/sirupsen/logrus"
	"uni-payments-backend/db"
	departmentstore "uni-payments-backend/lib/dicts/department/store"
	usersstore "uni-payments-backend/lib/users/store"
	authutils "uni-payments-backend/lib/utils/auth-utils"
	initchecker "uni-payments-backend/lib/utils/init-checker"
	"uni-payments-backend/models"
	apimodels "uni-payments-backend/models/api"
	userapimodels "uni-payments-backend/models/api/user"
	dbmodels "uni-payments-backend/models/db"
)

type Provider interface {
	Create(request userapimodels.UserData) (id string, err error)
	List(pagination apimodels.Pagination) (list []userapimodels.UserView, err error)
	Deactivate(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:           usersstore.NewInstance(db.DB),
		departmentStore: departmentstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"departmentStore", instance.departmentStore,
	)
	Instance = instance
}

type impl struct {
	store           usersstore.Provider
	departmentStore departmentstore.Provider
}

func (i impl) Create(request userapimodels.UserData) (id string, err error) {
	logger := log.WithField("email", request.Email)
	exist, err := i.store.ExistByEmail(request.Email)
	if err != nil {
		return "", models.NewPersistenceError(err, "user lookup error")
	}
	if exist {
		return "", models.NewValidationError("this email is already registered")
	}
	if request.DepartmentID != "" {
		dept, err := i.departmentStore.GetByID(request.DepartmentID)
		if err != nil {
			return "", models.NewPersistenceError(err, "department lookup error")
		}
		if dept == nil {
			return "", models.NewValidationError("department not found")
		}
	}
	rec := dbmodels.PortalUser{
		IsActive:     true,
		Password:     authutils.GetMD5Hash(request.Password),
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		PhoneNumber:  request.PhoneNumber,
		DepartmentID: request.DepartmentID,
		Role:         request.Role,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", models.NewPersistenceError(err, "user create error")
	}
	logger.WithField("rec_id", id).Info("portal user created")
	return id, nil
}

func (i impl) List(pagination apimodels.Pagination) (list []userapimodels.UserView, err error) {
	page, limit := pagination.GetPage()
	recList, err := i.store.GetList(page, limit)
	if err != nil {
		return nil, models.NewPersistenceError(err, "user list error")
	}
	list = make([]userapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, userapimodels.UserConvert(rec))
	}
	return list, nil
}

func (i impl) Deactivate(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return models.NewPersistenceError(err, "user lookup error")
	}
	if rec == nil {
		return models.NewNotFoundError("user not found")
	}
	err = i.store.Update(id, map[string]interface{}{
		"is_active": false,
	})
	if err != nil {
		return models.NewPersistenceError(err, "user update error")
	}
	log.WithField("rec_id", id).Info("portal user deactivated")
	return nil
}
