package departmentprovider

import (
	log "github.com/sirupsen/logrus"
	"uni-payments-backend/db"
	"uni-payments-backend/lib/dicts/department/store"
	initchecker "uni-payments-backend/lib/utils/init-checker"
	"uni-payments-backend/models"
	dictapimodels "uni-payments-backend/models/api/dict"
	dbmodels "uni-payments-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.DepartmentData) (id string, err error)
	Update(id string, request dictapimodels.DepartmentData) error
	Get(id string) (item dictapimodels.DepartmentView, err error)
	List() (list []dictapimodels.DepartmentView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(request dictapimodels.DepartmentData) (id string, err error) {
	existedRec, err := i.store.GetByCode(request.Code)
	if err != nil {
		return "", models.NewPersistenceError(err, "department lookup error")
	}
	if existedRec != nil {
		return "", models.NewValidationError("department code is already in use")
	}
	rec := dbmodels.Department{
		Code:      request.Code,
		Name:      request.Name,
		HeadName:  request.HeadName,
		HeadEmail: request.HeadEmail,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", models.NewPersistenceError(err, "department create error")
	}
	log.
		WithField("department_name", rec.Name).
		WithField("rec_id", id).
		Info("department created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.DepartmentData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"name":       request.Name,
		"head_name":  request.HeadName,
		"head_email": request.HeadEmail,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return models.NewPersistenceError(err, "department update error")
	}
	logger.Info("department updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.DepartmentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DepartmentView{}, models.NewPersistenceError(err, "department lookup error")
	}
	if rec == nil {
		return dictapimodels.DepartmentView{}, models.NewNotFoundError("department not found")
	}
	return dictapimodels.DepartmentConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.DepartmentView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, models.NewPersistenceError(err, "department list error")
	}
	list = make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.DepartmentConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return models.NewPersistenceError(err, "department delete error")
	}
	log.WithField("rec_id", id).Info("department deleted")
	return nil
}
