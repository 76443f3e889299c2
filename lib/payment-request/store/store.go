package paymentrequeststore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"uni-payments-backend/models"
	dbmodels "uni-payments-backend/models/db"
)

type ListFilter struct {
	SubmittedByID string
	DepartmentID  string
	Status        models.RequestStatus
	FormType      models.FormType
}

type Provider interface {
	// WithTx rebinds the store to the caller's transaction.
	WithTx(tx *gorm.DB) Provider
	Create(rec dbmodels.PaymentRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.PaymentRequest, err error)
	// UpdateStatus applies updMap only while the row still holds
	// expected; rowsAffected reports whether this caller won.
	UpdateStatus(id string, expected models.RequestStatus, updMap map[string]interface{}) (rowsAffected int64, err error)
	List(filter ListFilter, page, limit int) (list []dbmodels.PaymentRequest, rowCount int64, err error)
	ListCreatedBetween(from, to time.Time) (list []dbmodels.PaymentRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) WithTx(tx *gorm.DB) Provider {
	if tx == nil {
		return i
	}
	return NewInstance(tx)
}

func (i impl) Create(rec dbmodels.PaymentRequest) (id string, err error) {
	err = i.db.
		Omit("SubmittedBy", "Department", "History").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.PaymentRequest, error) {
	rec := dbmodels.PaymentRequest{}
	err := i.db.
		Where("id = ?", id).
		Preload("Department").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) UpdateStatus(id string, expected models.RequestStatus, updMap map[string]interface{}) (int64, error) {
	tx := i.db.
		Model(&dbmodels.PaymentRequest{}).
		Where("id = ?", id).
		Where("status = ?", expected).
		Updates(updMap)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) List(filter ListFilter, page, limit int) (list []dbmodels.PaymentRequest, rowCount int64, err error) {
	list = []dbmodels.PaymentRequest{}
	tx := i.db.Model(&dbmodels.PaymentRequest{})
	i.applyFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	if page > 0 && limit > 0 {
		tx.Offset((page - 1) * limit).Limit(limit)
	}
	err = tx.
		Order("created_at DESC").
		Preload("Department").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListCreatedBetween(from, to time.Time) (list []dbmodels.PaymentRequest, err error) {
	list = []dbmodels.PaymentRequest{}
	tx := i.db.Model(&dbmodels.PaymentRequest{})
	if !from.IsZero() {
		tx.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		tx.Where("created_at <= ?", to)
	}
	err = tx.
		Order("created_at ASC").
		Preload("Department").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) applyFilter(tx *gorm.DB, filter ListFilter) {
	if filter.SubmittedByID != "" {
		tx.Where("submitted_by_id = ?", filter.SubmittedByID)
	}
	if filter.DepartmentID != "" {
		tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.FormType != "" {
		tx.Where("form_type = ?", filter.FormType)
	}
}
