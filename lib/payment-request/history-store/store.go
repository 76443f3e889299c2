package requesthistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "uni-payments-backend/models/db"
)

type Provider interface {
	// WithTx rebinds the store to the caller's transaction.
	WithTx(tx *gorm.DB) Provider
	Create(rec dbmodels.RequestStatusHistory) (id string, err error)
	List(requestID string) (list []dbmodels.RequestStatusHistory, err error)
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

func (i impl) Create(rec dbmodels.RequestStatusHistory) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(requestID string) (list []dbmodels.RequestStatusHistory, err error) {
	list = []dbmodels.RequestStatusHistory{}
	err = i.db.
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
