package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "uni-payments-backend/models/db"
)

type Provider interface {
	// WithTx rebinds the store to the caller's transaction.
	WithTx(tx *gorm.DB) Provider
	Create(rec dbmodels.PortalUser) (string, error)
	Update(userID string, updMap map[string]interface{}) error
	UpdateByEmail(email string, updMap map[string]interface{}) error
	Delete(userID string) error
	GetList(page, limit int) (userList []dbmodels.PortalUser, err error)
	ExistByEmail(email string) (bool, error)
	FindByEmail(email string) (rec *dbmodels.PortalUser, err error)
	GetByID(userID string) (rec *dbmodels.PortalUser, err error)
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

func (i impl) Create(rec dbmodels.PortalUser) (string, error) {
	err := i.db.
		Omit("Department").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.PortalUser{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) UpdateByEmail(email string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.PortalUser{}).
		Where("email = ?", email).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(userID string) error {
	return i.db.
		Where("id = ?", userID).
		Delete(&dbmodels.PortalUser{}).
		Error
}

func (i impl) GetList(page, limit int) (userList []dbmodels.PortalUser, err error) {
	tx := i.db.Model(dbmodels.PortalUser{})
	i.setPage(tx, page, limit)
	err = tx.
		Preload(clause.Associations).
		Order("created_at ASC").
		Find(&userList).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userList, nil
}

func (i impl) ExistByEmail(email string) (bool, error) {
	err := i.db.
		Where("email = ?", email).
		First(&dbmodels.PortalUser{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) FindByEmail(email string) (rec *dbmodels.PortalUser, err error) {
	found := dbmodels.PortalUser{}
	err = i.db.
		Where("email = ?", email).
		Preload("Department").
		First(&found).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

func (i impl) GetByID(userID string) (rec *dbmodels.PortalUser, err error) {
	found := dbmodels.PortalUser{}
	err = i.db.
		Where("id = ?", userID).
		Preload("Department").
		First(&found).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	if page > 0 && limit > 0 {
		tx.Offset((page - 1) * limit).Limit(limit)
	}
}
