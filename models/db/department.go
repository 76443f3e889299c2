package dbmodels

type Department struct {
	BaseModel
	Code      string `gorm:"type:varchar(10);uniqueIndex"`
	Name      string `gorm:"type:varchar(255)"`
	HeadName  string `gorm:"type:varchar(255)"`
	HeadEmail string `gorm:"type:varchar(255)"`
}
