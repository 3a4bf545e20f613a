package model

type Category struct {
	Id       uint   `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(255);not null"`
	ParentId *uint  `gorm:"index"`
}

func (Category) TableName() string {
	return "categories"
}

type Product struct {
	Id          uint     `gorm:"primaryKey;autoIncrement"`
	Name        string   `gorm:"type:varchar(255);not null"`
	Description *string  `gorm:"type:text"`
	Price       *float64
	Available   bool     `gorm:"not null;default:true"`
	ImageURL    *string  `gorm:"type:varchar(1024)"`
	CategoryId  uint     `gorm:"not null;index"`
}

func (Product) TableName() string {
	return "products"
}
