package specification

import "gorm.io/gorm"

// ByCategory filters products by their owning category.
type ByCategory struct {
	CategoryId uint
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryId)
}

// ByParent filters categories by parent; Roots selects the forest roots.
type ByParent struct {
	ParentId uint
}

func (s ByParent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id = ?", s.ParentId)
}

type Roots struct{}

func (s Roots) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id IS NULL")
}

// AvailableOnly hides delisted products from listings.
type AvailableOnly struct{}

func (s AvailableOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("available = ?", true)
}

// NameContains does a case-insensitive substring match on product names.
type NameContains struct {
	Term string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", "%"+s.Term+"%")
}
