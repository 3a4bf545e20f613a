package entity

// Category is a node in the catalog forest. ParentId is nil for roots.
// The tree is an arena of plain integer references; navigation walks ids,
// never object pointers.
type Category struct {
	Id       uint
	Name     string
	ParentId *uint
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentId == nil
}

// Product belongs to exactly one category. Price and description may be
// absent in the upstream feed.
type Product struct {
	Id          uint
	Name        string
	Description *string
	Price       *float64
	Available   bool
	ImageURL    *string
	CategoryId  uint
}
