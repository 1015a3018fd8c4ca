package catalogmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uint64          `gorm:"column:id;primaryKey" json:"id"`
	Name          string          `gorm:"column:name;size:128" json:"name"`
	Price         decimal.Decimal `gorm:"column:price;type:decimal(12,2)" json:"price"`
	Image         string          `gorm:"column:image;size:255" json:"image"`
	HoverImage    string          `gorm:"column:hover_image;size:255" json:"hoverImage"`
	Sizes         []string        `gorm:"column:sizes;type:text;serializer:json" json:"sizes"`
	Description   string          `gorm:"column:description;type:text" json:"description"`
	Category      string          `gorm:"column:category;size:64;index" json:"category"`
	Tags          []string        `gorm:"column:tags;type:text;serializer:json" json:"tags"`
	Stock         int             `gorm:"column:stock" json:"stock"`
	AverageRating decimal.Decimal `gorm:"column:average_rating;type:decimal(3,2)" json:"averageRating"`
	ReviewCount   int             `gorm:"column:review_count" json:"reviewCount"`
	CreatedAt     time.Time       `gorm:"column:created_at" json:"-"`
	UpdatedAt     time.Time       `gorm:"column:updated_at" json:"-"`
}

func (Product) TableName() string { return "products" }

// HasSize reports whether size is offered; products without sizes accept none.
func (p *Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return size == ""
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
