package catalogmodel

import "time"

type Review struct {
	ID        uint64     `gorm:"column:id;primaryKey" json:"id,string"`
	ProductID uint64     `gorm:"column:product_id;index" json:"productId"`
	UserID    string     `gorm:"column:user_id;size:128" json:"userId"`
	UserName  string     `gorm:"column:user_name;size:128" json:"userName"`
	Rating    int        `gorm:"column:rating" json:"rating"`
	Comment   string     `gorm:"column:comment;type:text" json:"comment"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updatedAt,omitempty"`
}

func (Review) TableName() string { return "product_reviews" }
