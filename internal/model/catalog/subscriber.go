package catalogmodel

import "time"

type Subscriber struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Email     string    `gorm:"column:email;size:255;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Subscriber) TableName() string { return "newsletter_subscribers" }
