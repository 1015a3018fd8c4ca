package dao

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogmodel "swim-shop-api/internal/model/catalog"
)

type SubscriberDao struct {
	DB *gorm.DB
}

func NewSubscriberDao(db *gorm.DB) *SubscriberDao {
	return &SubscriberDao{DB: db}
}

// Subscribe stores email once and reports whether it was new.
func (r *SubscriberDao) Subscribe(email string) (bool, error) {
	if r == nil || r.DB == nil {
		return false, errors.New("SubscriberDao: DB connection is nil")
	}
	sub := catalogmodel.Subscriber{Email: email}
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&sub)
	if res.Error != nil {
		return false, fmt.Errorf("subscribe failed: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}
