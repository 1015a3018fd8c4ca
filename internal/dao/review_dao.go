package dao

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	catalogmodel "swim-shop-api/internal/model/catalog"
)

type ReviewDao struct {
	DB *gorm.DB
}

func NewReviewDao(db *gorm.DB) *ReviewDao {
	return &ReviewDao{DB: db}
}

func (r *ReviewDao) checkDB() error {
	if r == nil || r.DB == nil {
		return errors.New("ReviewDao: DB connection is nil")
	}
	return nil
}

// ListByProduct returns reviews newest first.
func (r *ReviewDao) ListByProduct(productID uint64) ([]catalogmodel.Review, error) {
	if err := r.checkDB(); err != nil {
		return nil, err
	}
	out := make([]catalogmodel.Review, 0)
	err := r.DB.Where("product_id = ?", productID).Order("created_at DESC").Order("id DESC").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews failed: %w", err)
	}
	return out, nil
}

type ratingAgg struct {
	Avg float64
	Cnt int64
}

// CreateAndAggregate inserts review and refreshes the product's rating summary
// in one transaction.
func (r *ReviewDao) CreateAndAggregate(review *catalogmodel.Review) error {
	if err := r.checkDB(); err != nil {
		return err
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("insert review failed: %w", err)
		}
		var agg ratingAgg
		err := tx.Model(&catalogmodel.Review{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
			Where("product_id = ?", review.ProductID).
			Scan(&agg).Error
		if err != nil {
			return fmt.Errorf("aggregate ratings failed: %w", err)
		}
		return tx.Model(&catalogmodel.Product{}).
			Where("id = ?", review.ProductID).
			Updates(map[string]interface{}{
				"average_rating": decimal.NewFromFloat(agg.Avg).Round(2),
				"review_count":   agg.Cnt,
			}).Error
	})
}
