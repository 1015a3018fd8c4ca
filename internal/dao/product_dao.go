package dao

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	catalogmodel "swim-shop-api/internal/model/catalog"
)

type ProductDao struct {
	DB *gorm.DB
}

func NewProductDao(db *gorm.DB) *ProductDao {
	return &ProductDao{DB: db}
}

func (r *ProductDao) checkDB() error {
	if r == nil || r.DB == nil {
		return errors.New("ProductDao: DB connection is nil")
	}
	return nil
}

// List returns products ordered by id, optionally narrowed to a category.
func (r *ProductDao) List(category string) ([]catalogmodel.Product, error) {
	if err := r.checkDB(); err != nil {
		return nil, err
	}
	q := r.DB.Model(&catalogmodel.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []catalogmodel.Product
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list products failed: %w", err)
	}
	return out, nil
}

// GetByID returns nil, nil when the product does not exist.
func (r *ProductDao) GetByID(id uint64) (*catalogmodel.Product, error) {
	if err := r.checkDB(); err != nil {
		return nil, err
	}
	var m catalogmodel.Product
	err := r.DB.Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product failed: %w", err)
	}
	return &m, nil
}

// GetByIDs loads products keyed by id; missing ids are simply absent.
func (r *ProductDao) GetByIDs(ids []uint64) (map[uint64]*catalogmodel.Product, error) {
	if err := r.checkDB(); err != nil {
		return nil, err
	}
	out := make(map[uint64]*catalogmodel.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var list []catalogmodel.Product
	if err := r.DB.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("query products failed: %w", err)
	}
	for i := range list {
		out[list[i].ID] = &list[i]
	}
	return out, nil
}
