package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/dao"
	"swim-shop-api/internal/dto"
	"swim-shop-api/internal/idgen"
	catalogmodel "swim-shop-api/internal/model/catalog"
	"swim-shop-api/internal/utils/timeutil"
)

type ReviewService struct {
	productDao *dao.ProductDao
	reviewDao  *dao.ReviewDao
	catalog    *CatalogService
	newID      idgen.Generator
	log        *logrus.Logger
}

func NewReviewService(db *gorm.DB, catalog *CatalogService, newID idgen.Generator, log *logrus.Logger) *ReviewService {
	return &ReviewService{
		productDao: dao.NewProductDao(db),
		reviewDao:  dao.NewReviewDao(db),
		catalog:    catalog,
		newID:      newID,
		log:        log,
	}
}

func (s *ReviewService) List(productID uint64) ([]catalogmodel.Review, error) {
	if productID == 0 {
		return nil, constant.NewErrorMsg(constant.CodeMissingParams, "Product ID is required")
	}
	list, err := s.reviewDao.ListByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return list, nil
}

// Create stores the review and refreshes the product's rating aggregate.
func (s *ReviewService) Create(ctx context.Context, req dto.CreateReviewReq) (*catalogmodel.Review, error) {
	if req.ProductID == 0 || req.Review == nil {
		return nil, constant.NewError(constant.CodeReviewInvalid)
	}
	if req.Review.Rating < 1 || req.Review.Rating > 5 {
		return nil, constant.NewError(constant.CodeReviewRatingInvalid)
	}
	comment := strings.TrimSpace(req.Review.Comment)
	if comment == "" {
		return nil, constant.NewErrorMsg(constant.CodeReviewInvalid, "Comment is required")
	}

	p, err := s.productDao.GetByID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return nil, constant.NewError(constant.CodeProductNotFound)
	}

	review := &catalogmodel.Review{}
	if err := copier.Copy(review, req.Review); err != nil {
		return nil, fmt.Errorf("copy review: %w", err)
	}
	review.ID = s.newID()
	review.ProductID = req.ProductID
	review.UserID = strings.TrimSpace(review.UserID)
	review.UserName = strings.TrimSpace(review.UserName)
	review.Comment = comment
	review.CreatedAt = timeutil.NowUTC()
	if err := s.reviewDao.CreateAndAggregate(review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	s.log.Infof("[Review] product=%d review=%d rating=%d", review.ProductID, review.ID, review.Rating)

	if s.catalog != nil {
		s.catalog.Invalidate(ctx)
	}
	return review, nil
}
