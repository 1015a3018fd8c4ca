package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/dto"
	"swim-shop-api/internal/middleware"
	"swim-shop-api/internal/service"
	"swim-shop-api/internal/utils"
)

type CatalogHandler struct {
	catalog    *service.CatalogService
	reviews    *service.ReviewService
	newsletter *service.NewsletterService
	log        *logrus.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, reviews *service.ReviewService, newsletter *service.NewsletterService, log *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, reviews: reviews, newsletter: newsletter, log: log}
}

// ListProducts GET /api/products?category=&q=
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	list, err := h.catalog.List(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(list))
}

// GetProduct GET /api/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeCode(c, constant.CodeProductNotFound)
		return
	}
	detail, err := h.catalog.Get(id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(detail))
}

// ListReviews GET /api/reviews?productId=
func (h *CatalogHandler) ListReviews(c *gin.Context) {
	raw := c.Query("productId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, utils.CustomErrorWithTrace(constant.CodeMissingParams, "Product ID is required", middleware.TraceID(c)))
		return
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeCode(c, constant.CodeParamsTypeError)
		return
	}
	list, err := h.reviews.List(id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(list))
}

// CreateReview POST /api/reviews
func (h *CatalogHandler) CreateReview(c *gin.Context) {
	var req dto.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeCode(c, constant.CodeReviewInvalid)
		return
	}
	review, err := h.reviews.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, utils.Success(review))
}

// Subscribe POST /api/newsletter
func (h *CatalogHandler) Subscribe(c *gin.Context) {
	var req dto.NewsletterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeCode(c, constant.CodeEmailInvalid)
		return
	}
	if err := h.newsletter.Subscribe(req.Email); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessMsg("Successfully subscribed to the newsletter!"))
}
