package dto

import catalogmodel "swim-shop-api/internal/model/catalog"

type ReviewBody struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// CreateReviewReq accepts productId as a JSON number.
type CreateReviewReq struct {
	ProductID uint64      `json:"productId"`
	Review    *ReviewBody `json:"review"`
}

type ProductDetailResp struct {
	catalogmodel.Product
	Reviews []catalogmodel.Review `json:"reviews"`
}

type NewsletterReq struct {
	Email string `json:"email" binding:"required,email"`
}
