package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddArticle    = "article added successfully"
	MessageSuccessUpdateArticle = "article updated successfully"
	MessageSuccessDeleteArticle = "article deleted successfully"
	MessageSuccessGetArticles   = "articles retrieved successfully"
	MessageSuccessGetCritical   = "critical articles retrieved successfully"

	MessageFailedAddArticle    = "failed to add article"
	MessageFailedUpdateArticle = "failed to update article"
	MessageFailedDeleteArticle = "failed to delete article"
	MessageFailedGetArticles   = "failed to retrieve articles"
	MessageFailedGetCritical   = "failed to retrieve critical articles"

	ErrArticleNotFound    = errors.New("article not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrUnauthorizedAccess = errors.New("unauthorized access to article")
)

// Freshness statuses derived from days until expiry.
const (
	StatusRed    = "red"
	StatusYellow = "yellow"
	StatusGreen  = "green"
)

type (
	AddArticleRequest struct {
		Name       string `json:"name" validate:"required"`
		Quantity   int    `json:"quantity" validate:"omitempty,min=1"`
		Category   string `json:"category" validate:"omitempty"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
	}

	UpdateArticleRequest struct {
		Name       string `json:"name" validate:"omitempty"`
		Quantity   int    `json:"quantity" validate:"omitempty,min=1"`
		Category   string `json:"category" validate:"omitempty"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
	}

	// ArticleResponse carries the stored fields plus the derived freshness
	// view. DaysLeft and Status are absent when the article has no expiry
	// date.
	ArticleResponse struct {
		ID         string     `json:"id"`
		Name       string     `json:"name"`
		Quantity   int        `json:"quantity"`
		Category   string     `json:"category"`
		ExpiryDate *time.Time `json:"expiry_date,omitempty"`
		DaysLeft   *int       `json:"days_left,omitempty"`
		Status     string     `json:"status,omitempty"`
		CreatedAt  time.Time  `json:"created_at"`
	}
)
