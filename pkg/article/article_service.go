package article

import (
	"context"
	"errors"
	"time"

	"snackstock-api/domain"
	"snackstock-api/entities"
	"snackstock-api/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultCriticalDays = 3

type (
	ArticleService interface {
		AddArticle(ctx context.Context, req domain.AddArticleRequest, userID string) (domain.ArticleResponse, error)
		UpdateArticle(ctx context.Context, id string, req domain.UpdateArticleRequest, userID string) (domain.ArticleResponse, error)
		DeleteArticle(ctx context.Context, id string, userID string) error
		GetArticles(ctx context.Context, userID string, category string) ([]domain.ArticleResponse, error)
		GetArticleByID(ctx context.Context, id string, userID string) (domain.ArticleResponse, error)
		GetCriticalArticles(ctx context.Context, userID string, daysThreshold int) ([]domain.ArticleResponse, error)
	}

	articleService struct {
		articleRepository ArticleRepository
		userRepository    user.UserRepository
	}
)

func NewArticleService(articleRepository ArticleRepository, userRepository user.UserRepository) ArticleService {
	return &articleService{
		articleRepository: articleRepository,
		userRepository:    userRepository,
	}
}

func (s *articleService) AddArticle(ctx context.Context, req domain.AddArticleRequest, userID string) (domain.ArticleResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ArticleResponse{}, domain.ErrParseUUID
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ArticleResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	category := req.Category
	if category == "" {
		category = "General"
	}

	article := &entities.Article{
		ID:         uuid.New(),
		UserID:     userUUID,
		Name:       req.Name,
		Quantity:   quantity,
		Category:   category,
		ExpiryDate: expiryDate,
	}

	if err := s.articleRepository.AddArticle(ctx, article); err != nil {
		return domain.ArticleResponse{}, err
	}

	if err := s.userRepository.IncrementCounter(ctx, userID, user.CounterProductsAdded); err != nil {
		return domain.ArticleResponse{}, err
	}

	return toArticleResponse(article, time.Now()), nil
}

func (s *articleService) UpdateArticle(ctx context.Context, id string, req domain.UpdateArticleRequest, userID string) (domain.ArticleResponse, error) {
	article, err := s.getOwnedArticle(ctx, id, userID)
	if err != nil {
		return domain.ArticleResponse{}, err
	}

	if req.Name != "" {
		article.Name = req.Name
	}
	if req.Quantity > 0 {
		article.Quantity = req.Quantity
	}
	if req.Category != "" {
		article.Category = req.Category
	}
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ArticleResponse{}, domain.ErrInvalidExpiryDate
		}
		article.ExpiryDate = &parsed
	}

	if err := s.articleRepository.UpdateArticle(ctx, article); err != nil {
		return domain.ArticleResponse{}, err
	}

	return toArticleResponse(article, time.Now()), nil
}

func (s *articleService) DeleteArticle(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedArticle(ctx, id, userID); err != nil {
		return err
	}
	return s.articleRepository.DeleteArticle(ctx, id)
}

func (s *articleService) GetArticles(ctx context.Context, userID string, category string) ([]domain.ArticleResponse, error) {
	var articles []*entities.Article
	var err error
	if category != "" {
		articles, err = s.articleRepository.GetArticlesByCategory(ctx, userID, category)
	} else {
		articles, err = s.articleRepository.GetArticles(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]domain.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		response = append(response, toArticleResponse(article, now))
	}
	return response, nil
}

func (s *articleService) GetArticleByID(ctx context.Context, id string, userID string) (domain.ArticleResponse, error) {
	article, err := s.getOwnedArticle(ctx, id, userID)
	if err != nil {
		return domain.ArticleResponse{}, err
	}
	return toArticleResponse(article, time.Now()), nil
}

func (s *articleService) GetCriticalArticles(ctx context.Context, userID string, daysThreshold int) ([]domain.ArticleResponse, error) {
	if daysThreshold <= 0 {
		daysThreshold = DefaultCriticalDays
	}

	// Fetch from the start of today so articles expiring later today are
	// included; FilterCritical applies the exact day-count ladder on top.
	now := time.Now()
	year, month, day := now.Date()
	startOfToday := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	articles, err := s.articleRepository.GetArticlesByExpiryRange(ctx, userID, startOfToday, now.AddDate(0, 0, daysThreshold))
	if err != nil {
		return nil, err
	}

	critical := FilterCritical(articles, daysThreshold, now)

	response := make([]domain.ArticleResponse, 0, len(critical))
	for _, article := range critical {
		response = append(response, toArticleResponse(article, now))
	}
	return response, nil
}

func (s *articleService) getOwnedArticle(ctx context.Context, id string, userID string) (*entities.Article, error) {
	article, err := s.articleRepository.GetArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	if article.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return article, nil
}

func toArticleResponse(article *entities.Article, now time.Time) domain.ArticleResponse {
	daysLeft, status := ClassifyExpiry(article.ExpiryDate, now)
	return domain.ArticleResponse{
		ID:         article.ID.String(),
		Name:       article.Name,
		Quantity:   article.Quantity,
		Category:   article.Category,
		ExpiryDate: article.ExpiryDate,
		DaysLeft:   daysLeft,
		Status:     status,
		CreatedAt:  article.CreatedAt,
	}
}
