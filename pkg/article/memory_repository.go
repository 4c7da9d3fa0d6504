package article

import (
	"context"
	"sort"
	"sync"
	"time"

	"snackstock-api/entities"

	"gorm.io/gorm"
)

// memoryArticleRepository is the in-memory adapter behind the same
// ArticleRepository interface as the postgres one. It backs local
// development (DB_DRIVER: memory) and the package tests.
type memoryArticleRepository struct {
	mu       sync.RWMutex
	articles map[string]*entities.Article
}

func NewMemoryArticleRepository() ArticleRepository {
	return &memoryArticleRepository{articles: make(map[string]*entities.Article)}
}

func (r *memoryArticleRepository) AddArticle(_ context.Context, article *entities.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}
	copied := *article
	r.articles[article.ID.String()] = &copied
	return nil
}

func (r *memoryArticleRepository) AddArticles(ctx context.Context, articles []*entities.Article) error {
	for _, a := range articles {
		if err := r.AddArticle(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (r *memoryArticleRepository) GetArticleByID(_ context.Context, id string) (*entities.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	article, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *article
	return &copied, nil
}

func (r *memoryArticleRepository) UpdateArticle(_ context.Context, article *entities.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.articles[article.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	article.UpdatedAt = time.Now()
	copied := *article
	r.articles[article.ID.String()] = &copied
	return nil
}

func (r *memoryArticleRepository) DeleteArticle(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.articles, id)
	return nil
}

func (r *memoryArticleRepository) GetArticles(_ context.Context, userID string) ([]*entities.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var articles []*entities.Article
	for _, a := range r.articles {
		if a.UserID.String() == userID {
			copied := *a
			articles = append(articles, &copied)
		}
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	return articles, nil
}

func (r *memoryArticleRepository) GetArticlesByCategory(ctx context.Context, userID string, category string) ([]*entities.Article, error) {
	all, err := r.GetArticles(ctx, userID)
	if err != nil {
		return nil, err
	}
	var articles []*entities.Article
	for _, a := range all {
		if a.Category == category {
			articles = append(articles, a)
		}
	}
	sortByExpiry(articles)
	return articles, nil
}

func (r *memoryArticleRepository) GetArticlesByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.Article, error) {
	all, err := r.GetArticles(ctx, userID)
	if err != nil {
		return nil, err
	}
	var articles []*entities.Article
	for _, a := range all {
		if a.ExpiryDate == nil {
			continue
		}
		if a.ExpiryDate.Before(startDate) || a.ExpiryDate.After(endDate) {
			continue
		}
		articles = append(articles, a)
	}
	sortByExpiry(articles)
	return articles, nil
}

func sortByExpiry(articles []*entities.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		if articles[i].ExpiryDate == nil || articles[j].ExpiryDate == nil {
			return articles[j].ExpiryDate == nil
		}
		return articles[i].ExpiryDate.Before(*articles[j].ExpiryDate)
	})
}
