package article

import (
	"context"
	"time"

	"snackstock-api/entities"

	"gorm.io/gorm"
)

type (
	ArticleRepository interface {
		AddArticle(ctx context.Context, article *entities.Article) error
		AddArticles(ctx context.Context, articles []*entities.Article) error
		GetArticleByID(ctx context.Context, id string) (*entities.Article, error)
		UpdateArticle(ctx context.Context, article *entities.Article) error
		DeleteArticle(ctx context.Context, id string) error
		GetArticles(ctx context.Context, userID string) ([]*entities.Article, error)
		GetArticlesByCategory(ctx context.Context, userID string, category string) ([]*entities.Article, error)
		GetArticlesByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.Article, error)
	}

	articleRepository struct {
		db *gorm.DB
	}
)

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) AddArticle(ctx context.Context, article *entities.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) AddArticles(ctx context.Context, articles []*entities.Article) error {
	return r.db.WithContext(ctx).Create(articles).Error
}

func (r *articleRepository) GetArticleByID(ctx context.Context, id string) (*entities.Article, error) {
	var article entities.Article
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) UpdateArticle(ctx context.Context, article *entities.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *articleRepository) DeleteArticle(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Article{}).Error
}

func (r *articleRepository) GetArticles(ctx context.Context, userID string) ([]*entities.Article, error) {
	var articles []*entities.Article
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) GetArticlesByCategory(ctx context.Context, userID string, category string) ([]*entities.Article, error) {
	var articles []*entities.Article
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		Order("expiry_date asc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) GetArticlesByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.Article, error) {
	var articles []*entities.Article
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("expiry_date asc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
