package statistics

import (
	"context"
	"errors"
	"time"

	"snackstock-api/domain"
	"snackstock-api/entities"
	"snackstock-api/pkg/article"
	"snackstock-api/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	StatisticsService interface {
		GetStatistics(ctx context.Context, userID string, now time.Time) (domain.StatsReport, error)
		RecordConsumption(ctx context.Context, req domain.RecordConsumptionRequest, userID string) error
	}

	statisticsService struct {
		statisticsRepository StatisticsRepository
		userRepository       user.UserRepository
		articleRepository    article.ArticleRepository
	}
)

func NewStatisticsService(statisticsRepository StatisticsRepository, userRepository user.UserRepository, articleRepository article.ArticleRepository) StatisticsService {
	return &statisticsService{
		statisticsRepository: statisticsRepository,
		userRepository:       userRepository,
		articleRepository:    articleRepository,
	}
}

func (s *statisticsService) GetStatistics(ctx context.Context, userID string, now time.Time) (domain.StatsReport, error) {
	usr, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StatsReport{}, domain.ErrUserNotFound
		}
		return domain.StatsReport{}, err
	}

	articles, err := s.articleRepository.GetArticles(ctx, userID)
	if err != nil {
		return domain.StatsReport{}, err
	}

	// The aggregator derives the today and 7-day windows itself, so the
	// fetched history must span the full 30 days.
	monthAgo := now.AddDate(0, 0, -30)
	records, err := s.statisticsRepository.GetConsumptionHistory(ctx, userID, monthAgo)
	if err != nil {
		return domain.StatsReport{}, err
	}

	return Aggregate(usr, articles, records, now), nil
}

func (s *statisticsService) RecordConsumption(ctx context.Context, req domain.RecordConsumptionRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if req.Action != entities.ActionConsumed && req.Action != entities.ActionWasted {
		return domain.ErrInvalidAction
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	category := req.Category
	if category == "" {
		category = "General"
	}

	calories := req.Calories
	if calories <= 0 {
		calories = EstimateCalories(req.ProductName, quantity)
	}

	record := &entities.ConsumptionRecord{
		ID:          uuid.New(),
		UserID:      userUUID,
		ProductName: req.ProductName,
		Category:    category,
		Quantity:    quantity,
		Calories:    calories,
		Action:      req.Action,
		ConsumedAt:  time.Now(),
	}

	if err := s.statisticsRepository.AddConsumptionRecord(ctx, record); err != nil {
		return err
	}

	counter := user.CounterProductsConsumed
	if req.Action == entities.ActionWasted {
		counter = user.CounterProductsWasted
	}
	return s.userRepository.IncrementCounter(ctx, userID, counter)
}
