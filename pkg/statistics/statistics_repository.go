package statistics

import (
	"context"
	"time"

	"snackstock-api/entities"

	"gorm.io/gorm"
)

type (
	StatisticsRepository interface {
		// AddConsumptionRecord appends to the history log; records are
		// never updated or deleted afterwards.
		AddConsumptionRecord(ctx context.Context, record *entities.ConsumptionRecord) error
		GetConsumptionHistory(ctx context.Context, userID string, since time.Time) ([]*entities.ConsumptionRecord, error)
	}

	statisticsRepository struct {
		db *gorm.DB
	}
)

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) AddConsumptionRecord(ctx context.Context, record *entities.ConsumptionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *statisticsRepository) GetConsumptionHistory(ctx context.Context, userID string, since time.Time) ([]*entities.ConsumptionRecord, error) {
	var records []*entities.ConsumptionRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at >= ?", userID, since).
		Order("consumed_at desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
