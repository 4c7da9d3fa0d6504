package statistics

import (
	"context"
	"sort"
	"sync"
	"time"

	"snackstock-api/entities"
)

// memoryStatisticsRepository is the in-memory adapter behind
// StatisticsRepository (DB_DRIVER: memory, and the package tests).
type memoryStatisticsRepository struct {
	mu      sync.RWMutex
	records []*entities.ConsumptionRecord
}

func NewMemoryStatisticsRepository() StatisticsRepository {
	return &memoryStatisticsRepository{}
}

func (r *memoryStatisticsRepository) AddConsumptionRecord(_ context.Context, record *entities.ConsumptionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *record
	r.records = append(r.records, &copied)
	return nil
}

func (r *memoryStatisticsRepository) GetConsumptionHistory(_ context.Context, userID string, since time.Time) ([]*entities.ConsumptionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var records []*entities.ConsumptionRecord
	for _, record := range r.records {
		if record.UserID.String() != userID || record.ConsumedAt.Before(since) {
			continue
		}
		copied := *record
		records = append(records, &copied)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ConsumedAt.After(records[j].ConsumedAt)
	})
	return records, nil
}
