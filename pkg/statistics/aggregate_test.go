package statistics

import (
	"testing"
	"time"

	"snackstock-api/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var statsNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func newStatsUser(consumed, wasted int) *entities.User {
	firstLogin := statsNow.AddDate(0, 0, -45)
	return &entities.User{
		ID:                    uuid.New(),
		Email:                 "test@snackstock.com",
		Name:                  "Usuario Test",
		FirstLogin:            &firstLogin,
		TotalProductsAdded:    150,
		TotalProductsConsumed: consumed,
		TotalProductsWasted:   wasted,
	}
}

func consumedRecords(userID uuid.UUID, name, category string, calories, times, daysAgo int) []*entities.ConsumptionRecord {
	records := make([]*entities.ConsumptionRecord, 0, times)
	for i := 0; i < times; i++ {
		records = append(records, &entities.ConsumptionRecord{
			ID:          uuid.New(),
			UserID:      userID,
			ProductName: name,
			Category:    category,
			Quantity:    1,
			Calories:    calories,
			Action:      entities.ActionConsumed,
			ConsumedAt:  statsNow.AddDate(0, 0, -daysAgo),
		})
	}
	return records
}

func TestWasteRate(t *testing.T) {
	require.Equal(t, 0, WasteRate(0, 0))
	require.Equal(t, 14, WasteRate(89, 15))
	require.Equal(t, 50, WasteRate(1, 1))
	require.Equal(t, 100, WasteRate(0, 7))
}

func TestAggregateUserAndInventory(t *testing.T) {
	user := newStatsUser(89, 15)

	expirySoon := statsNow.AddDate(0, 0, 2)
	expiryLater := statsNow.AddDate(0, 0, 20)
	expired := statsNow.AddDate(0, 0, -2)
	articles := []*entities.Article{
		{ID: uuid.New(), UserID: user.ID, Name: "Leche", Category: "Lácteos", ExpiryDate: &expirySoon},
		{ID: uuid.New(), UserID: user.ID, Name: "Arroz", Category: "Despensa", ExpiryDate: &expiryLater},
		{ID: uuid.New(), UserID: user.ID, Name: "Yogurt", Category: "Lácteos", ExpiryDate: &expired},
		{ID: uuid.New(), UserID: user.ID, Name: "Sal", Category: "Despensa"},
	}

	report := Aggregate(user, articles, nil, statsNow)

	require.Equal(t, 45, report.User.DaysInApp)
	require.Equal(t, 150, report.User.TotalAdded)
	require.Equal(t, 89, report.User.TotalConsumed)
	require.Equal(t, 15, report.User.TotalWasted)

	require.Equal(t, 4, report.Inventory.TotalProducts)
	// Both the soon-to-expire and the already-expired article count as
	// critical; articles without an expiry date never do.
	require.Equal(t, 2, report.Inventory.CriticalProducts)
	require.Equal(t, 14, report.Inventory.WasteRate)
}

func TestAggregateCalorieWindows(t *testing.T) {
	user := newStatsUser(10, 0)
	var records []*entities.ConsumptionRecord
	records = append(records, consumedRecords(user.ID, "Leche", "Lácteos", 60, 1, 0)...)   // today
	records = append(records, consumedRecords(user.ID, "Pan", "Panadería", 265, 1, 5)...)  // this week
	records = append(records, consumedRecords(user.ID, "Arroz", "Despensa", 130, 1, 20)...) // this month
	records = append(records, &entities.ConsumptionRecord{
		ID: uuid.New(), UserID: user.ID, ProductName: "Lechuga", Category: "Verduras",
		Quantity: 1, Calories: 15, Action: entities.ActionWasted, ConsumedAt: statsNow,
	})

	report := Aggregate(user, nil, records, statsNow)

	require.Equal(t, 60, report.Calories.Today)
	require.Equal(t, 325, report.Calories.Week)
	require.Equal(t, 455, report.Calories.Month)
	require.Equal(t, 15, report.Calories.DailyAverage) // round(455/30)
}

func TestAggregateTopConsumedClampsRate(t *testing.T) {
	user := newStatsUser(22, 0)
	var records []*entities.ConsumptionRecord
	records = append(records, consumedRecords(user.ID, "Leche", "Lácteos", 60, 12, 3)...)
	records = append(records, consumedRecords(user.ID, "Pan", "Panadería", 265, 10, 3)...)

	report := Aggregate(user, nil, records, statsNow)

	require.Len(t, report.TopConsumed, 2)
	top := report.TopConsumed[0]
	require.Equal(t, "Leche", top.Name)
	require.Equal(t, 12, top.TimesConsumed)
	require.Equal(t, 720, top.TotalCalories)
	require.Equal(t, 100, top.ConsumptionRate) // clamped from 120
	require.Equal(t, "up", top.Trend)

	second := report.TopConsumed[1]
	require.Equal(t, "Pan", second.Name)
	require.Equal(t, 100, second.ConsumptionRate)
}

func TestAggregateTopConsumedKeepsFive(t *testing.T) {
	user := newStatsUser(21, 0)
	names := []string{"Leche", "Pan", "Huevos", "Yogurt", "Pollo", "Arroz"}
	var records []*entities.ConsumptionRecord
	for i, name := range names {
		records = append(records, consumedRecords(user.ID, name, "General", 100, 6-i, 2)...)
	}

	report := Aggregate(user, nil, records, statsNow)

	require.Len(t, report.TopConsumed, 5)
	require.Equal(t, "Leche", report.TopConsumed[0].Name)
	require.NotContains(t, []string{
		report.TopConsumed[0].Name, report.TopConsumed[1].Name, report.TopConsumed[2].Name,
		report.TopConsumed[3].Name, report.TopConsumed[4].Name,
	}, "Arroz")
}

func TestAggregateLeastConsumed(t *testing.T) {
	user := newStatsUser(12, 0)
	records := consumedRecords(user.ID, "Leche", "Lácteos", 60, 12, 2)

	articles := []*entities.Article{
		{ID: uuid.New(), UserID: user.ID, Name: "Leche", Category: "Lácteos"},
		{ID: uuid.New(), UserID: user.ID, Name: "Avena", Category: "Despensa"},
		{ID: uuid.New(), UserID: user.ID, Name: "Galletas", Category: "Despensa"},
	}

	report := Aggregate(user, articles, records, statsNow)

	require.Len(t, report.LeastConsumed, 2)
	require.Equal(t, "Avena", report.LeastConsumed[0].Name)
	require.Equal(t, 0, report.LeastConsumed[0].TimesConsumed)
	require.Equal(t, 0, report.LeastConsumed[0].ConsumptionRate)
	require.Equal(t, "down", report.LeastConsumed[0].Trend)
}

func TestAggregateWastedProducts(t *testing.T) {
	user := newStatsUser(10, 7)
	var records []*entities.ConsumptionRecord
	for i := 0; i < 4; i++ {
		records = append(records, &entities.ConsumptionRecord{
			ID: uuid.New(), UserID: user.ID, ProductName: "Lechuga", Category: "Verduras",
			Quantity: 1, Calories: 15, Action: entities.ActionWasted, ConsumedAt: statsNow.AddDate(0, 0, -i),
		})
	}
	for i := 0; i < 3; i++ {
		records = append(records, &entities.ConsumptionRecord{
			ID: uuid.New(), UserID: user.ID, ProductName: "Tomates", Category: "Verduras",
			Quantity: 1, Calories: 18, Action: entities.ActionWasted, ConsumedAt: statsNow.AddDate(0, 0, -i),
		})
	}

	report := Aggregate(user, nil, records, statsNow)

	require.Len(t, report.WastedProducts, 2)
	require.Equal(t, "Lechuga", report.WastedProducts[0].Name)
	require.Equal(t, 4, report.WastedProducts[0].TimesWasted)
}

func TestAggregateRecommendations(t *testing.T) {
	// 30/10 gives a 25% waste rate: all three rules fire, in order.
	user := newStatsUser(30, 10)
	records := consumedRecords(user.ID, "Leche", "Lácteos", 60, 5, 2)
	records = append(records, &entities.ConsumptionRecord{
		ID: uuid.New(), UserID: user.ID, ProductName: "Lechuga", Category: "Verduras",
		Quantity: 1, Calories: 15, Action: entities.ActionWasted, ConsumedAt: statsNow,
	})

	report := Aggregate(user, nil, records, statsNow)

	require.Len(t, report.Recommendations, 3)
	require.Equal(t, "warning", report.Recommendations[0].Type)
	require.Contains(t, report.Recommendations[0].Message, "25%")
	require.Equal(t, "success", report.Recommendations[1].Type)
	require.Contains(t, report.Recommendations[1].Message, "Leche")
	require.Equal(t, "info", report.Recommendations[2].Type)
	require.Contains(t, report.Recommendations[2].Message, "Lechuga")
}

func TestAggregateRecommendationsEmpty(t *testing.T) {
	user := newStatsUser(0, 0)
	report := Aggregate(user, nil, nil, statsNow)
	require.Empty(t, report.Recommendations)
	require.Equal(t, 0, report.Inventory.WasteRate)
}

func TestAggregateIsDeterministic(t *testing.T) {
	user := newStatsUser(89, 15)
	var records []*entities.ConsumptionRecord
	records = append(records, consumedRecords(user.ID, "Leche", "Lácteos", 60, 12, 3)...)
	records = append(records, consumedRecords(user.ID, "Pan", "Panadería", 265, 10, 5)...)

	expiry := statsNow.AddDate(0, 0, 4)
	articles := []*entities.Article{
		{ID: uuid.New(), UserID: user.ID, Name: "Queso", Category: "Lácteos", ExpiryDate: &expiry},
	}

	first := Aggregate(user, articles, records, statsNow)
	second := Aggregate(user, articles, records, statsNow)
	require.Equal(t, first, second)
}
