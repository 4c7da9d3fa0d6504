package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetStatistics     = "statistics retrieved successfully"
	MessageSuccessRecordConsumption = "consumption recorded successfully"

	MessageFailedGetStatistics     = "failed to retrieve statistics"
	MessageFailedRecordConsumption = "failed to record consumption"

	ErrInvalidAction = errors.New("action must be consumed or wasted")
)

type (
	RecordConsumptionRequest struct {
		ProductName string `json:"product_name" validate:"required"`
		Category    string `json:"category" validate:"omitempty"`
		Quantity    int    `json:"quantity" validate:"omitempty,min=1"`
		Calories    int    `json:"calories" validate:"omitempty,min=0"`
		Action      string `json:"action" validate:"required,oneof=consumed wasted"`
	}

	StatsUser struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		DaysInApp     int    `json:"days_in_app"`
		TotalAdded    int    `json:"total_added"`
		TotalConsumed int    `json:"total_consumed"`
		TotalWasted   int    `json:"total_wasted"`
	}

	StatsInventory struct {
		TotalProducts    int `json:"total_products"`
		CriticalProducts int `json:"critical_products"`
		WasteRate        int `json:"waste_rate"`
	}

	StatsCalories struct {
		Today        int `json:"today"`
		Week         int `json:"week"`
		Month        int `json:"month"`
		DailyAverage int `json:"daily_average"`
	}

	ConsumedProduct struct {
		Name            string `json:"name"`
		Category        string `json:"category"`
		TimesConsumed   int    `json:"times_consumed"`
		TotalCalories   int    `json:"total_calories"`
		ConsumptionRate int    `json:"consumption_rate"`
		Trend           string `json:"trend"`
	}

	WastedProduct struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		TimesWasted int    `json:"times_wasted"`
	}

	Recommendation struct {
		Type    string `json:"type"` // "warning", "success" or "info"
		Message string `json:"message"`
	}

	StatsReport struct {
		User            StatsUser         `json:"user"`
		Inventory       StatsInventory    `json:"inventory"`
		Calories        StatsCalories     `json:"calories"`
		TopConsumed     []ConsumedProduct `json:"top_consumed"`
		LeastConsumed   []ConsumedProduct `json:"least_consumed"`
		WastedProducts  []WastedProduct   `json:"wasted_products"`
		Recommendations []Recommendation  `json:"recommendations"`
		GeneratedAt     time.Time         `json:"generated_at"`
	}
)
