package statistics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"snackstock-api/domain"
	"snackstock-api/entities"
)

// Aggregate builds the full statistics report for a user. It is a pure
// function of its inputs: callers fetch the current inventory and at least
// the trailing 30 days of consumption history, and inject the reference
// time. Calling it twice with identical inputs yields identical output.
func Aggregate(user *entities.User, articles []*entities.Article, records []*entities.ConsumptionRecord, now time.Time) domain.StatsReport {
	report := domain.StatsReport{
		User:        buildUserStats(user, now),
		Inventory:   buildInventoryStats(user, articles, now),
		Calories:    buildCalorieStats(records, now),
		GeneratedAt: now,
	}

	report.TopConsumed = topConsumed(records)
	report.LeastConsumed = leastConsumed(articles, report.TopConsumed)
	report.WastedProducts = wastedProducts(records)
	report.Recommendations = buildRecommendations(report.TopConsumed, report.WastedProducts, report.Inventory.WasteRate)

	return report
}

func buildUserStats(user *entities.User, now time.Time) domain.StatsUser {
	since := user.CreatedAt
	if user.FirstLogin != nil {
		since = *user.FirstLogin
	}
	daysInApp := int(math.Floor(now.Sub(since).Hours() / 24))

	return domain.StatsUser{
		Name:          user.Name,
		Email:         user.Email,
		DaysInApp:     daysInApp,
		TotalAdded:    user.TotalProductsAdded,
		TotalConsumed: user.TotalProductsConsumed,
		TotalWasted:   user.TotalProductsWasted,
	}
}

func buildInventoryStats(user *entities.User, articles []*entities.Article, now time.Time) domain.StatsInventory {
	// Articles already past their date still count as critical here,
	// matching the expiry_date <= now + 7 days query of the read path.
	weekAhead := now.AddDate(0, 0, 7)
	critical := 0
	for _, article := range articles {
		if article.ExpiryDate != nil && !article.ExpiryDate.After(weekAhead) {
			critical++
		}
	}

	return domain.StatsInventory{
		TotalProducts:    len(articles),
		CriticalProducts: critical,
		WasteRate:        WasteRate(user.TotalProductsConsumed, user.TotalProductsWasted),
	}
}

// WasteRate is the lifetime percentage of tracked products that were wasted,
// rounded to the nearest integer. Zero when nothing has been consumed or
// wasted yet.
func WasteRate(totalConsumed, totalWasted int) int {
	total := totalConsumed + totalWasted
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(totalWasted) / float64(total) * 100))
}

func buildCalorieStats(records []*entities.ConsumptionRecord, now time.Time) domain.StatsCalories {
	today := dateOf(now)
	weekAgo := dateOf(now.AddDate(0, 0, -7))
	monthAgo := now.AddDate(0, 0, -30)

	var caloriesToday, caloriesWeek, caloriesMonth int
	for _, record := range records {
		if record.Action != entities.ActionConsumed {
			continue
		}
		day := dateOf(record.ConsumedAt)
		if day.Equal(today) {
			caloriesToday += record.Calories
		}
		if !day.Before(weekAgo) {
			caloriesWeek += record.Calories
		}
		if !record.ConsumedAt.Before(monthAgo) {
			caloriesMonth += record.Calories
		}
	}

	return domain.StatsCalories{
		Today:        caloriesToday,
		Week:         caloriesWeek,
		Month:        caloriesMonth,
		DailyAverage: int(math.Round(float64(caloriesMonth) / 30)),
	}
}

type productKey struct {
	name     string
	category string
}

func topConsumed(records []*entities.ConsumptionRecord) []domain.ConsumedProduct {
	counts := make(map[productKey]*domain.ConsumedProduct)
	for _, record := range records {
		if record.Action != entities.ActionConsumed {
			continue
		}
		key := productKey{record.ProductName, record.Category}
		entry, ok := counts[key]
		if !ok {
			entry = &domain.ConsumedProduct{Name: record.ProductName, Category: record.Category, Trend: "up"}
			counts[key] = entry
		}
		entry.TimesConsumed++
		entry.TotalCalories += record.Calories
	}

	products := make([]domain.ConsumedProduct, 0, len(counts))
	for _, entry := range counts {
		entry.ConsumptionRate = min(100, entry.TimesConsumed*10)
		products = append(products, *entry)
	}

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].TimesConsumed != products[j].TimesConsumed {
			return products[i].TimesConsumed > products[j].TimesConsumed
		}
		return products[i].Name < products[j].Name
	})

	if len(products) > 5 {
		products = products[:5]
	}
	return products
}

func leastConsumed(articles []*entities.Article, top []domain.ConsumedProduct) []domain.ConsumedProduct {
	topNames := make(map[string]bool, len(top))
	for _, product := range top {
		topNames[product.Name] = true
	}

	least := make([]domain.ConsumedProduct, 0, 5)
	for _, article := range articles {
		if topNames[article.Name] {
			continue
		}
		least = append(least, domain.ConsumedProduct{
			Name:     article.Name,
			Category: article.Category,
			Trend:    "down",
		})
		if len(least) == 5 {
			break
		}
	}
	return least
}

func wastedProducts(records []*entities.ConsumptionRecord) []domain.WastedProduct {
	counts := make(map[productKey]*domain.WastedProduct)
	for _, record := range records {
		if record.Action != entities.ActionWasted {
			continue
		}
		key := productKey{record.ProductName, record.Category}
		entry, ok := counts[key]
		if !ok {
			entry = &domain.WastedProduct{Name: record.ProductName, Category: record.Category}
			counts[key] = entry
		}
		entry.TimesWasted++
	}

	products := make([]domain.WastedProduct, 0, len(counts))
	for _, entry := range counts {
		products = append(products, *entry)
	}

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].TimesWasted != products[j].TimesWasted {
			return products[i].TimesWasted > products[j].TimesWasted
		}
		return products[i].Name < products[j].Name
	})

	if len(products) > 5 {
		products = products[:5]
	}
	return products
}

// buildRecommendations evaluates three independent rules in a fixed order;
// each appends at most one entry and none suppresses another.
func buildRecommendations(top []domain.ConsumedProduct, wasted []domain.WastedProduct, wasteRate int) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, 3)

	if wasteRate > 20 {
		recommendations = append(recommendations, domain.Recommendation{
			Type:    "warning",
			Message: fmt.Sprintf("Your waste rate is %d%%. Try buying smaller quantities of products you don't consume.", wasteRate),
		})
	}

	if len(top) > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Type:    "success",
			Message: fmt.Sprintf("%s is your favorite product. Make sure to always keep it in stock.", top[0].Name),
		})
	}

	if len(wasted) > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Type:    "info",
			Message: fmt.Sprintf("Avoid buying %s, you have wasted this product %d times.", wasted[0].Name, wasted[0].TimesWasted),
		})
	}

	return recommendations
}

func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
