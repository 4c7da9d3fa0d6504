package article

import (
	"testing"
	"time"

	"snackstock-api/domain"
	"snackstock-api/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func expiryIn(d time.Duration) *time.Time {
	t := testNow.Add(d)
	return &t
}

func TestClassifyExpiryLadder(t *testing.T) {
	tests := []struct {
		name       string
		expiry     *time.Time
		wantDays   int
		wantStatus string
	}{
		{"exactly 3 days is red", expiryIn(72 * time.Hour), 3, domain.StatusRed},
		{"exactly 7 days is yellow", expiryIn(7 * 24 * time.Hour), 7, domain.StatusYellow},
		{"exactly 8 days is green", expiryIn(8 * 24 * time.Hour), 8, domain.StatusGreen},
		{"4 days is yellow", expiryIn(4 * 24 * time.Hour), 4, domain.StatusYellow},
		{"today is red", expiryIn(0), 0, domain.StatusRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, status := ClassifyExpiry(tt.expiry, testNow)
			require.NotNil(t, days)
			require.Equal(t, tt.wantDays, *days)
			require.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestClassifyExpiryRoundsUp(t *testing.T) {
	// 36 hours out counts as 2 days, not 1.
	days, status := ClassifyExpiry(expiryIn(36*time.Hour), testNow)
	require.NotNil(t, days)
	require.Equal(t, 2, *days)
	require.Equal(t, domain.StatusRed, status)
}

func TestClassifyExpiryPastDateStaysRed(t *testing.T) {
	days, status := ClassifyExpiry(expiryIn(-24*time.Hour), testNow)
	require.NotNil(t, days)
	require.Equal(t, -1, *days)
	require.Equal(t, domain.StatusRed, status)
}

func TestClassifyExpiryAbsent(t *testing.T) {
	days, status := ClassifyExpiry(nil, testNow)
	require.Nil(t, days)
	require.Empty(t, status)
}

func TestFilterCritical(t *testing.T) {
	userID := uuid.New()
	articles := []*entities.Article{
		{ID: uuid.New(), UserID: userID, Name: "Queso", ExpiryDate: expiryIn(5 * 24 * time.Hour)},
		{ID: uuid.New(), UserID: userID, Name: "Leche", ExpiryDate: expiryIn(24 * time.Hour)},
		{ID: uuid.New(), UserID: userID, Name: "Pan", ExpiryDate: expiryIn(48 * time.Hour)},
		{ID: uuid.New(), UserID: userID, Name: "Yogurt vencido", ExpiryDate: expiryIn(-48 * time.Hour)},
		{ID: uuid.New(), UserID: userID, Name: "Arroz"},
	}

	critical := FilterCritical(articles, 3, testNow)

	require.Len(t, critical, 2)
	require.Equal(t, "Leche", critical[0].Name)
	require.Equal(t, "Pan", critical[1].Name)
}

func TestFilterCriticalWiderThreshold(t *testing.T) {
	userID := uuid.New()
	articles := []*entities.Article{
		{ID: uuid.New(), UserID: userID, Name: "Queso", ExpiryDate: expiryIn(5 * 24 * time.Hour)},
		{ID: uuid.New(), UserID: userID, Name: "Cereal", ExpiryDate: expiryIn(9 * 24 * time.Hour)},
	}

	critical := FilterCritical(articles, 7, testNow)

	require.Len(t, critical, 1)
	require.Equal(t, "Queso", critical[0].Name)
}
