package statistics

import (
	"context"
	"testing"
	"time"

	"snackstock-api/domain"
	"snackstock-api/entities"
	"snackstock-api/pkg/article"
	"snackstock-api/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type statsFixture struct {
	service     StatisticsService
	userRepo    user.UserRepository
	articleRepo article.ArticleRepository
	statsRepo   StatisticsRepository
	user        *entities.User
}

func newStatsFixture(t *testing.T) *statsFixture {
	t.Helper()

	userRepo := user.NewMemoryUserRepository()
	articleRepo := article.NewMemoryArticleRepository()
	statsRepo := NewMemoryStatisticsRepository()

	usr := &entities.User{
		ID:    uuid.New(),
		Email: "test@snackstock.com",
		Name:  "Usuario Test",
	}
	require.NoError(t, userRepo.CreateUser(context.Background(), usr))

	return &statsFixture{
		service:     NewStatisticsService(statsRepo, userRepo, articleRepo),
		userRepo:    userRepo,
		articleRepo: articleRepo,
		statsRepo:   statsRepo,
		user:        usr,
	}
}

func TestRecordConsumptionAppendsAndCounts(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	err := f.service.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		ProductName: "Leche",
		Category:    "Lácteos",
		Quantity:    2,
		Action:      entities.ActionConsumed,
	}, f.user.ID.String())
	require.NoError(t, err)

	records, err := f.statsRepo.GetConsumptionHistory(ctx, f.user.ID.String(), time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Leche", records[0].ProductName)
	require.Equal(t, 2, records[0].Quantity)
	require.Equal(t, 120, records[0].Calories) // estimated: 60 per unit
	require.Equal(t, entities.ActionConsumed, records[0].Action)

	stored, err := f.userRepo.GetUserByID(ctx, f.user.ID.String())
	require.NoError(t, err)
	require.Equal(t, 1, stored.TotalProductsConsumed)
	require.Equal(t, 0, stored.TotalProductsWasted)
}

func TestRecordConsumptionWastedCounter(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	err := f.service.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		ProductName: "Lechuga",
		Action:      entities.ActionWasted,
	}, f.user.ID.String())
	require.NoError(t, err)

	stored, err := f.userRepo.GetUserByID(ctx, f.user.ID.String())
	require.NoError(t, err)
	require.Equal(t, 0, stored.TotalProductsConsumed)
	require.Equal(t, 1, stored.TotalProductsWasted)
}

func TestRecordConsumptionDefaults(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	err := f.service.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		ProductName: "Producto Misterioso",
		Action:      entities.ActionConsumed,
	}, f.user.ID.String())
	require.NoError(t, err)

	records, err := f.statsRepo.GetConsumptionHistory(ctx, f.user.ID.String(), time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 1, records[0].Quantity)
	require.Equal(t, "General", records[0].Category)
	require.Equal(t, 100, records[0].Calories) // default estimate for unknown products
}

func TestRecordConsumptionKeepsExplicitCalories(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	err := f.service.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		ProductName: "Leche",
		Calories:    250,
		Action:      entities.ActionConsumed,
	}, f.user.ID.String())
	require.NoError(t, err)

	records, err := f.statsRepo.GetConsumptionHistory(ctx, f.user.ID.String(), time.Time{})
	require.NoError(t, err)
	require.Equal(t, 250, records[0].Calories)
}

func TestRecordConsumptionInvalidAction(t *testing.T) {
	f := newStatsFixture(t)

	err := f.service.RecordConsumption(context.Background(), domain.RecordConsumptionRequest{
		ProductName: "Leche",
		Action:      "eaten",
	}, f.user.ID.String())
	require.ErrorIs(t, err, domain.ErrInvalidAction)
}

func TestRecordConsumptionInvalidUserID(t *testing.T) {
	f := newStatsFixture(t)

	err := f.service.RecordConsumption(context.Background(), domain.RecordConsumptionRequest{
		ProductName: "Leche",
		Action:      entities.ActionConsumed,
	}, "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetStatisticsUnknownUser(t *testing.T) {
	f := newStatsFixture(t)

	_, err := f.service.GetStatistics(context.Background(), uuid.NewString(), time.Now())
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetStatisticsReflectsRecordedConsumption(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	expiry := time.Now().AddDate(0, 0, 2)
	require.NoError(t, f.articleRepo.AddArticle(ctx, &entities.Article{
		ID: uuid.New(), UserID: f.user.ID, Name: "Leche", Category: "Lácteos", ExpiryDate: &expiry,
	}))

	for i := 0; i < 3; i++ {
		require.NoError(t, f.service.RecordConsumption(ctx, domain.RecordConsumptionRequest{
			ProductName: "Leche",
			Category:    "Lácteos",
			Action:      entities.ActionConsumed,
		}, f.user.ID.String()))
	}

	report, err := f.service.GetStatistics(ctx, f.user.ID.String(), time.Now())
	require.NoError(t, err)

	require.Equal(t, 3, report.User.TotalConsumed)
	require.Equal(t, 1, report.Inventory.TotalProducts)
	require.Equal(t, 1, report.Inventory.CriticalProducts)
	require.Equal(t, 180, report.Calories.Today)
	require.Len(t, report.TopConsumed, 1)
	require.Equal(t, 30, report.TopConsumed[0].ConsumptionRate)
	require.Empty(t, report.LeastConsumed) // only inventory item is the top consumed one
}
