package article

import (
	"context"
	"testing"
	"time"

	"snackstock-api/domain"
	"snackstock-api/entities"
	"snackstock-api/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type articleFixture struct {
	service  ArticleService
	userRepo user.UserRepository
	user     *entities.User
}

func newArticleFixture(t *testing.T) *articleFixture {
	t.Helper()

	userRepo := user.NewMemoryUserRepository()
	usr := &entities.User{
		ID:    uuid.New(),
		Email: "test@snackstock.com",
		Name:  "Usuario Test",
	}
	require.NoError(t, userRepo.CreateUser(context.Background(), usr))

	return &articleFixture{
		service:  NewArticleService(NewMemoryArticleRepository(), userRepo),
		userRepo: userRepo,
		user:     usr,
	}
}

func TestAddArticleDefaults(t *testing.T) {
	f := newArticleFixture(t)
	ctx := context.Background()

	resp, err := f.service.AddArticle(ctx, domain.AddArticleRequest{Name: "Sal"}, f.user.ID.String())
	require.NoError(t, err)

	require.Equal(t, "Sal", resp.Name)
	require.Equal(t, 1, resp.Quantity)
	require.Equal(t, "General", resp.Category)
	require.Nil(t, resp.ExpiryDate)
	require.Nil(t, resp.DaysLeft)
	require.Empty(t, resp.Status)

	stored, err := f.userRepo.GetUserByID(ctx, f.user.ID.String())
	require.NoError(t, err)
	require.Equal(t, 1, stored.TotalProductsAdded)
}

func TestAddArticleClassifiesExpiry(t *testing.T) {
	f := newArticleFixture(t)

	expiry := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	resp, err := f.service.AddArticle(context.Background(), domain.AddArticleRequest{
		Name:       "Leche",
		Quantity:   2,
		Category:   "Lácteos",
		ExpiryDate: expiry,
	}, f.user.ID.String())
	require.NoError(t, err)

	require.NotNil(t, resp.DaysLeft)
	require.Equal(t, domain.StatusGreen, resp.Status)
}

func TestAddArticleInvalidExpiry(t *testing.T) {
	f := newArticleFixture(t)

	_, err := f.service.AddArticle(context.Background(), domain.AddArticleRequest{
		Name:       "Leche",
		ExpiryDate: "10-03-2026",
	}, f.user.ID.String())
	require.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestUpdateArticlePartial(t *testing.T) {
	f := newArticleFixture(t)
	ctx := context.Background()

	created, err := f.service.AddArticle(ctx, domain.AddArticleRequest{
		Name:     "Pan",
		Quantity: 3,
		Category: "Panadería",
	}, f.user.ID.String())
	require.NoError(t, err)

	updated, err := f.service.UpdateArticle(ctx, created.ID, domain.UpdateArticleRequest{
		Quantity: 5,
	}, f.user.ID.String())
	require.NoError(t, err)

	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Pan", updated.Name)
	require.Equal(t, 5, updated.Quantity)
	require.Equal(t, "Panadería", updated.Category)
}

func TestUpdateArticleNotFound(t *testing.T) {
	f := newArticleFixture(t)

	_, err := f.service.UpdateArticle(context.Background(), uuid.NewString(), domain.UpdateArticleRequest{
		Name: "Pan",
	}, f.user.ID.String())
	require.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestArticleOwnershipEnforced(t *testing.T) {
	f := newArticleFixture(t)
	ctx := context.Background()

	created, err := f.service.AddArticle(ctx, domain.AddArticleRequest{Name: "Queso"}, f.user.ID.String())
	require.NoError(t, err)

	otherUser := uuid.NewString()

	_, err = f.service.GetArticleByID(ctx, created.ID, otherUser)
	require.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	_, err = f.service.UpdateArticle(ctx, created.ID, domain.UpdateArticleRequest{Name: "Robado"}, otherUser)
	require.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	err = f.service.DeleteArticle(ctx, created.ID, otherUser)
	require.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	// The rightful owner still sees the untouched article.
	got, err := f.service.GetArticleByID(ctx, created.ID, f.user.ID.String())
	require.NoError(t, err)
	require.Equal(t, "Queso", got.Name)
}

func TestDeleteArticle(t *testing.T) {
	f := newArticleFixture(t)
	ctx := context.Background()

	created, err := f.service.AddArticle(ctx, domain.AddArticleRequest{Name: "Yogurt"}, f.user.ID.String())
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteArticle(ctx, created.ID, f.user.ID.String()))

	_, err = f.service.GetArticleByID(ctx, created.ID, f.user.ID.String())
	require.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestGetArticlesCategoryFilter(t *testing.T) {
	f := newArticleFixture(t)
	ctx := context.Background()

	for _, a := range []domain.AddArticleRequest{
		{Name: "Leche", Category: "Lácteos"},
		{Name: "Queso", Category: "Lácteos"},
		{Name: "Pan", Category: "Panadería"},
	} {
		_, err := f.service.AddArticle(ctx, a, f.user.ID.String())
		require.NoError(t, err)
	}

	all, err := f.service.GetArticles(ctx, f.user.ID.String(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	dairy, err := f.service.GetArticles(ctx, f.user.ID.String(), "Lácteos")
	require.NoError(t, err)
	require.Len(t, dairy, 2)
	for _, item := range dairy {
		require.Equal(t, "Lácteos", item.Category)
	}
}

func TestGetCriticalArticlesDefaultThreshold(t *testing.T) {
	f := newArticleFixture(t)
	ctx := context.Background()

	add := func(name string, daysAhead int) {
		t.Helper()
		req := domain.AddArticleRequest{Name: name}
		if daysAhead != 0 {
			req.ExpiryDate = time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02")
		}
		_, err := f.service.AddArticle(ctx, req, f.user.ID.String())
		require.NoError(t, err)
	}

	add("Leche", 2)
	add("Pan", 3)
	add("Arroz", 20)
	add("Sal", 0) // no expiry date

	critical, err := f.service.GetCriticalArticles(ctx, f.user.ID.String(), 0)
	require.NoError(t, err)

	require.Len(t, critical, 2)
	require.Equal(t, "Leche", critical[0].Name) // soonest expiry first
	require.Equal(t, "Pan", critical[1].Name)
}
