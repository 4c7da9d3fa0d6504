package user

import (
	"context"

	"snackstock-api/entities"

	"gorm.io/gorm"
)

// Counter column names for the lifetime stats counters on the users table.
const (
	CounterProductsAdded    = "total_products_added"
	CounterProductsConsumed = "total_products_consumed"
	CounterProductsWasted   = "total_products_wasted"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		// IncrementCounter atomically adds one to a stats counter; the
		// storage layer owns consistency under concurrent calls.
		IncrementCounter(ctx context.Context, userID string, counter string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	// Counters are owned by IncrementCounter; a full-row save must not
	// clobber an increment that landed after this row was loaded.
	return r.db.WithContext(ctx).
		Omit(CounterProductsAdded, CounterProductsConsumed, CounterProductsWasted).
		Save(user).Error
}

func (r *userRepository) IncrementCounter(ctx context.Context, userID string, counter string) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", userID).
		UpdateColumn(counter, gorm.Expr(counter+" + 1")).Error
}
