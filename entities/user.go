package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url,omitempty"`

	IsFirstLogin        bool       `gorm:"default:true" json:"is_first_login"`
	OnboardingCompleted bool       `gorm:"default:false" json:"onboarding_completed"`
	FirstLogin          *time.Time `json:"first_login,omitempty"`
	LastLogin           *time.Time `json:"last_login,omitempty"`

	// Lifetime counters, incremented once per matching event.
	TotalProductsAdded    int `gorm:"default:0" json:"total_products_added"`
	TotalProductsConsumed int `gorm:"default:0" json:"total_products_consumed"`
	TotalProductsWasted   int `gorm:"default:0" json:"total_products_wasted"`

	Timestamp
}
