package entities

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID  `gorm:"index" json:"user_id"`
	Name       string     `json:"name"`
	Quantity   int        `gorm:"default:1" json:"quantity"`
	Category   string     `gorm:"default:General" json:"category"`
	ExpiryDate *time.Time `gorm:"type:date;index" json:"expiry_date,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
