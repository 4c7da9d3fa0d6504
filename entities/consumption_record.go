package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionConsumed = "consumed"
	ActionWasted   = "wasted"
)

// ConsumptionRecord is an append-only log entry. Rows are never updated or
// deleted once written.
type ConsumptionRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"index:idx_consumption_user_time" json:"user_id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Quantity    int       `gorm:"default:1" json:"quantity"`
	Calories    int       `gorm:"default:0" json:"calories"`
	Action      string    `json:"action"` // "consumed" or "wasted"
	ConsumedAt  time.Time `gorm:"type:timestamp;index:idx_consumption_user_time" json:"consumed_at"`

	User *User `gorm:"foreignKey:UserID"`
}
