package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.user_preferences (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     ratings     JSONB NOT NULL,
//     created_at  TIMESTAMPTZ DEFAULT NOW(),
//     updated_at  TIMESTAMPTZ DEFAULT NOW()
// );

// UserPreference holds one user's explicit movie ratings. The auto-assigned
// ID is the opaque user identifier handed back on create. Ratings is a
// movie-id (as string key) -> weight map; updates replace the whole map.
type UserPreference struct {
	ID        uint              `gorm:"primaryKey" json:"user_id"`
	Ratings   datatypes.JSONMap `gorm:"column:ratings;type:jsonb;not null" json:"ratings"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
