package domain

import (
	"time"
)

// CREATE TABLE public.movies (
//     id                BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     title             TEXT NOT NULL,
//     director          TEXT,
//     genres            JSONB NOT NULL,
//     runtime           NUMERIC,
//     original_language TEXT,
//     description       TEXT,
//     studios           JSONB,
//     average_rating    NUMERIC NOT NULL,
//     created_at        TIMESTAMPTZ DEFAULT NOW()
// );

type Movie struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string    `gorm:"column:title;type:text;not null" json:"title"`
	Director         string    `gorm:"column:director;type:text" json:"director,omitempty"`
	Genres           []string  `gorm:"column:genres;type:jsonb;serializer:json;not null" json:"genres"`
	Runtime          float64   `gorm:"column:runtime;type:numeric" json:"runtime,omitempty"`
	OriginalLanguage string    `gorm:"column:original_language;type:text" json:"original_language,omitempty"`
	Description      string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Studios          []string  `gorm:"column:studios;type:jsonb;serializer:json" json:"studios,omitempty"`
	AverageRating    float64   `gorm:"column:average_rating;type:numeric;not null" json:"average_rating"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Movie) TableName() string {
	return "movies"
}
