package model

import "time"

type Song struct {
	ID             int       `db:"id"              json:"id"`
	Title          string    `db:"title"           json:"title"`
	Lyrics         string    `db:"lyrics"          json:"lyrics"`
	ArtistComposer *string   `db:"artist_composer" json:"artist_composer,omitempty"`
	Language       *string   `db:"language"        json:"language,omitempty"`
	Genre          *string   `db:"genre"           json:"genre,omitempty"`
	Year           *int      `db:"year"            json:"year,omitempty"`
	IsVisible      bool      `db:"is_visible"      json:"is_visible"`
	IsArchived     bool      `db:"is_archived"     json:"is_archived"`
	CreatedAt      time.Time `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"      json:"updated_at"`
}
