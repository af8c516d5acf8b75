package model

import "time"

// ChoirSettings is a singleton row (id = 1), pre-seeded by migrations.
type ChoirSettings struct {
	ID           int       `db:"id"            json:"id"`
	Tagline      string    `db:"tagline"       json:"tagline"`
	AboutText    string    `db:"about_text"    json:"about_text"`
	FacebookURL  string    `db:"facebook_url"  json:"facebook_url"`
	InstagramURL string    `db:"instagram_url" json:"instagram_url"`
	YoutubeURL   string    `db:"youtube_url"   json:"youtube_url"`
	ContactEmail string    `db:"contact_email" json:"contact_email"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updated_at"`
}
