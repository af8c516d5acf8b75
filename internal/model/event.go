package model

import "time"

type Event struct {
	ID                int       `db:"id"                  json:"id"`
	Name              string    `db:"name"                json:"name"`
	Description       *string   `db:"description"         json:"description,omitempty"`
	EventDate         string    `db:"event_date"          json:"event_date"`
	EventTime         *string   `db:"event_time"          json:"event_time,omitempty"`
	Place             *string   `db:"place"               json:"place,omitempty"`
	Latitude          *float64  `db:"latitude"            json:"latitude,omitempty"`
	Longitude         *float64  `db:"longitude"           json:"longitude,omitempty"`
	IsVisible         bool      `db:"is_visible"          json:"is_visible"`
	IsCurrent         bool      `db:"is_current"          json:"is_current"`
	IsArchived        bool      `db:"is_archived"         json:"is_archived"`
	AutoArchiveExempt bool      `db:"auto_archive_exempt" json:"auto_archive_exempt"`
	CreatedAt         time.Time `db:"created_at"          json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"          json:"updated_at"`
}

// EventPlaylist mirrors PlaylistSong: 1-based append-only positions.
type EventPlaylist struct {
	ID         int       `db:"id"          json:"id"`
	EventID    int       `db:"event_id"    json:"event_id"`
	PlaylistID int       `db:"playlist_id" json:"playlist_id"`
	Position   int       `db:"position"    json:"position"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	Playlist   *Playlist `db:"-"           json:"playlist,omitempty"`
}
