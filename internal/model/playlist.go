package model

import "time"

// Playlist soft-deletes through its status column: archiving sets
// status "archived", restoring always resets it to "hidden".
const (
	PlaylistStatusVisible    = "visible"
	PlaylistStatusHidden     = "hidden"
	PlaylistStatusInProgress = "in_progress"
	PlaylistStatusArchived   = "archived"
)

func ValidPlaylistStatus(s string) bool {
	switch s {
	case PlaylistStatusVisible, PlaylistStatusHidden, PlaylistStatusInProgress, PlaylistStatusArchived:
		return true
	}
	return false
}

type Playlist struct {
	ID          int       `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Status      string    `db:"status"      json:"status"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}

// PlaylistSong is a membership row linking a playlist to a song.
// Positions are 1-based and assigned append-only; removal leaves
// gaps until the next explicit reorder.
type PlaylistSong struct {
	ID         int       `db:"id"          json:"id"`
	PlaylistID int       `db:"playlist_id" json:"playlist_id"`
	SongID     int       `db:"song_id"     json:"song_id"`
	Position   int       `db:"position"    json:"position"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	Song       *Song     `db:"-"           json:"song,omitempty"`
}
