package packets

// LoginRequest carries the shared admin password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Song fields are validated by internal/validate, not by binding tags,
// so bad input comes back as 422 with per-field messages.
type CreateSongRequest struct {
	Title          *string `json:"title"`
	Lyrics         *string `json:"lyrics"`
	ArtistComposer *string `json:"artist_composer"`
	Language       *string `json:"language"`
	Genre          *string `json:"genre"`
	Year           *int    `json:"year"`
	IsVisible      *bool   `json:"is_visible"`
}

type UpdateSongRequest struct {
	Title          *string `json:"title"`
	Lyrics         *string `json:"lyrics"`
	ArtistComposer *string `json:"artist_composer"`
	Language       *string `json:"language"`
	Genre          *string `json:"genre"`
	Year           *int    `json:"year"`
	IsVisible      *bool   `json:"is_visible"`
}

type BulkSongIDsRequest struct {
	IDs []int `json:"ids" binding:"required"`
}

type BulkSongVisibilityRequest struct {
	IDs       []int `json:"ids" binding:"required"`
	IsVisible *bool `json:"is_visible" binding:"required"`
}

type CreatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type AddSongToPlaylistRequest struct {
	SongID int `json:"song_id" binding:"required"`
}

type ReorderPlaylistSongsRequest struct {
	SongIDs []int `json:"song_ids" binding:"required"`
}

type CreateEventRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	EventDate         *string  `json:"event_date"`
	EventTime         *string  `json:"event_time"`
	Place             *string  `json:"place"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	IsVisible         *bool    `json:"is_visible"`
	IsCurrent         *bool    `json:"is_current"`
	AutoArchiveExempt *bool    `json:"auto_archive_exempt"`
}

type UpdateEventRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	EventDate         *string  `json:"event_date"`
	EventTime         *string  `json:"event_time"`
	Place             *string  `json:"place"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	IsVisible         *bool    `json:"is_visible"`
	IsCurrent         *bool    `json:"is_current"`
	AutoArchiveExempt *bool    `json:"auto_archive_exempt"`
}

type AddPlaylistToEventRequest struct {
	PlaylistID int `json:"playlist_id" binding:"required"`
}

type ReorderEventPlaylistsRequest struct {
	PlaylistIDs []int `json:"playlist_ids" binding:"required"`
}

type ReorderPhotosRequest struct {
	PhotoIDs []int `json:"photo_ids" binding:"required"`
}

type UpdateSettingsRequest struct {
	Tagline      *string `json:"tagline"`
	AboutText    *string `json:"about_text"`
	FacebookURL  *string `json:"facebook_url"`
	InstagramURL *string `json:"instagram_url"`
	YoutubeURL   *string `json:"youtube_url"`
	ContactEmail *string `json:"contact_email"`
}
