package packets

import (
	"time"

	"github.com/chorale-cms/chorale/internal/model"
)

// SongResponse mirrors model.Song but flattens times to RFC3339.
type SongResponse struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Lyrics         string  `json:"lyrics"`
	ArtistComposer *string `json:"artist_composer"`
	Language       *string `json:"language"`
	Genre          *string `json:"genre"`
	Year           *int    `json:"year"`
	IsVisible      bool    `json:"is_visible"`
	IsArchived     bool    `json:"is_archived"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func MapSong(s model.Song) SongResponse {
	return SongResponse{
		ID:             s.ID,
		Title:          s.Title,
		Lyrics:         s.Lyrics,
		ArtistComposer: s.ArtistComposer,
		Language:       s.Language,
		Genre:          s.Genre,
		Year:           s.Year,
		IsVisible:      s.IsVisible,
		IsArchived:     s.IsArchived,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}

func MapSongs(songs []model.Song) []SongResponse {
	out := make([]SongResponse, len(songs))
	for i, s := range songs {
		out[i] = MapSong(s)
	}
	return out
}

type PlaylistResponse struct {
	ID          int                    `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	Status      string                 `json:"status"`
	CreatedAt   string                 `json:"created_at"`
	UpdatedAt   string                 `json:"updated_at"`
	Songs       []PlaylistSongResponse `json:"songs,omitempty"`
}

type PlaylistSongResponse struct {
	ID       int           `json:"id"`
	SongID   int           `json:"song_id"`
	Position int           `json:"position"`
	Song     *SongResponse `json:"song,omitempty"`
}

func MapPlaylist(p model.Playlist) PlaylistResponse {
	return PlaylistResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

func MapPlaylistSong(ps model.PlaylistSong) PlaylistSongResponse {
	out := PlaylistSongResponse{
		ID:       ps.ID,
		SongID:   ps.SongID,
		Position: ps.Position,
	}
	if ps.Song != nil {
		song := MapSong(*ps.Song)
		out.Song = &song
	}
	return out
}

func MapPlaylistSongs(items []model.PlaylistSong) []PlaylistSongResponse {
	out := make([]PlaylistSongResponse, len(items))
	for i, it := range items {
		out[i] = MapPlaylistSong(it)
	}
	return out
}

type EventResponse struct {
	ID                int                     `json:"id"`
	Name              string                  `json:"name"`
	Description       *string                 `json:"description"`
	EventDate         string                  `json:"event_date"`
	EventTime         *string                 `json:"event_time"`
	Place             *string                 `json:"place"`
	Latitude          *float64                `json:"latitude"`
	Longitude         *float64                `json:"longitude"`
	IsVisible         bool                    `json:"is_visible"`
	IsCurrent         bool                    `json:"is_current"`
	IsArchived        bool                    `json:"is_archived"`
	AutoArchiveExempt bool                    `json:"auto_archive_exempt"`
	CreatedAt         string                  `json:"created_at"`
	UpdatedAt         string                  `json:"updated_at"`
	Playlists         []EventPlaylistResponse `json:"playlists,omitempty"`
}

type EventPlaylistResponse struct {
	ID         int               `json:"id"`
	PlaylistID int               `json:"playlist_id"`
	Position   int               `json:"position"`
	Playlist   *PlaylistResponse `json:"playlist,omitempty"`
}

func MapEvent(e model.Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		Name:              e.Name,
		Description:       e.Description,
		EventDate:         e.EventDate,
		EventTime:         e.EventTime,
		Place:             e.Place,
		Latitude:          e.Latitude,
		Longitude:         e.Longitude,
		IsVisible:         e.IsVisible,
		IsCurrent:         e.IsCurrent,
		IsArchived:        e.IsArchived,
		AutoArchiveExempt: e.AutoArchiveExempt,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         e.UpdatedAt.Format(time.RFC3339),
	}
}

func MapEvents(events []model.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = MapEvent(e)
	}
	return out
}

func MapEventPlaylist(ep model.EventPlaylist) EventPlaylistResponse {
	out := EventPlaylistResponse{
		ID:         ep.ID,
		PlaylistID: ep.PlaylistID,
		Position:   ep.Position,
	}
	if ep.Playlist != nil {
		pl := MapPlaylist(*ep.Playlist)
		out.Playlist = &pl
	}
	return out
}

func MapEventPlaylists(items []model.EventPlaylist) []EventPlaylistResponse {
	out := make([]EventPlaylistResponse, len(items))
	for i, it := range items {
		out[i] = MapEventPlaylist(it)
	}
	return out
}

type PhotoResponse struct {
	ID           int     `json:"id"`
	ImageURL     string  `json:"image_url"`
	Caption      *string `json:"caption"`
	DisplayOrder int     `json:"display_order"`
	CreatedAt    string  `json:"created_at"`
}

func MapPhoto(p model.Photo) PhotoResponse {
	return PhotoResponse{
		ID:           p.ID,
		ImageURL:     p.ImageURL,
		Caption:      p.Caption,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func MapPhotos(photos []model.Photo) []PhotoResponse {
	out := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		out[i] = MapPhoto(p)
	}
	return out
}

type SettingsResponse struct {
	Tagline      string `json:"tagline"`
	AboutText    string `json:"about_text"`
	FacebookURL  string `json:"facebook_url"`
	InstagramURL string `json:"instagram_url"`
	YoutubeURL   string `json:"youtube_url"`
	ContactEmail string `json:"contact_email"`
	UpdatedAt    string `json:"updated_at"`
}

func MapSettings(cs model.ChoirSettings) SettingsResponse {
	return SettingsResponse{
		Tagline:      cs.Tagline,
		AboutText:    cs.AboutText,
		FacebookURL:  cs.FacebookURL,
		InstagramURL: cs.InstagramURL,
		YoutubeURL:   cs.YoutubeURL,
		ContactEmail: cs.ContactEmail,
		UpdatedAt:    cs.UpdatedAt.Format(time.RFC3339),
	}
}

type CountResponse struct {
	Count int `json:"count"`
}
