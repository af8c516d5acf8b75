// Package packets holds the public site response shapes. They carry only
// what visitors should see: no archive flags, no admin bookkeeping.
package packets

import (
	"github.com/chorale-cms/chorale/internal/model"
)

type SongResponse struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Lyrics         string  `json:"lyrics"`
	ArtistComposer *string `json:"artist_composer"`
	Language       *string `json:"language"`
	Genre          *string `json:"genre"`
	Year           *int    `json:"year"`
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
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Songs       []SongResponse `json:"songs,omitempty"`
}

func MapPlaylist(p model.Playlist) PlaylistResponse {
	return PlaylistResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
}

// MapPlaylistSongs flattens membership rows into songs in playlist order.
func MapPlaylistSongs(items []model.PlaylistSong) []SongResponse {
	var out []SongResponse
	for _, it := range items {
		if it.Song != nil {
			out = append(out, MapSong(*it.Song))
		}
	}
	return out
}

type EventResponse struct {
	ID          int                `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description"`
	EventDate   string             `json:"event_date"`
	EventTime   *string            `json:"event_time"`
	Place       *string            `json:"place"`
	Latitude    *float64           `json:"latitude"`
	Longitude   *float64           `json:"longitude"`
	Playlists   []PlaylistResponse `json:"playlists,omitempty"`
}

func MapEvent(e model.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		EventDate:   e.EventDate,
		EventTime:   e.EventTime,
		Place:       e.Place,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
	}
}

func MapEvents(events []model.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = MapEvent(e)
	}
	return out
}

type PhotoResponse struct {
	ID           int     `json:"id"`
	ImageURL     string  `json:"image_url"`
	Caption      *string `json:"caption"`
	DisplayOrder int     `json:"display_order"`
}

func MapPhotos(photos []model.Photo) []PhotoResponse {
	out := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		out[i] = PhotoResponse{
			ID:           p.ID,
			ImageURL:     p.ImageURL,
			Caption:      p.Caption,
			DisplayOrder: p.DisplayOrder,
		}
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
}

func MapSettings(cs model.ChoirSettings) SettingsResponse {
	return SettingsResponse{
		Tagline:      cs.Tagline,
		AboutText:    cs.AboutText,
		FacebookURL:  cs.FacebookURL,
		InstagramURL: cs.InstagramURL,
		YoutubeURL:   cs.YoutubeURL,
		ContactEmail: cs.ContactEmail,
	}
}

// HomeResponse aggregates everything the landing page needs in one call.
type HomeResponse struct {
	Settings     SettingsResponse `json:"settings"`
	CurrentEvent *EventResponse   `json:"current_event"`
	Events       []EventResponse  `json:"events"`
	Photos       []PhotoResponse  `json:"photos"`
}
