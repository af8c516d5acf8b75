// Package db exposes a Store interface backed by PostgreSQL, passed to API
// modules so handlers never touch SQL directly.
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/chorale-cms/chorale/internal/model"
)

type Store interface {
	// songs
	ListSongs(f SongFilter) ([]model.Song, error)
	CountSongs(f SongFilter) (int, error)
	ListRecentSongs(limit int) ([]model.Song, error)
	GetSongByID(id int) (model.Song, error)
	GetVisibleSongByID(id int) (model.Song, error)
	CreateSong(p CreateSongParams) (model.Song, error)
	UpdateSong(id int, p UpdateSongParams) (model.Song, error)
	ArchiveSong(id int) error
	RestoreSong(id int) error
	DeleteSong(id int) error

	// playlists
	ListPlaylists(f PlaylistFilter) ([]model.Playlist, error)
	CountPlaylists(f PlaylistFilter) (int, error)
	GetPlaylistByID(id int) (model.Playlist, error)
	GetVisiblePlaylistByID(id int) (model.Playlist, error)
	CreatePlaylist(p CreatePlaylistParams) (model.Playlist, error)
	UpdatePlaylist(id int, p UpdatePlaylistParams) (model.Playlist, error)
	ArchivePlaylist(id int) error
	RestorePlaylist(id int) error
	DeletePlaylist(id int) error

	// playlist membership (ordered)
	AddSongToPlaylist(playlistID, songID int) (model.PlaylistSong, error)
	RemovePlaylistSong(playlistID, songID int) error
	ReorderPlaylistSongs(playlistID int, songIDs []int) error
	ListPlaylistSongs(playlistID int) ([]model.PlaylistSong, error)
	ListVisiblePlaylistSongs(playlistID int) ([]model.PlaylistSong, error)

	// events
	ListEvents(f EventFilter) ([]model.Event, error)
	CountEvents(f EventFilter) (int, error)
	GetEventByID(id int) (model.Event, error)
	GetVisibleEventByID(id int) (model.Event, error)
	CreateEvent(p CreateEventParams) (model.Event, error)
	UpdateEvent(id int, p UpdateEventParams) (model.Event, error)
	ArchiveEvent(id int) error
	RestoreEvent(id int) error
	DeleteEvent(id int) error
	SetCurrentEvent(id int) error
	GetCurrentFlaggedEvent() (model.Event, error)
	GetClosestUpcomingEvent(today string) (model.Event, error)
	ListUpcomingVisibleEvents(today string) ([]model.Event, error)
	ListStaleEvents(today string) ([]model.Event, error)

	// event membership (ordered)
	AddPlaylistToEvent(eventID, playlistID int) (model.EventPlaylist, error)
	RemoveEventPlaylist(eventID, playlistID int) error
	ReorderEventPlaylists(eventID int, playlistIDs []int) error
	ListEventPlaylists(eventID int) ([]model.EventPlaylist, error)
	ListVisibleEventPlaylists(eventID int) ([]model.EventPlaylist, error)

	// photos
	ListPhotos() ([]model.Photo, error)
	GetPhotoByID(id int) (model.Photo, error)
	CreatePhoto(imageURL string, caption *string) (model.Photo, error)
	DeletePhoto(id int) error
	ReorderPhotos(photoIDs []int) error

	// settings singleton
	GetSettings() (model.ChoirSettings, error)
	UpdateSettings(p UpdateSettingsParams) (model.ChoirSettings, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	if conn == nil {
		conn = DB
	}
	return &pgStore{db: conn}
}
