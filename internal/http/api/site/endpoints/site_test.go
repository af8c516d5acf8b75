package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorale-cms/chorale/internal/choir"
	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/http/api"
	"github.com/chorale-cms/chorale/internal/model"
)

func newSiteRouter(t *testing.T) (*gin.Engine, *db.MemStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := db.NewMemStore()
	service := choir.NewService(store, nil)

	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/site"},
		SiteModule(store, service),
	)
	return r, store
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func boolptr(b bool) *bool { return &b }

func upcoming(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestSiteSongsOnlyVisible(t *testing.T) {
	r, store := newSiteRouter(t)

	shown, err := store.CreateSong(db.CreateSongParams{Title: "Shown", Lyrics: "la"})
	require.NoError(t, err)
	hidden, err := store.CreateSong(db.CreateSongParams{Title: "Hidden", Lyrics: "lo", Visible: boolptr(false)})
	require.NoError(t, err)
	archived, err := store.CreateSong(db.CreateSongParams{Title: "Archived", Lyrics: "li"})
	require.NoError(t, err)
	require.NoError(t, store.ArchiveSong(archived.ID))

	w := get(t, r, "/api/site/songs")
	require.Equal(t, http.StatusOK, w.Code)

	var songs []struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	decode(t, w, &songs)
	require.Len(t, songs, 1)
	assert.Equal(t, shown.ID, songs[0].ID)

	// a hidden song is indistinguishable from a missing one
	w = get(t, r, fmt.Sprintf("/api/site/songs/%d", hidden.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(t, r, fmt.Sprintf("/api/site/songs/%d", shown.ID))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSitePlaylistShowsVisibleSongsInOrder(t *testing.T) {
	r, store := newSiteRouter(t)

	status := model.PlaylistStatusVisible
	pl, err := store.CreatePlaylist(db.CreatePlaylistParams{Name: "Program", Status: &status})
	require.NoError(t, err)

	first, err := store.CreateSong(db.CreateSongParams{Title: "First", Lyrics: "a"})
	require.NoError(t, err)
	hidden, err := store.CreateSong(db.CreateSongParams{Title: "Hidden", Lyrics: "b", Visible: boolptr(false)})
	require.NoError(t, err)
	second, err := store.CreateSong(db.CreateSongParams{Title: "Second", Lyrics: "c"})
	require.NoError(t, err)

	for _, id := range []int{first.ID, hidden.ID, second.ID} {
		_, err := store.AddSongToPlaylist(pl.ID, id)
		require.NoError(t, err)
	}

	w := get(t, r, fmt.Sprintf("/api/site/playlists/%d", pl.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Name  string `json:"name"`
		Songs []struct {
			ID int `json:"id"`
		} `json:"songs"`
	}
	decode(t, w, &got)
	require.Len(t, got.Songs, 2)
	assert.Equal(t, first.ID, got.Songs[0].ID)
	assert.Equal(t, second.ID, got.Songs[1].ID)
}

func TestSiteHiddenPlaylistNotListed(t *testing.T) {
	r, store := newSiteRouter(t)

	_, err := store.CreatePlaylist(db.CreatePlaylistParams{Name: "Draft set"})
	require.NoError(t, err)

	w := get(t, r, "/api/site/playlists")
	require.Equal(t, http.StatusOK, w.Code)

	var playlists []any
	decode(t, w, &playlists)
	assert.Empty(t, playlists)
}

func TestSiteEventsUpcomingOnly(t *testing.T) {
	r, store := newSiteRouter(t)

	soon, err := store.CreateEvent(db.CreateEventParams{
		Name: "Soon", EventDate: upcoming(2), Visible: boolptr(true),
	})
	require.NoError(t, err)
	later, err := store.CreateEvent(db.CreateEventParams{
		Name: "Later", EventDate: upcoming(30), Visible: boolptr(true),
	})
	require.NoError(t, err)
	_, err = store.CreateEvent(db.CreateEventParams{
		Name: "Hidden", EventDate: upcoming(5),
	})
	require.NoError(t, err)
	_, err = store.CreateEvent(db.CreateEventParams{
		Name: "Past", EventDate: upcoming(-5), Visible: boolptr(true), AutoArchiveExempt: boolptr(true),
	})
	require.NoError(t, err)

	w := get(t, r, "/api/site/events")
	require.Equal(t, http.StatusOK, w.Code)

	var events []struct {
		ID int `json:"id"`
	}
	decode(t, w, &events)
	require.Len(t, events, 2)
	assert.Equal(t, soon.ID, events[0].ID)
	assert.Equal(t, later.ID, events[1].ID)

	// no flagged event, so current falls back to the soonest upcoming
	w = get(t, r, "/api/site/events/current")
	require.Equal(t, http.StatusOK, w.Code)
	var current struct {
		ID int `json:"id"`
	}
	decode(t, w, &current)
	assert.Equal(t, soon.ID, current.ID)
}

func TestSiteEventDetailVisiblePlaylists(t *testing.T) {
	r, store := newSiteRouter(t)

	ev, err := store.CreateEvent(db.CreateEventParams{
		Name: "Gala", EventDate: upcoming(3), Visible: boolptr(true),
	})
	require.NoError(t, err)

	status := model.PlaylistStatusVisible
	shown, err := store.CreatePlaylist(db.CreatePlaylistParams{Name: "Main", Status: &status})
	require.NoError(t, err)
	draft, err := store.CreatePlaylist(db.CreatePlaylistParams{Name: "Backup"})
	require.NoError(t, err)

	_, err = store.AddPlaylistToEvent(ev.ID, shown.ID)
	require.NoError(t, err)
	_, err = store.AddPlaylistToEvent(ev.ID, draft.ID)
	require.NoError(t, err)

	song, err := store.CreateSong(db.CreateSongParams{Title: "Opener", Lyrics: "o"})
	require.NoError(t, err)
	_, err = store.AddSongToPlaylist(shown.ID, song.ID)
	require.NoError(t, err)

	w := get(t, r, fmt.Sprintf("/api/site/events/%d", ev.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Name      string `json:"name"`
		Playlists []struct {
			ID    int `json:"id"`
			Songs []struct {
				ID int `json:"id"`
			} `json:"songs"`
		} `json:"playlists"`
	}
	decode(t, w, &got)
	require.Len(t, got.Playlists, 1)
	assert.Equal(t, shown.ID, got.Playlists[0].ID)
	require.Len(t, got.Playlists[0].Songs, 1)
	assert.Equal(t, song.ID, got.Playlists[0].Songs[0].ID)
}

func TestSiteHomeAggregation(t *testing.T) {
	r, store := newSiteRouter(t)

	_, err := store.UpdateSettings(db.UpdateSettingsParams{Tagline: strPtr("We sing")})
	require.NoError(t, err)
	ev, err := store.CreateEvent(db.CreateEventParams{
		Name: "Gala", EventDate: upcoming(3), Visible: boolptr(true),
	})
	require.NoError(t, err)
	_, err = store.CreatePhoto("/uploads/a.jpg", nil)
	require.NoError(t, err)

	w := get(t, r, "/api/site/home")
	require.Equal(t, http.StatusOK, w.Code)

	var home struct {
		Settings struct {
			Tagline string `json:"tagline"`
		} `json:"settings"`
		CurrentEvent *struct {
			ID int `json:"id"`
		} `json:"current_event"`
		Events []any `json:"events"`
		Photos []any `json:"photos"`
	}
	decode(t, w, &home)
	assert.Equal(t, "We sing", home.Settings.Tagline)
	require.NotNil(t, home.CurrentEvent)
	assert.Equal(t, ev.ID, home.CurrentEvent.ID)
	assert.Len(t, home.Events, 1)
	assert.Len(t, home.Photos, 1)
}

func strPtr(s string) *string { return &s }
