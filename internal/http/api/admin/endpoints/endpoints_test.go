package endpoints

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorale-cms/chorale/internal/choir"
	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/http/api"
	"github.com/chorale-cms/chorale/internal/http/middleware"
	"github.com/chorale-cms/chorale/internal/storage"
)

const (
	testSecret   = "test-secret"
	testPassword = "correct horse battery staple"
)

type nullStorage struct{}

func (nullStorage) SaveFile(fileHeader *multipart.FileHeader, filename string) (string, error) {
	return "/uploads/" + filename, nil
}

func (nullStorage) DeleteFile(fileURL string) error { return nil }

var _ storage.Storage = nullStorage{}

func newTestRouter(t *testing.T) (*gin.Engine, *db.MemStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := db.NewMemStore()
	service := choir.NewService(store, nullStorage{})

	passwordHash, err := middleware.HashPassword(testPassword)
	require.NoError(t, err)

	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		AuthPublicModule(testSecret, passwordHash),
	)
	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: testSecret,
	},
		AuthSessionModule(testSecret, passwordHash),
		SongModule(store, service),
		PlaylistModule(store),
		EventModule(store, service),
		PhotoModule(store, service),
		SettingsModule(store),
	)
	return r, store
}

func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := middleware.GenerateSessionToken(testSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestAdminRequiresSession(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/songs", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/songs", nil,
		&http.Cookie{Name: middleware.SessionCookie, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginIssuesCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/auth/login",
		gin.H{"password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/auth/login",
		gin.H{"password": testPassword}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.True(t, cookie.HttpOnly)

	w = doJSON(t, r, http.MethodGet, "/api/admin/auth/session", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateSongValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	cookie := sessionCookie(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/songs",
		gin.H{"title": "  ", "lyrics": "la"}, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	decode(t, w, &body)
	require.NotEmpty(t, body.Fields)
	assert.Equal(t, "title", body.Fields[0].Field)
	assert.Equal(t, body.Fields[0].Message, body.Error)
}

func TestSongLifecycle(t *testing.T) {
	r, store := newTestRouter(t)
	cookie := sessionCookie(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/songs",
		gin.H{"title": "Ave Verum", "lyrics": "Ave verum corpus", "year": 1791}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		ID        int    `json:"id"`
		Title     string `json:"title"`
		IsVisible bool   `json:"is_visible"`
	}
	decode(t, w, &created)
	assert.Equal(t, "Ave Verum", created.Title)
	assert.True(t, created.IsVisible)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/songs/%d", created.ID),
		gin.H{"genre": "Motet"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/songs/424242", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/admin/songs/%d/archive", created.ID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	song, err := store.GetSongByID(created.ID)
	require.NoError(t, err)
	assert.True(t, song.IsArchived)
}

func TestPlaylistMembershipOverHTTP(t *testing.T) {
	r, store := newTestRouter(t)
	cookie := sessionCookie(t)

	pl, err := store.CreatePlaylist(db.CreatePlaylistParams{Name: "Concert set"})
	require.NoError(t, err)
	a, err := store.CreateSong(db.CreateSongParams{Title: "A", Lyrics: "a"})
	require.NoError(t, err)
	b, err := store.CreateSong(db.CreateSongParams{Title: "B", Lyrics: "b"})
	require.NoError(t, err)

	path := fmt.Sprintf("/api/admin/playlists/%d/songs", pl.ID)

	w := doJSON(t, r, http.MethodPost, path, gin.H{"song_id": a.ID}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, path, gin.H{"song_id": b.ID}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	// duplicate membership is a conflict
	w = doJSON(t, r, http.MethodPost, path, gin.H{"song_id": a.ID}, cookie)
	require.Equal(t, http.StatusConflict, w.Code)
	var conflict struct {
		Error string `json:"error"`
	}
	decode(t, w, &conflict)
	assert.Equal(t, "song is already in this playlist", conflict.Error)

	// swap the order
	w = doJSON(t, r, http.MethodPut, path, gin.H{"song_ids": []int{b.ID, a.ID}}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var items []struct {
		SongID   int `json:"song_id"`
		Position int `json:"position"`
	}
	decode(t, w, &items)
	require.Len(t, items, 2)
	assert.Equal(t, b.ID, items[0].SongID)
	assert.Equal(t, 1, items[0].Position)
	assert.Equal(t, a.ID, items[1].SongID)
	assert.Equal(t, 2, items[1].Position)

	// an incomplete id list is rejected as validation
	w = doJSON(t, r, http.MethodPut, path, gin.H{"song_ids": []int{a.ID}}, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBulkArchiveAggregatesFailures(t *testing.T) {
	r, store := newTestRouter(t)
	cookie := sessionCookie(t)

	a, err := store.CreateSong(db.CreateSongParams{Title: "A", Lyrics: "a"})
	require.NoError(t, err)
	b, err := store.CreateSong(db.CreateSongParams{Title: "B", Lyrics: "b"})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/admin/songs/bulk/archive",
		gin.H{"ids": []int{a.ID, 9999, b.ID}}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
		Errors    []struct {
			ID int `json:"id"`
		} `json:"errors"`
	}
	decode(t, w, &res)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 9999, res.Errors[0].ID)
}

func TestCurrentEventOverHTTP(t *testing.T) {
	r, store := newTestRouter(t)
	cookie := sessionCookie(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/events/current", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	ev, err := store.CreateEvent(db.CreateEventParams{Name: "Gala", EventDate: "2999-06-01"})
	require.NoError(t, err)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/admin/events/%d/current", ev.ID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/events/current", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		ID        int  `json:"id"`
		IsCurrent bool `json:"is_current"`
	}
	decode(t, w, &got)
	assert.Equal(t, ev.ID, got.ID)
	assert.True(t, got.IsCurrent)
}

func TestEventValidationDates(t *testing.T) {
	r, _ := newTestRouter(t)
	cookie := sessionCookie(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/events",
		gin.H{"name": "Gala", "event_date": "2024-02-30"}, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/events",
		gin.H{"name": "Gala", "event_date": "2999-06-01", "event_time": "19:30"}, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPhotoUploadOverHTTP(t *testing.T) {
	r, store := newTestRouter(t)
	cookie := sessionCookie(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="image"; filename="choir.png"`},
		"Content-Type":        {"image/png"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("caption", "Summer concert"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/photos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var photo struct {
		ID           int    `json:"id"`
		ImageURL     string `json:"image_url"`
		Caption      string `json:"caption"`
		DisplayOrder int    `json:"display_order"`
	}
	decode(t, w, &photo)
	assert.Equal(t, "Summer concert", photo.Caption)
	assert.Equal(t, 1, photo.DisplayOrder)
	assert.NotEmpty(t, photo.ImageURL)

	photos, err := store.ListPhotos()
	require.NoError(t, err)
	assert.Len(t, photos, 1)
}

func TestSettingsUpdatePartial(t *testing.T) {
	r, _ := newTestRouter(t)
	cookie := sessionCookie(t)

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings",
		gin.H{"tagline": "Singing together since 1987"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/settings", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var settings struct {
		Tagline string `json:"tagline"`
	}
	decode(t, w, &settings)
	assert.Equal(t, "Singing together since 1987", settings.Tagline)
}
