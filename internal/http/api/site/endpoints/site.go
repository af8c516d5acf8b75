// Package endpoints implements the unauthenticated /api/site surface. Every
// handler filters to visible, non-archived content; the store never hands
// hidden rows to this package.
package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/choir"
	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/http/api"
	"github.com/chorale-cms/chorale/internal/http/api/site/packets"
	"github.com/chorale-cms/chorale/internal/model"
	"github.com/chorale-cms/chorale/internal/redis"
)

// homeCacheTTL bounds how stale the cached landing page can get; admin
// mutations invalidate it eagerly anyway.
const homeCacheTTL = 60 * time.Second

type SiteController struct {
	store   db.Store
	service *choir.Service
}

func newSiteController(store db.Store, service *choir.Service) *SiteController {
	return &SiteController{store: store, service: service}
}

// SiteModule mounts the whole public surface.
func SiteModule(store db.Store, service *choir.Service) api.Module {
	ctl := newSiteController(store, service)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/home", ctl.getHome)

		c.GET("/songs", ctl.listSongs)
		c.GET("/songs/:id", ctl.getSong)

		c.GET("/playlists", ctl.listPlaylists)
		c.GET("/playlists/:id", ctl.getPlaylist)

		c.GET("/events", ctl.listEvents)
		c.GET("/events/current", ctl.currentEvent)
		c.GET("/events/:id", ctl.getEvent)

		c.GET("/photos", ctl.listPhotos)
		c.GET("/settings", ctl.getSettings)
	})
}

// GET /api/site/home aggregates the landing page in one call, cached in
// redis when available.
func (s *SiteController) getHome(ctx *gin.Context) (any, *api.APIError) {
	if cached, ok := redis.GetSitePage(ctx.Request.Context(), "home"); ok {
		return json.RawMessage(cached), nil
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load site"}
	}

	home := packets.HomeResponse{
		Settings: packets.MapSettings(settings),
		Events:   []packets.EventResponse{},
		Photos:   []packets.PhotoResponse{},
	}

	if current, err := s.service.CurrentEvent(); err == nil {
		ev := packets.MapEvent(current)
		home.CurrentEvent = &ev
	}
	if events, err := s.service.UpcomingEvents(); err == nil {
		home.Events = packets.MapEvents(events)
	}
	if photos, err := s.store.ListPhotos(); err == nil {
		home.Photos = packets.MapPhotos(photos)
	}

	if payload, err := json.Marshal(home); err == nil {
		redis.CacheSitePage(ctx.Request.Context(), "home", payload, homeCacheTTL)
	} else {
		log.Warn().Err(err).Msg("[site] could not marshal home payload for cache")
	}
	return home, nil
}

// GET /api/site/songs
func (s *SiteController) listSongs(ctx *gin.Context) (any, *api.APIError) {
	visible := true
	filter := db.SongFilter{
		Search:  ctx.Query("search"),
		Visible: &visible,
	}
	if language := ctx.Query("language"); language != "" {
		filter.Language = &language
	}
	if genre := ctx.Query("genre"); genre != "" {
		filter.Genre = &genre
	}

	songs, err := s.store.ListSongs(filter)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list songs"}
	}
	return packets.MapSongs(songs), nil
}

// GET /api/site/songs/:id
func (s *SiteController) getSong(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := sitePathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	song, err := s.store.GetVisibleSongByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return packets.MapSong(song), nil
}

// GET /api/site/playlists lists visible playlists without their songs.
func (s *SiteController) listPlaylists(ctx *gin.Context) (any, *api.APIError) {
	status := model.PlaylistStatusVisible
	playlists, err := s.store.ListPlaylists(db.PlaylistFilter{Status: &status})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list playlists"}
	}
	out := make([]packets.PlaylistResponse, len(playlists))
	for i, pl := range playlists {
		out[i] = packets.MapPlaylist(pl)
	}
	return out, nil
}

// GET /api/site/playlists/:id returns a visible playlist with its visible
// songs in playlist order.
func (s *SiteController) getPlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := sitePathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	pl, err := s.store.GetVisiblePlaylistByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	items, err := s.store.ListVisiblePlaylistSongs(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list playlist songs"}
	}

	out := packets.MapPlaylist(pl)
	out.Songs = packets.MapPlaylistSongs(items)
	return out, nil
}

// GET /api/site/events lists upcoming visible events, soonest first.
func (s *SiteController) listEvents(ctx *gin.Context) (any, *api.APIError) {
	events, err := s.service.UpcomingEvents()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list events"}
	}
	return packets.MapEvents(events), nil
}

// GET /api/site/events/current resolves the flagged event or the closest
// upcoming one; 404 when the calendar is empty.
func (s *SiteController) currentEvent(ctx *gin.Context) (any, *api.APIError) {
	ev, err := s.service.CurrentEvent()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no current event"}
	}
	return packets.MapEvent(ev), nil
}

// GET /api/site/events/:id returns a visible event with its visible
// playlists in program order.
func (s *SiteController) getEvent(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := sitePathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	ev, err := s.store.GetVisibleEventByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	items, err := s.store.ListVisibleEventPlaylists(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list event playlists"}
	}

	out := packets.MapEvent(ev)
	for _, it := range items {
		if it.Playlist == nil {
			continue
		}
		pl := packets.MapPlaylist(*it.Playlist)
		songs, err := s.store.ListVisiblePlaylistSongs(it.PlaylistID)
		if err == nil {
			pl.Songs = packets.MapPlaylistSongs(songs)
		}
		out.Playlists = append(out.Playlists, pl)
	}
	return out, nil
}

// GET /api/site/photos
func (s *SiteController) listPhotos(ctx *gin.Context) (any, *api.APIError) {
	photos, err := s.store.ListPhotos()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list photos"}
	}
	return packets.MapPhotos(photos), nil
}

// GET /api/site/settings
func (s *SiteController) getSettings(ctx *gin.Context) (any, *api.APIError) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	return packets.MapSettings(settings), nil
}

func sitePathID(ctx *gin.Context) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	return id, nil
}
