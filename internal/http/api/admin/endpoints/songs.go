package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/choir"
	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/http/api"
	"github.com/chorale-cms/chorale/internal/http/api/admin/packets"
	"github.com/chorale-cms/chorale/internal/validate"
)

type SongController struct {
	store   db.Store
	service *choir.Service
}

func newSongController(store db.Store, service *choir.Service) *SongController {
	return &SongController{store: store, service: service}
}

// SongModule mounts all authenticated /songs endpoints.
func SongModule(store db.Store, service *choir.Service) api.Module {
	ctl := newSongController(store, service)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/songs", ctl.listSongs)
		c.GET("/songs/count", ctl.countSongs)
		c.GET("/songs/recent", ctl.recentSongs)
		c.POST("/songs", ctl.createSong)
		c.GET("/songs/:id", ctl.getSong)
		c.PUT("/songs/:id", ctl.updateSong)
		c.DELETE("/songs/:id", ctl.deleteSong)

		c.POST("/songs/:id/archive", ctl.archiveSong)
		c.POST("/songs/:id/restore", ctl.restoreSong)
		c.POST("/songs/:id/duplicate", ctl.duplicateSong)

		c.POST("/songs/bulk/archive", ctl.bulkArchive)
		c.POST("/songs/bulk/restore", ctl.bulkRestore)
		c.POST("/songs/bulk/duplicate", ctl.bulkDuplicate)
		c.POST("/songs/bulk/visibility", ctl.bulkVisibility)
	})
}

func songFilterFromQuery(ctx *gin.Context) db.SongFilter {
	return db.SongFilter{
		Search:   ctx.Query("search"),
		Visible:  queryBool(ctx, "visible"),
		Archived: queryBool(ctx, "archived"),
		Language: queryString(ctx, "language"),
		Genre:    queryString(ctx, "genre"),
	}
}

// GET /api/admin/songs
func (s *SongController) listSongs(ctx *gin.Context) (any, *api.APIError) {
	songs, err := s.store.ListSongs(songFilterFromQuery(ctx))
	if err != nil {
		return nil, storeError(err, "could not list songs")
	}
	return packets.MapSongs(songs), nil
}

// GET /api/admin/songs/count
func (s *SongController) countSongs(ctx *gin.Context) (any, *api.APIError) {
	n, err := s.store.CountSongs(songFilterFromQuery(ctx))
	if err != nil {
		return nil, storeError(err, "could not count songs")
	}
	return packets.CountResponse{Count: n}, nil
}

// GET /api/admin/songs/recent
func (s *SongController) recentSongs(ctx *gin.Context) (any, *api.APIError) {
	limit := 5
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid limit"}
		}
		limit = n
	}
	songs, err := s.store.ListRecentSongs(limit)
	if err != nil {
		return nil, storeError(err, "could not list recent songs")
	}
	return packets.MapSongs(songs), nil
}

// POST /api/admin/songs
func (s *SongController) createSong(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreateSongRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	errs := validate.Song(validate.SongInput{
		Title:  request.Title,
		Lyrics: request.Lyrics,
		Year:   request.Year,
	}, validate.ForCreate)
	if !errs.Valid() {
		return nil, validationError(errs)
	}

	song, err := s.store.CreateSong(db.CreateSongParams{
		Title:          *request.Title,
		Lyrics:         *request.Lyrics,
		ArtistComposer: request.ArtistComposer,
		Language:       request.Language,
		Genre:          request.Genre,
		Year:           request.Year,
		Visible:        request.IsVisible,
	})
	if err != nil {
		log.Error().Err(err).Msg("[songs] create failed")
		return nil, storeError(err, "could not create song")
	}

	invalidateSite()
	return packets.MapSong(song), nil
}

// GET /api/admin/songs/:id
func (s *SongController) getSong(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	song, err := s.store.GetSongByID(id)
	if err != nil {
		return nil, storeError(err, "could not fetch song")
	}
	return packets.MapSong(song), nil
}

// PUT /api/admin/songs/:id
func (s *SongController) updateSong(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateSongRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	errs := validate.Song(validate.SongInput{
		Title:  request.Title,
		Lyrics: request.Lyrics,
		Year:   request.Year,
	}, validate.ForUpdate)
	if !errs.Valid() {
		return nil, validationError(errs)
	}

	song, err := s.store.UpdateSong(id, db.UpdateSongParams{
		Title:          request.Title,
		Lyrics:         request.Lyrics,
		ArtistComposer: request.ArtistComposer,
		Language:       request.Language,
		Genre:          request.Genre,
		Year:           request.Year,
		Visible:        request.IsVisible,
	})
	if err != nil {
		return nil, storeError(err, "could not update song")
	}

	invalidateSite()
	return packets.MapSong(song), nil
}

// DELETE /api/admin/songs/:id
func (s *SongController) deleteSong(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := s.store.DeleteSong(id); err != nil {
		return nil, storeError(err, "could not delete song")
	}
	invalidateSite()
	return gin.H{"deleted": true}, nil
}

// POST /api/admin/songs/:id/archive
func (s *SongController) archiveSong(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := s.store.ArchiveSong(id); err != nil {
		return nil, storeError(err, "could not archive song")
	}
	invalidateSite()
	return gin.H{"archived": true}, nil
}

// POST /api/admin/songs/:id/restore
func (s *SongController) restoreSong(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := s.store.RestoreSong(id); err != nil {
		return nil, storeError(err, "could not restore song")
	}
	invalidateSite()
	return gin.H{"restored": true}, nil
}

// POST /api/admin/songs/:id/duplicate
func (s *SongController) duplicateSong(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	song, err := s.service.DuplicateSong(id)
	if err != nil {
		return nil, storeError(err, "could not duplicate song")
	}
	return packets.MapSong(song), nil
}

// POST /api/admin/songs/bulk/archive
func (s *SongController) bulkArchive(ctx *gin.Context) (any, *api.APIError) {
	var request packets.BulkSongIDsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	res := s.service.BulkArchiveSongs(request.IDs)
	invalidateSite()
	return res, nil
}

// POST /api/admin/songs/bulk/restore
func (s *SongController) bulkRestore(ctx *gin.Context) (any, *api.APIError) {
	var request packets.BulkSongIDsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	res := s.service.BulkRestoreSongs(request.IDs)
	invalidateSite()
	return res, nil
}

// POST /api/admin/songs/bulk/duplicate
func (s *SongController) bulkDuplicate(ctx *gin.Context) (any, *api.APIError) {
	var request packets.BulkSongIDsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	return s.service.BulkDuplicateSongs(request.IDs), nil
}

// POST /api/admin/songs/bulk/visibility
func (s *SongController) bulkVisibility(ctx *gin.Context) (any, *api.APIError) {
	var request packets.BulkSongVisibilityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	res := s.service.BulkSetSongVisibility(request.IDs, *request.IsVisible)
	invalidateSite()
	return res, nil
}
