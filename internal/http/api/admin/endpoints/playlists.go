package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/http/api"
	"github.com/chorale-cms/chorale/internal/http/api/admin/packets"
	"github.com/chorale-cms/chorale/internal/validate"
)

type PlaylistController struct {
	store db.Store
}

func newPlaylistController(store db.Store) *PlaylistController {
	return &PlaylistController{store: store}
}

// PlaylistModule mounts all authenticated /playlists endpoints.
func PlaylistModule(store db.Store) api.Module {
	ctl := newPlaylistController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/playlists", ctl.listPlaylists)
		c.GET("/playlists/count", ctl.countPlaylists)
		c.POST("/playlists", ctl.createPlaylist)
		c.GET("/playlists/:id", ctl.getPlaylist)
		c.PUT("/playlists/:id", ctl.updatePlaylist)
		c.DELETE("/playlists/:id", ctl.deletePlaylist)

		c.POST("/playlists/:id/archive", ctl.archivePlaylist)
		c.POST("/playlists/:id/restore", ctl.restorePlaylist)

		c.GET("/playlists/:id/songs", ctl.listSongs)
		c.POST("/playlists/:id/songs", ctl.addSong)
		c.PUT("/playlists/:id/songs", ctl.reorderSongs)
		c.DELETE("/playlists/:id/songs/:song_id", ctl.removeSong)
	})
}

func playlistFilterFromQuery(ctx *gin.Context) db.PlaylistFilter {
	return db.PlaylistFilter{
		Search:   ctx.Query("search"),
		Status:   queryString(ctx, "status"),
		Archived: queryBool(ctx, "archived"),
	}
}

// GET /api/admin/playlists
func (p *PlaylistController) listPlaylists(ctx *gin.Context) (any, *api.APIError) {
	all, err := p.store.ListPlaylists(playlistFilterFromQuery(ctx))
	if err != nil {
		return nil, storeError(err, "could not list playlists")
	}
	out := make([]packets.PlaylistResponse, len(all))
	for i, pl := range all {
		out[i] = packets.MapPlaylist(pl)
	}
	return out, nil
}

// GET /api/admin/playlists/count
func (p *PlaylistController) countPlaylists(ctx *gin.Context) (any, *api.APIError) {
	n, err := p.store.CountPlaylists(playlistFilterFromQuery(ctx))
	if err != nil {
		return nil, storeError(err, "could not count playlists")
	}
	return packets.CountResponse{Count: n}, nil
}

// POST /api/admin/playlists
func (p *PlaylistController) createPlaylist(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreatePlaylistRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	errs := validate.Playlist(validate.PlaylistInput{
		Name:        request.Name,
		Description: request.Description,
		Status:      request.Status,
	}, validate.ForCreate)
	if !errs.Valid() {
		return nil, validationError(errs)
	}

	pl, err := p.store.CreatePlaylist(db.CreatePlaylistParams{
		Name:        *request.Name,
		Description: request.Description,
		Status:      request.Status,
	})
	if err != nil {
		log.Error().Err(err).Msg("[playlists] create failed")
		return nil, storeError(err, "could not create playlist")
	}

	invalidateSite()
	return packets.MapPlaylist(pl), nil
}

// GET /api/admin/playlists/:id returns the playlist with its ordered songs.
func (p *PlaylistController) getPlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	pl, err := p.store.GetPlaylistByID(id)
	if err != nil {
		return nil, storeError(err, "could not fetch playlist")
	}
	items, err := p.store.ListPlaylistSongs(id)
	if err != nil {
		return nil, storeError(err, "could not list playlist songs")
	}

	out := packets.MapPlaylist(pl)
	out.Songs = packets.MapPlaylistSongs(items)
	return out, nil
}

// PUT /api/admin/playlists/:id
func (p *PlaylistController) updatePlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdatePlaylistRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	errs := validate.Playlist(validate.PlaylistInput{
		Name:        request.Name,
		Description: request.Description,
		Status:      request.Status,
	}, validate.ForUpdate)
	if !errs.Valid() {
		return nil, validationError(errs)
	}

	pl, err := p.store.UpdatePlaylist(id, db.UpdatePlaylistParams{
		Name:        request.Name,
		Description: request.Description,
		Status:      request.Status,
	})
	if err != nil {
		return nil, storeError(err, "could not update playlist")
	}

	invalidateSite()
	return packets.MapPlaylist(pl), nil
}

// DELETE /api/admin/playlists/:id
func (p *PlaylistController) deletePlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := p.store.DeletePlaylist(id); err != nil {
		return nil, storeError(err, "could not delete playlist")
	}
	invalidateSite()
	return gin.H{"deleted": true}, nil
}

// POST /api/admin/playlists/:id/archive
func (p *PlaylistController) archivePlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := p.store.ArchivePlaylist(id); err != nil {
		return nil, storeError(err, "could not archive playlist")
	}
	invalidateSite()
	return gin.H{"archived": true}, nil
}

// POST /api/admin/playlists/:id/restore restores to "hidden", never to the
// status the playlist had when it was archived.
func (p *PlaylistController) restorePlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := p.store.RestorePlaylist(id); err != nil {
		return nil, storeError(err, "could not restore playlist")
	}
	return gin.H{"restored": true}, nil
}

// GET /api/admin/playlists/:id/songs
func (p *PlaylistController) listSongs(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if _, err := p.store.GetPlaylistByID(id); err != nil {
		return nil, storeError(err, "could not fetch playlist")
	}
	items, err := p.store.ListPlaylistSongs(id)
	if err != nil {
		return nil, storeError(err, "could not list playlist songs")
	}
	return packets.MapPlaylistSongs(items), nil
}

// POST /api/admin/playlists/:id/songs appends the song at the end.
func (p *PlaylistController) addSong(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.AddSongToPlaylistRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	ps, err := p.store.AddSongToPlaylist(id, request.SongID)
	if err != nil {
		return nil, storeError(err, "could not add song to playlist")
	}

	invalidateSite()
	return packets.MapPlaylistSong(ps), nil
}

// PUT /api/admin/playlists/:id/songs replaces the order atomically; the ids
// must be exactly the current membership.
func (p *PlaylistController) reorderSongs(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.ReorderPlaylistSongsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := p.store.GetPlaylistByID(id); err != nil {
		return nil, storeError(err, "could not fetch playlist")
	}
	if err := p.store.ReorderPlaylistSongs(id, request.SongIDs); err != nil {
		return nil, storeError(err, "could not reorder playlist songs")
	}

	invalidateSite()
	items, err := p.store.ListPlaylistSongs(id)
	if err != nil {
		return nil, storeError(err, "could not list playlist songs")
	}
	return packets.MapPlaylistSongs(items), nil
}

// DELETE /api/admin/playlists/:id/songs/:song_id leaves the remaining
// positions untouched.
func (p *PlaylistController) removeSong(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	songID, apiErr := pathID(ctx, "song_id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := p.store.RemovePlaylistSong(id, songID); err != nil {
		return nil, storeError(err, "could not remove song from playlist")
	}
	invalidateSite()
	return gin.H{"removed": true}, nil
}
