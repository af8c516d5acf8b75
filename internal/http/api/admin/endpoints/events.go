package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/choir"
	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/http/api"
	"github.com/chorale-cms/chorale/internal/http/api/admin/packets"
	"github.com/chorale-cms/chorale/internal/validate"
)

type EventController struct {
	store   db.Store
	service *choir.Service
}

func newEventController(store db.Store, service *choir.Service) *EventController {
	return &EventController{store: store, service: service}
}

// EventModule mounts all authenticated /events endpoints.
func EventModule(store db.Store, service *choir.Service) api.Module {
	ctl := newEventController(store, service)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/events", ctl.listEvents)
		c.GET("/events/count", ctl.countEvents)
		c.GET("/events/current", ctl.currentEvent)
		c.POST("/events/sweep", ctl.sweepEvents)
		c.POST("/events", ctl.createEvent)
		c.GET("/events/:id", ctl.getEvent)
		c.PUT("/events/:id", ctl.updateEvent)
		c.DELETE("/events/:id", ctl.deleteEvent)

		c.POST("/events/:id/archive", ctl.archiveEvent)
		c.POST("/events/:id/restore", ctl.restoreEvent)
		c.POST("/events/:id/current", ctl.setCurrentEvent)

		c.GET("/events/:id/playlists", ctl.listPlaylists)
		c.POST("/events/:id/playlists", ctl.addPlaylist)
		c.PUT("/events/:id/playlists", ctl.reorderPlaylists)
		c.DELETE("/events/:id/playlists/:playlist_id", ctl.removePlaylist)
	})
}

func eventFilterFromQuery(ctx *gin.Context) db.EventFilter {
	return db.EventFilter{
		Search:   ctx.Query("search"),
		Visible:  queryBool(ctx, "visible"),
		Archived: queryBool(ctx, "archived"),
	}
}

// GET /api/admin/events also runs the stale-event sweep, so an admin
// opening the events page never sees events that should have aged out.
func (e *EventController) listEvents(ctx *gin.Context) (any, *api.APIError) {
	if _, err := e.service.SweepStaleEvents(); err != nil {
		log.Error().Err(err).Msg("[events] sweep on list failed")
	}

	events, err := e.store.ListEvents(eventFilterFromQuery(ctx))
	if err != nil {
		return nil, storeError(err, "could not list events")
	}
	return packets.MapEvents(events), nil
}

// GET /api/admin/events/count
func (e *EventController) countEvents(ctx *gin.Context) (any, *api.APIError) {
	n, err := e.store.CountEvents(eventFilterFromQuery(ctx))
	if err != nil {
		return nil, storeError(err, "could not count events")
	}
	return packets.CountResponse{Count: n}, nil
}

// GET /api/admin/events/current returns the flagged event or, absent one,
// the closest upcoming visible event. 404 when neither exists.
func (e *EventController) currentEvent(ctx *gin.Context) (any, *api.APIError) {
	ev, err := e.service.CurrentEvent()
	if err != nil {
		return nil, storeError(err, "could not resolve current event")
	}
	return packets.MapEvent(ev), nil
}

// POST /api/admin/events/sweep
func (e *EventController) sweepEvents(ctx *gin.Context) (any, *api.APIError) {
	res, err := e.service.SweepStaleEvents()
	if err != nil {
		return nil, storeError(err, "could not sweep events")
	}
	invalidateSite()
	return res, nil
}

func (e *EventController) validateEvent(request packets.CreateEventRequest, mode validate.Mode) validate.Errors {
	return validate.Event(validate.EventInput{
		Name:        request.Name,
		Description: request.Description,
		EventDate:   request.EventDate,
		EventTime:   request.EventTime,
		Place:       request.Place,
	}, mode)
}

// POST /api/admin/events
func (e *EventController) createEvent(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreateEventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if errs := e.validateEvent(request, validate.ForCreate); !errs.Valid() {
		return nil, validationError(errs)
	}

	ev, err := e.store.CreateEvent(db.CreateEventParams{
		Name:              *request.Name,
		Description:       request.Description,
		EventDate:         *request.EventDate,
		EventTime:         request.EventTime,
		Place:             request.Place,
		Latitude:          request.Latitude,
		Longitude:         request.Longitude,
		Visible:           request.IsVisible,
		Current:           request.IsCurrent,
		AutoArchiveExempt: request.AutoArchiveExempt,
	})
	if err != nil {
		log.Error().Err(err).Msg("[events] create failed")
		return nil, storeError(err, "could not create event")
	}

	invalidateSite()
	return packets.MapEvent(ev), nil
}

// GET /api/admin/events/:id returns the event with its ordered playlists.
func (e *EventController) getEvent(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	ev, err := e.store.GetEventByID(id)
	if err != nil {
		return nil, storeError(err, "could not fetch event")
	}
	items, err := e.store.ListEventPlaylists(id)
	if err != nil {
		return nil, storeError(err, "could not list event playlists")
	}

	out := packets.MapEvent(ev)
	out.Playlists = packets.MapEventPlaylists(items)
	return out, nil
}

// PUT /api/admin/events/:id
func (e *EventController) updateEvent(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if errs := e.validateEvent(packets.CreateEventRequest(request), validate.ForUpdate); !errs.Valid() {
		return nil, validationError(errs)
	}

	ev, err := e.store.UpdateEvent(id, db.UpdateEventParams{
		Name:              request.Name,
		Description:       request.Description,
		EventDate:         request.EventDate,
		EventTime:         request.EventTime,
		Place:             request.Place,
		Latitude:          request.Latitude,
		Longitude:         request.Longitude,
		Visible:           request.IsVisible,
		Current:           request.IsCurrent,
		AutoArchiveExempt: request.AutoArchiveExempt,
	})
	if err != nil {
		return nil, storeError(err, "could not update event")
	}

	invalidateSite()
	return packets.MapEvent(ev), nil
}

// DELETE /api/admin/events/:id
func (e *EventController) deleteEvent(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := e.store.DeleteEvent(id); err != nil {
		return nil, storeError(err, "could not delete event")
	}
	invalidateSite()
	return gin.H{"deleted": true}, nil
}

// POST /api/admin/events/:id/archive also clears the current flag.
func (e *EventController) archiveEvent(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := e.store.ArchiveEvent(id); err != nil {
		return nil, storeError(err, "could not archive event")
	}
	invalidateSite()
	return gin.H{"archived": true}, nil
}

// POST /api/admin/events/:id/restore
func (e *EventController) restoreEvent(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := e.store.RestoreEvent(id); err != nil {
		return nil, storeError(err, "could not restore event")
	}
	return gin.H{"restored": true}, nil
}

// POST /api/admin/events/:id/current makes this the only current event.
func (e *EventController) setCurrentEvent(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := e.service.SetCurrentEvent(id); err != nil {
		return nil, storeError(err, "could not set current event")
	}
	invalidateSite()
	return gin.H{"current": true}, nil
}

// GET /api/admin/events/:id/playlists
func (e *EventController) listPlaylists(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if _, err := e.store.GetEventByID(id); err != nil {
		return nil, storeError(err, "could not fetch event")
	}
	items, err := e.store.ListEventPlaylists(id)
	if err != nil {
		return nil, storeError(err, "could not list event playlists")
	}
	return packets.MapEventPlaylists(items), nil
}

// POST /api/admin/events/:id/playlists appends the playlist at the end.
func (e *EventController) addPlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.AddPlaylistToEventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	ep, err := e.store.AddPlaylistToEvent(id, request.PlaylistID)
	if err != nil {
		return nil, storeError(err, "could not add playlist to event")
	}

	invalidateSite()
	return packets.MapEventPlaylist(ep), nil
}

// PUT /api/admin/events/:id/playlists replaces the order atomically.
func (e *EventController) reorderPlaylists(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.ReorderEventPlaylistsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := e.store.GetEventByID(id); err != nil {
		return nil, storeError(err, "could not fetch event")
	}
	if err := e.store.ReorderEventPlaylists(id, request.PlaylistIDs); err != nil {
		return nil, storeError(err, "could not reorder event playlists")
	}

	invalidateSite()
	items, err := e.store.ListEventPlaylists(id)
	if err != nil {
		return nil, storeError(err, "could not list event playlists")
	}
	return packets.MapEventPlaylists(items), nil
}

// DELETE /api/admin/events/:id/playlists/:playlist_id
func (e *EventController) removePlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	playlistID, apiErr := pathID(ctx, "playlist_id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := e.store.RemoveEventPlaylist(id, playlistID); err != nil {
		return nil, storeError(err, "could not remove playlist from event")
	}
	invalidateSite()
	return gin.H{"removed": true}, nil
}
