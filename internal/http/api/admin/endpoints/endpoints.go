// Package endpoints implements the authenticated /api/admin surface.
package endpoints

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/http/api"
	"github.com/chorale-cms/chorale/internal/redis"
	"github.com/chorale-cms/chorale/internal/validate"
)

// pathID parses the :id (or other named) path parameter.
func pathID(ctx *gin.Context, name string) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid " + name}
	}
	return id, nil
}

// storeError translates store sentinels into HTTP responses; anything
// unrecognized is a dependency failure reported as fallback.
func storeError(err error, fallback string) *api.APIError {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	case errors.Is(err, db.ErrSongInPlaylist), errors.Is(err, db.ErrPlaylistInEvent):
		return &api.APIError{Code: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, db.ErrReorderMismatch):
		return &api.APIError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	default:
		return &api.APIError{Code: http.StatusInternalServerError, Message: fallback}
	}
}

// validationError renders 422 with per-field messages.
func validationError(errs validate.Errors) *api.APIError {
	return &api.APIError{
		Code:    http.StatusUnprocessableEntity,
		Message: errs.First(),
		Fields:  errs,
	}
}

// invalidateSite drops cached public pages after a content mutation.
func invalidateSite() {
	redis.InvalidateSitePages(context.Background())
}

func queryBool(ctx *gin.Context, name string) *bool {
	raw, ok := ctx.GetQuery(name)
	if !ok {
		return nil
	}
	v := raw == "true" || raw == "1"
	return &v
}

func queryString(ctx *gin.Context, name string) *string {
	raw, ok := ctx.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}
	return &raw
}
