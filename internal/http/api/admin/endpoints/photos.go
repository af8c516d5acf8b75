package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/choir"
	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/http/api"
	"github.com/chorale-cms/chorale/internal/http/api/admin/packets"
)

type PhotoController struct {
	store   db.Store
	service *choir.Service
}

func newPhotoController(store db.Store, service *choir.Service) *PhotoController {
	return &PhotoController{store: store, service: service}
}

// PhotoModule mounts all authenticated /photos endpoints.
func PhotoModule(store db.Store, service *choir.Service) api.Module {
	ctl := newPhotoController(store, service)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/photos", ctl.listPhotos)
		c.POST("/photos", ctl.uploadPhoto)
		c.DELETE("/photos/:id", ctl.deletePhoto)
		c.PUT("/photos/order", ctl.reorderPhotos)
	})
}

// GET /api/admin/photos
func (p *PhotoController) listPhotos(ctx *gin.Context) (any, *api.APIError) {
	photos, err := p.store.ListPhotos()
	if err != nil {
		return nil, storeError(err, "could not list photos")
	}
	return packets.MapPhotos(photos), nil
}

// POST /api/admin/photos takes a multipart form with an "image" file and an
// optional "caption" field. Size and type are rejected before any upload.
func (p *PhotoController) uploadPhoto(ctx *gin.Context) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "image file is required"}
	}

	var caption *string
	if c := ctx.PostForm("caption"); c != "" {
		caption = &c
	}

	photo, err := p.service.UploadPhoto(fileHeader, caption)
	if err != nil {
		if errors.Is(err, choir.ErrPhotoTooLarge) || errors.Is(err, choir.ErrPhotoType) {
			return nil, &api.APIError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
		}
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("[photos] upload failed")
		return nil, storeError(err, "could not upload photo")
	}

	invalidateSite()
	return packets.MapPhoto(photo), nil
}

// DELETE /api/admin/photos/:id
func (p *PhotoController) deletePhoto(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := p.service.DeletePhoto(id); err != nil {
		return nil, storeError(err, "could not delete photo")
	}
	invalidateSite()
	return gin.H{"deleted": true}, nil
}

// PUT /api/admin/photos/order replaces the gallery order atomically.
func (p *PhotoController) reorderPhotos(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ReorderPhotosRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := p.service.ReorderPhotos(request.PhotoIDs); err != nil {
		return nil, storeError(err, "could not reorder photos")
	}

	invalidateSite()
	photos, err := p.store.ListPhotos()
	if err != nil {
		return nil, storeError(err, "could not list photos")
	}
	return packets.MapPhotos(photos), nil
}
