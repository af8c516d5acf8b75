package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/http/api"
	"github.com/chorale-cms/chorale/internal/http/api/admin/packets"
)

type SettingsController struct {
	store db.Store
}

func newSettingsController(store db.Store) *SettingsController {
	return &SettingsController{store: store}
}

// SettingsModule mounts the /settings endpoints for the singleton row.
func SettingsModule(store db.Store) api.Module {
	ctl := newSettingsController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings", ctl.getSettings)
		c.PUT("/settings", ctl.updateSettings)
	})
}

// GET /api/admin/settings
func (s *SettingsController) getSettings(ctx *gin.Context) (any, *api.APIError) {
	cs, err := s.store.GetSettings()
	if err != nil {
		return nil, storeError(err, "could not fetch settings")
	}
	return packets.MapSettings(cs), nil
}

// PUT /api/admin/settings updates only the supplied fields.
func (s *SettingsController) updateSettings(ctx *gin.Context) (any, *api.APIError) {
	var request packets.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	cs, err := s.store.UpdateSettings(db.UpdateSettingsParams{
		Tagline:      request.Tagline,
		AboutText:    request.AboutText,
		FacebookURL:  request.FacebookURL,
		InstagramURL: request.InstagramURL,
		YoutubeURL:   request.YoutubeURL,
		ContactEmail: request.ContactEmail,
	})
	if err != nil {
		return nil, storeError(err, "could not update settings")
	}

	invalidateSite()
	return packets.MapSettings(cs), nil
}
