package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/chorale-cms/chorale/internal/choir"
	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/http/api"
	adminapi "github.com/chorale-cms/chorale/internal/http/api/admin/endpoints"
	siteapi "github.com/chorale-cms/chorale/internal/http/api/site/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, service *choir.Service) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: true,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		adminapi.AuthPublicModule(env.SecretKey, env.AdminPasswordHash),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		adminapi.AuthSessionModule(env.SecretKey, env.AdminPasswordHash),
		adminapi.SongModule(store, service),
		adminapi.PlaylistModule(store),
		adminapi.EventModule(store, service),
		adminapi.PhotoModule(store, service),
		adminapi.SettingsModule(store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/site",
	},
		siteapi.SiteModule(store, service),
	)

	// Static content
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
