package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/http/api"
	"github.com/chorale-cms/chorale/internal/http/api/admin/packets"
	"github.com/chorale-cms/chorale/internal/http/middleware"
)

// AuthPublicModule mounts the login endpoint; it is the only admin route
// reachable without a session.
func AuthPublicModule(secretKey, passwordHash string) api.Module {
	ctl := newAuthController(secretKey, passwordHash)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/auth/login", ctl.login)
	})
}

// AuthSessionModule mounts session endpoints that require auth.
func AuthSessionModule(secretKey, passwordHash string) api.Module {
	ctl := newAuthController(secretKey, passwordHash)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/session", ctl.session)
		c.POST("/auth/logout", ctl.logout)
	})
}

type AuthController struct {
	secretKey    string
	passwordHash string
}

func newAuthController(secretKey, passwordHash string) *AuthController {
	return &AuthController{secretKey: secretKey, passwordHash: passwordHash}
}

// POST /api/admin/auth/login
func (a *AuthController) login(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !middleware.CheckPassword(a.passwordHash, request.Password) {
		log.Warn().Str("ip", ctx.ClientIP()).Msg("[auth] failed admin login attempt")
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "invalid password"}
	}

	token, err := middleware.GenerateSessionToken(a.secretKey)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create session"}
	}

	ctx.SetCookie(middleware.SessionCookie, token,
		int(middleware.SessionTTL.Seconds()), "/", "", false, true)
	return gin.H{"authenticated": true}, nil
}

// GET /api/admin/auth/session
func (a *AuthController) session(ctx *gin.Context) (any, *api.APIError) {
	// the session middleware already verified the cookie
	return gin.H{"authenticated": true}, nil
}

// POST /api/admin/auth/logout
func (a *AuthController) logout(ctx *gin.Context) (any, *api.APIError) {
	ctx.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	return gin.H{"authenticated": false}, nil
}
