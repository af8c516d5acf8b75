package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Code    int
	Message string
	Fields  any // optional per-field validation details
}

// HandlerFunc is the signature every endpoint handler uses. Admin
// authentication is a group concern, applied by MountGroup.
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			body := gin.H{"error": apiErr.Message}
			if apiErr.Fields != nil {
				body["fields"] = apiErr.Fields
			}
			ctx.JSON(apiErr.Code, body)
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}
