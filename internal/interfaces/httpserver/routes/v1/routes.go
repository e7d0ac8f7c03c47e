// Package v1 registers the versioned chat protocol routes.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"kbchat/internal/interfaces/httpserver/handlers"
)

// Routes holds the v1 route registrations.
type Routes struct {
	handlers *handlers.Provider
	log      zerolog.Logger
}

// NewRoutes creates the v1 routes.
func NewRoutes(handlerProvider *handlers.Provider, log zerolog.Logger) *Routes {
	return &Routes{handlers: handlerProvider, log: log}
}

// Register registers all v1 routes under the /v1 prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/v1")

	RegisterChatRoutes(group, r.handlers.Chat, r.log)
	RegisterThreadRoutes(group, r.handlers.Thread)
	RegisterDocumentRoutes(group, r.handlers.Document)
}
