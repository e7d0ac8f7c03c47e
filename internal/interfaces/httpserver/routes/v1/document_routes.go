package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kbchat/internal/interfaces/httpserver/handlers"
	"kbchat/internal/interfaces/httpserver/responses"
	"kbchat/internal/utils/platformerrors"
)

// RegisterDocumentRoutes registers the knowledge-base document endpoints.
func RegisterDocumentRoutes(router gin.IRoutes, handler *handlers.DocumentHandler) {
	router.GET("/documents", listDocuments(handler))
	router.GET("/documents/:id/file", getDocumentFile(handler))
}

func listDocuments(handler *handlers.DocumentHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, responses.NewDocumentList(handler.ListDocuments()))
	}
}

func getDocumentFile(handler *handlers.DocumentHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		doc, data, err := handler.FetchFile(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, handlers.ErrDocumentNotFound) {
				platformerrors.WriteNotFound(c, "document not found")
				return
			}
			responses.HandleNewError(c, platformerrors.ErrorTypeExternal, "failed to fetch document content")
			return
		}

		contentType := doc.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Disposition", `inline; filename="`+doc.Filename+`"`)
		c.Data(http.StatusOK, contentType, data)
	}
}
