package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kbchat/internal/domain/thread"
	"kbchat/internal/interfaces/httpserver/handlers"
	"kbchat/internal/interfaces/httpserver/middlewares"
	"kbchat/internal/interfaces/httpserver/responses"
	"kbchat/internal/utils/platformerrors"
)

// RegisterThreadRoutes registers the thread management endpoints.
func RegisterThreadRoutes(router gin.IRoutes, handler *handlers.ThreadHandler) {
	router.GET("/threads", listThreads(handler))
	router.GET("/threads/:id", getThread(handler))
	router.DELETE("/threads/:id", deleteThread(handler))
	router.GET("/threads/:id/citations", listCitations(handler))
}

func listThreads(handler *handlers.ThreadHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := thread.Page{
			After: c.Query("after"),
			Order: thread.OrderDesc,
		}

		if raw := c.Query("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 {
				responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "limit must be a positive integer")
				return
			}
			page.Limit = limit
		}

		switch c.Query("order") {
		case "", string(thread.OrderDesc):
		case string(thread.OrderAsc):
			page.Order = thread.OrderAsc
		default:
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "order must be asc or desc")
			return
		}

		result, err := handler.ListThreads(c.Request.Context(), middlewares.GetClientID(c), page)
		if err != nil {
			responses.HandleError(c, err, "failed to list threads")
			return
		}

		c.JSON(http.StatusOK, responses.NewThreadList(result))
	}
}

func getThread(handler *handlers.ThreadHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		th, err := handler.GetThread(c.Request.Context(), c.Param("id"), middlewares.GetClientID(c))
		if err != nil {
			responses.HandleError(c, err, "failed to get thread")
			return
		}

		c.JSON(http.StatusOK, th)
	}
}

func deleteThread(handler *handlers.ThreadHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := handler.DeleteThread(c.Request.Context(), id, middlewares.GetClientID(c)); err != nil {
			responses.HandleError(c, err, "failed to delete thread")
			return
		}

		c.JSON(http.StatusOK, responses.NewDeleted(id))
	}
}

func listCitations(handler *handlers.ThreadHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		citations, err := handler.ListCitations(c.Request.Context(), c.Param("id"), middlewares.GetClientID(c))
		if err != nil {
			responses.HandleError(c, err, "failed to list citations")
			return
		}

		c.JSON(http.StatusOK, responses.NewCitationList(citations))
	}
}
