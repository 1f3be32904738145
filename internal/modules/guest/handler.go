package guest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"morent/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public guest page. No auth: the slug is the
// credential.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/booking/:slug", h.GetPage)
}

func (h *Handler) GetPage(c *gin.Context) {
	page, err := h.service.PageBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": page})
}
