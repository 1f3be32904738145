package reminder

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"morent/internal/pkg/response"
)

type Handler struct {
	engine *Engine
	store  *Store
}

func NewHandler(engine *Engine, store *Store) *Handler {
	return &Handler{engine: engine, store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reminders", h.List)
	rg.POST("/reminders", h.CreateCustom)
	rg.DELETE("/reminders/:id", h.Delete)
}

type createReminderRequest struct {
	BookingID   int64     `json:"booking_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Message     string    `json:"message" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.store.Load(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reminders")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reminders": list})
}

func (h *Handler) CreateCustom(c *gin.Context) {
	var req createReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.engine.AddCustom(c.Request.Context(), req.BookingID, req.Title, req.Message, req.ScheduledAt)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reminder")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reminder": r})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reminder ID")
		return
	}

	if err := h.store.Remove(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete reminder")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}
