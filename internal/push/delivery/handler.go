package delivery

import (
	"log"
	"net/http"

	"howler-relay/internal/push/usecase"

	"github.com/gin-gonic/gin"
)

type PushHandler struct {
	pushService *usecase.Service
}

func NewPushHandler(pushService *usecase.Service) *PushHandler {
	return &PushHandler{pushService: pushService}
}

// Chat persists a chat message and fans it out to the event's participants.
// Callers only ever see "ok" or a generic 400; detail goes to the logs.
func (h *PushHandler) Chat(c *gin.Context) {
	var req struct {
		EventID int64  `json:"eventId" binding:"required"`
		UserID  int64  `json:"userId" binding:"required"`
		Text    string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.pushService.NotifyChatMessage(c.Request.Context(), req.EventID, req.UserID, req.Text); err != nil {
		log.Printf("[PUSH] chat pass failed (event=%d): %v", req.EventID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	c.String(http.StatusOK, "ok")
}

// NotifyEventCreated fans a "new event" notification out to the followers
// of the event's creator.
func (h *PushHandler) NotifyEventCreated(c *gin.Context) {
	var req struct {
		EventID int64 `json:"eventId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.pushService.NotifyEventCreated(c.Request.Context(), req.EventID); err != nil {
		log.Printf("[PUSH] event-created pass failed (event=%d): %v", req.EventID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	c.String(http.StatusOK, "ok")
}
