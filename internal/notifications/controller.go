package notifications

import (
	"net/http"

	"ticketops/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	GetNotifications(c *gin.Context)
	MarkRead(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func callerUUID(c *gin.Context) (uuid.UUID, bool) {
	rawID, exists := c.Get("user_id")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Not authenticated", nil, nil)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(rawID.(string))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Invalid user ID format", nil, nil)
		return uuid.Nil, false
	}
	return id, true
}

func (ctrl *controller) GetNotifications(c *gin.Context) {
	userID, ok := callerUUID(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "true"

	notifications, err := ctrl.service.ListForUser(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Notifications retrieved successfully", notifications, nil)
}

func (ctrl *controller) MarkRead(c *gin.Context) {
	userID, ok := callerUUID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid notification ID", nil, err.Error())
		return
	}

	notification, err := ctrl.service.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Notification marked read", notification, nil)
}
