package tickets

import (
	"net/http"

	"ticketops/internal/shared/utils/response"
	"ticketops/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CancelTicketRequest struct {
	Reason string `json:"reason"`
}

type Controller interface {
	GetTicketByQRCode(c *gin.Context)
	CancelTicket(c *gin.Context)
	SettleRefund(c *gin.Context)
	GetEventTickets(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// viewKindFor picks the detail shape from the caller's role. Console
// staff see holder identity and order linkage; everyone else gets the
// self-service shape.
func viewKindFor(c *gin.Context) ViewKind {
	rawRole, exists := c.Get("user_role")
	if !exists {
		return KindUser
	}
	role, ok := rawRole.(string)
	if !ok {
		return KindUser
	}
	switch users.Role(role) {
	case users.RoleAdmin, users.RoleOrganizer, users.RoleStaff:
		return KindAdmin
	default:
		return KindUser
	}
}

func (ctrl *controller) GetTicketByQRCode(c *gin.Context) {
	code := c.Param("code")

	ticket, err := ctrl.service.GetByQRCode(c.Request.Context(), code, viewKindFor(c))
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket retrieved successfully", ticket, nil)
}

func (ctrl *controller) CancelTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return
	}

	var req CancelTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, result.Message, result, nil)
}

func (ctrl *controller) SettleRefund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return
	}

	ticket, err := ctrl.service.SettleRefund(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Refund settled successfully", ticket, nil)
}

func (ctrl *controller) GetEventTickets(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	var query TicketListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	tickets, err := ctrl.service.ListByEvent(c.Request.Context(), eventID, query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Tickets retrieved successfully", tickets, nil)
}
