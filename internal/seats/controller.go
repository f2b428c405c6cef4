package seats

import (
	"net/http"

	"ticketops/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateSeat(c *gin.Context)
	BulkCreateSeats(c *gin.Context)
	GetSeat(c *gin.Context)
	UpdateSeat(c *gin.Context)
	DeleteSeat(c *gin.Context)
	GetVenueSeating(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateSeat(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("venueId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	var req CreateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seat, err := ctrl.service.CreateSeat(c.Request.Context(), venueID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Seat created successfully", seat, nil)
}

func (ctrl *controller) BulkCreateSeats(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("venueId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	var req BulkCreateSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seats, err := ctrl.service.BulkCreateSeats(c.Request.Context(), venueID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Seats created successfully", seats, nil)
}

func (ctrl *controller) GetSeat(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid seat ID", nil, err.Error())
		return
	}

	seat, err := ctrl.service.GetSeatByID(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat retrieved successfully", seat, nil)
}

func (ctrl *controller) UpdateSeat(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid seat ID", nil, err.Error())
		return
	}

	var req UpdateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seat, err := ctrl.service.UpdateSeat(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat updated successfully", seat, nil)
}

func (ctrl *controller) DeleteSeat(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid seat ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteSeat(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat deleted successfully", nil, nil)
}

// GetVenueSeating serves the seating chart for a venue. An optional
// event_id query switches the map from topology-only to live statuses
// for that event.
func (ctrl *controller) GetVenueSeating(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("venueId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	var eventID *uuid.UUID
	if raw := c.Query("event_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
			return
		}
		eventID = &parsed
	}

	seatMap, err := ctrl.service.GetVenueSeatMap(c.Request.Context(), venueID, eventID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seating retrieved successfully", seatMap, nil)
}
