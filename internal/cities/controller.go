package cities

import (
	"net/http"

	"ticketops/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateCity(c *gin.Context)
	GetCity(c *gin.Context)
	GetActiveCities(c *gin.Context)
	GetAllCities(c *gin.Context)
	UpdateCity(c *gin.Context)
	DeleteCity(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateCity(c *gin.Context) {
	var req CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	city, err := ctrl.service.CreateCity(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "City created successfully", city, nil)
}

func (ctrl *controller) GetCity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid city ID", nil, err.Error())
		return
	}

	city, err := ctrl.service.GetCityByID(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "City retrieved successfully", city, nil)
}

func (ctrl *controller) GetActiveCities(c *gin.Context) {
	cities, err := ctrl.service.GetActiveCities(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cities retrieved successfully", cities, nil)
}

func (ctrl *controller) GetAllCities(c *gin.Context) {
	cities, err := ctrl.service.GetAllCities(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cities retrieved successfully", cities, nil)
}

func (ctrl *controller) UpdateCity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid city ID", nil, err.Error())
		return
	}

	var req UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	city, err := ctrl.service.UpdateCity(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "City updated successfully", city, nil)
}

func (ctrl *controller) DeleteCity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid city ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteCity(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "City deleted successfully", nil, nil)
}
