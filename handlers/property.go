package handlers

import (
	"errors"
	"net/http"

	"homestay/models"
	"homestay/services/property"
	"homestay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyHandler exposes listing management over HTTP.
type PropertyHandler struct {
	PropertyService property.PropertyService
}

func NewPropertyHandler(svc property.PropertyService) *PropertyHandler {
	return &PropertyHandler{PropertyService: svc}
}

func (h *PropertyHandler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, property.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, property.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("property operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// CreatePropertyHandler handles POST /api/properties.
func (h *PropertyHandler) CreatePropertyHandler(c *gin.Context) {
	var input models.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	prop, err := h.PropertyService.CreateProperty(actorID(c), input)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prop)
}

// GetPropertyHandler handles GET /api/properties/:id.
func (h *PropertyHandler) GetPropertyHandler(c *gin.Context) {
	prop, err := h.PropertyService.GetProperty(c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prop)
}

// MyPropertiesHandler handles GET /api/properties/mine.
func (h *PropertyHandler) MyPropertiesHandler(c *gin.Context) {
	props, err := h.PropertyService.MyProperties(actorID(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, props)
}

// UpdatePropertyHandler handles PUT /api/properties/:id.
func (h *PropertyHandler) UpdatePropertyHandler(c *gin.Context) {
	var input models.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	prop, err := h.PropertyService.UpdateProperty(actorID(c), c.Param("id"), input)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prop)
}

// DeletePropertyHandler handles DELETE /api/properties/:id.
func (h *PropertyHandler) DeletePropertyHandler(c *gin.Context) {
	if err := h.PropertyService.DeleteProperty(actorID(c), c.Param("id")); err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}
