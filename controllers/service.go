// controllers/service.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/FullStack-Digital-CA/medicare/models"
	"github.com/FullStack-Digital-CA/medicare/repositories"
	"github.com/FullStack-Digital-CA/medicare/utils"
	"github.com/gin-gonic/gin"
)

// ServiceInput defines the expected JSON structure for creating or updating
// a service. categoryId is not checked against the category table; the live
// system accepts dangling references and the nightly audit reports them.
type ServiceInput struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Duration    *int     `json:"duration" binding:"required,gte=1"`
	CategoryID  *uint    `json:"categoryId" binding:"required,gte=1"`
	IsActive    *bool    `json:"isActive" binding:"required"`
}

type ServiceController struct {
	services   repositories.ServiceRepositoryImpl
	categories repositories.CategoryRepositoryImpl
}

func NewServiceController(services repositories.ServiceRepositoryImpl, categories repositories.CategoryRepositoryImpl) *ServiceController {
	return &ServiceController{services: services, categories: categories}
}

// PublicCatalog returns categories with their services nested, for the
// marketing website. No authentication required.
func (ctl *ServiceController) PublicCatalog(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := ctl.categories.GetAll(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	services, err := ctl.services.GetAllPublic(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	c.JSON(http.StatusOK, models.BuildPublicCatalog(categories, services))
}

// AdminList returns the flat dashboard listing with category titles joined in.
func (ctl *ServiceController) AdminList(c *gin.Context) {
	rows, err := ctl.services.GetAllAdmin(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Create inserts a new service; the slug is derived from the name.
func (ctl *ServiceController) Create(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid data provided")
		return
	}

	service := models.Service{
		Name:       input.Name,
		Slug:       utils.GenerateSlug(input.Name),
		Price:      *input.Price,
		Duration:   *input.Duration,
		CategoryID: *input.CategoryID,
		IsActive:   *input.IsActive,
	}
	if input.Description != nil {
		service.Description = *input.Description
	}

	if err := ctl.services.Create(c.Request.Context(), &service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// Update replaces the editable fields of a service. The slug keeps its
// creation-time value.
func (ctl *ServiceController) Update(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid data provided")
		return
	}

	service, err := ctl.services.GetByID(c.Request.Context(), uint(serviceID))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}
	if service == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	service.Name = input.Name
	service.Price = *input.Price
	service.Duration = *input.Duration
	service.CategoryID = *input.CategoryID
	service.IsActive = *input.IsActive
	service.Description = ""
	if input.Description != nil {
		service.Description = *input.Description
	}

	if err := ctl.services.Update(c.Request.Context(), service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// Delete removes a service unconditionally.
func (ctl *ServiceController) Delete(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	deleted, err := ctl.services.Delete(c.Request.Context(), uint(serviceID))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
