// controllers/category.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/FullStack-Digital-CA/medicare/models"
	"github.com/FullStack-Digital-CA/medicare/repositories"
	"github.com/FullStack-Digital-CA/medicare/utils"
	"github.com/gin-gonic/gin"
)

// CategoryInput defines the expected JSON structure for creating or updating
// a service category
type CategoryInput struct {
	Title        string  `json:"title" binding:"required,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	Icon         *string `json:"icon" binding:"omitempty,max=50"`
	IsActive     *bool   `json:"isActive" binding:"required"`
	DisplayOrder *int    `json:"displayOrder" binding:"required,gte=0"`
}

type CategoryController struct {
	categories repositories.CategoryRepositoryImpl
}

func NewCategoryController(categories repositories.CategoryRepositoryImpl) *CategoryController {
	return &CategoryController{categories: categories}
}

// List returns every category in display order. Public endpoint - no
// authentication required, the marketing website reads it directly.
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.categories.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// Create inserts a new category; the slug is derived from the title.
func (ctl *CategoryController) Create(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input data")
		return
	}

	category := models.ServiceCategory{
		Title:        input.Title,
		Slug:         utils.GenerateSlug(input.Title),
		IsActive:     *input.IsActive,
		DisplayOrder: *input.DisplayOrder,
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.Icon != nil && *input.Icon != "" {
		category.Icon = input.Icon
	}

	if err := ctl.categories.Create(c.Request.Context(), &category); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// Update replaces the editable fields of a category; the slug is re-derived
// from the new title.
func (ctl *CategoryController) Update(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input data")
		return
	}

	category, err := ctl.categories.GetByID(c.Request.Context(), uint(categoryID))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}
	if category == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		return
	}

	category.Title = input.Title
	category.Slug = utils.GenerateSlug(input.Title)
	category.IsActive = *input.IsActive
	category.DisplayOrder = *input.DisplayOrder
	category.Description = ""
	if input.Description != nil {
		category.Description = *input.Description
	}
	category.Icon = nil
	if input.Icon != nil && *input.Icon != "" {
		category.Icon = input.Icon
	}

	if err := ctl.categories.Update(c.Request.Context(), category); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete removes a category unless services still reference it. The count
// check gives the caller a message before the destructive statement runs; the
// statement itself re-checks, so a service created in between still blocks.
func (ctl *CategoryController) Delete(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	ctx := c.Request.Context()

	count, err := ctl.categories.CountServices(ctx, uint(categoryID))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if count > 0 {
		utils.RespondWithError(c, http.StatusBadRequest,
			"Cannot delete category with existing services. Please reassign or delete the services first.")
		return
	}

	deleted, err := ctl.categories.Delete(ctx, uint(categoryID))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if !deleted {
		// Either the category never existed or a service landed in it
		// between the check and the delete.
		count, err = ctl.categories.CountServices(ctx, uint(categoryID))
		if err == nil && count > 0 {
			utils.RespondWithError(c, http.StatusBadRequest,
				"Cannot delete category with existing services. Please reassign or delete the services first.")
			return
		}
		utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
