package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogGroupHandler manages the categories and locations products are filed under.
type catalogGroupHandler struct {
	categories portssvc.CategorySvc
	locations  portssvc.LocationSvc
}

func registerCatalogGroupRoutes(rg *gin.RouterGroup, categories portssvc.CategorySvc, locations portssvc.LocationSvc) {
	h := &catalogGroupHandler{categories: categories, locations: locations}

	cat := rg.Group("/categories")
	{
		cat.GET("", h.listCategories)
		cat.POST("", h.createCategory)
		cat.PUT("/:categoryID", h.updateCategory)
		cat.PATCH("/:categoryID/active", h.setCategoryActive)
		cat.DELETE("/:categoryID", h.deleteCategory)
	}

	loc := rg.Group("/locations")
	{
		loc.GET("", h.listLocations)
		loc.POST("", h.createLocation)
		loc.PUT("/:locationID", h.updateLocation)
		loc.PATCH("/:locationID/active", h.setLocationActive)
		loc.DELETE("/:locationID", h.deleteLocation)
	}
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param active query bool false "Only active categories"
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *catalogGroupHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListGroupsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}
	categories, err := h.categories.ListCategories(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: categories})
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CategoryRequest true "Category"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already used"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *catalogGroupHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	category, err := h.categories.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// updateCategory godoc
// @Summary Rename a category
// @Description Products filed under the old name move to the new one.
// @Tags categories
// @Accept json
// @Produce json
// @Param categoryID path string true "Category ID"
// @Param category body dto.CategoryRequest true "Category"
// @Success 200 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already used"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{categoryID} [put]
func (h *catalogGroupHandler) updateCategory(c *gin.Context) {
	categoryID := c.Param("categoryID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("category_id", categoryID))
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	category, err := h.categories.UpdateCategory(c.Request.Context(), categoryID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// setCategoryActive godoc
// @Summary Activate or deactivate a category
// @Tags categories
// @Accept json
// @Produce json
// @Param categoryID path string true "Category ID"
// @Param state body dto.SetActiveRequest true "Active state"
// @Success 200 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{categoryID}/active [patch]
func (h *catalogGroupHandler) setCategoryActive(c *gin.Context) {
	categoryID := c.Param("categoryID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("category_id", categoryID))
	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	category, err := h.categories.SetCategoryActive(c.Request.Context(), categoryID, *req.IsActive, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Products in the category are left uncategorised.
// @Tags categories
// @Param categoryID path string true "Category ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{categoryID} [delete]
func (h *catalogGroupHandler) deleteCategory(c *gin.Context) {
	categoryID := c.Param("categoryID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("category_id", categoryID))
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.categories.DeleteCategory(c.Request.Context(), categoryID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}

// listLocations godoc
// @Summary List stock locations
// @Tags locations
// @Produce json
// @Param active query bool false "Only active locations"
// @Success 200 {object} dto.ListLocationsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [get]
func (h *catalogGroupHandler) listLocations(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListGroupsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}
	locations, err := h.locations.ListLocations(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list locations")
		return
	}
	c.JSON(http.StatusOK, dto.ListLocationsResponse{Locations: locations})
}

// createLocation godoc
// @Summary Create a stock location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body dto.LocationRequest true "Location"
// @Success 201 {object} domain.Location
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already used"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [post]
func (h *catalogGroupHandler) createLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	location, err := h.locations.CreateLocation(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create location")
		return
	}
	c.JSON(http.StatusCreated, location)
}

// updateLocation godoc
// @Summary Edit a stock location
// @Description Products stored under the old name move to the new one.
// @Tags locations
// @Accept json
// @Produce json
// @Param locationID path string true "Location ID"
// @Param location body dto.LocationRequest true "Location"
// @Success 200 {object} domain.Location
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already used"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{locationID} [put]
func (h *catalogGroupHandler) updateLocation(c *gin.Context) {
	locationID := c.Param("locationID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("location_id", locationID))
	var req dto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	location, err := h.locations.UpdateLocation(c.Request.Context(), locationID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update location")
		return
	}
	c.JSON(http.StatusOK, location)
}

// setLocationActive godoc
// @Summary Activate or deactivate a stock location
// @Tags locations
// @Accept json
// @Produce json
// @Param locationID path string true "Location ID"
// @Param state body dto.SetActiveRequest true "Active state"
// @Success 200 {object} domain.Location
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{locationID}/active [patch]
func (h *catalogGroupHandler) setLocationActive(c *gin.Context) {
	locationID := c.Param("locationID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("location_id", locationID))
	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	location, err := h.locations.SetLocationActive(c.Request.Context(), locationID, *req.IsActive, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update location")
		return
	}
	c.JSON(http.StatusOK, location)
}

// deleteLocation godoc
// @Summary Delete a stock location
// @Tags locations
// @Param locationID path string true "Location ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{locationID} [delete]
func (h *catalogGroupHandler) deleteLocation(c *gin.Context) {
	locationID := c.Param("locationID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("location_id", locationID))
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.locations.DeleteLocation(c.Request.Context(), locationID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete location")
		return
	}
	c.Status(http.StatusNoContent)
}
