package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplanner/internal/config"
	"mealplanner/internal/models/request_models"
	resp "mealplanner/internal/models/response_models"
	"mealplanner/internal/services"
	"mealplanner/pkg/utils"
)

type DishController struct {
	dishService services.DishServiceInterface
	cfg         *config.Config
}

func NewDishController(dishService services.DishServiceInterface, cfg *config.Config) *DishController {
	return &DishController{
		dishService: dishService,
		cfg:         cfg,
	}
}

// ListDishes godoc
// @Summary List dishes with their ingredients
// @Tags Dishes
// @Produce json
// @Param cursor query int false "Return dishes with id greater than this"
// @Param limit query int false "Page size"
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {object} utils.APIResponse
// @Router /dishes [get]
func (dc *DishController) ListDishes(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cursor, limit, err := parsePage(c, dc.cfg)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	dishes, err := dc.dishService.ListDishes(c.Request.Context(), userID, cursor, limit, c.Query("search"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dishes, "Fetched dishes successfully")
}

// GetDish godoc
// @Summary Get a dish with its ingredients
// @Tags Dishes
// @Produce json
// @Param id path int true "Dish ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /dishes/{id} [get]
func (dc *DishController) GetDish(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid dish id")
		return
	}

	dish, err := dc.dishService.GetDish(c.Request.Context(), id, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dish, "Fetched dish successfully")
}

// CreateDish godoc
// @Summary Create a dish
// @Tags Dishes
// @Accept json
// @Produce json
// @Param request body request_models.CreateDishRequest true "Dish payload"
// @Success 201 {object} utils.APIResponse
// @Router /dishes [post]
func (dc *DishController) CreateDish(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req request_models.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := dc.dishService.CreateDish(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp.CreatedResponse{ID: id}, "Dish created successfully")
}

// UpdateDish godoc
// @Summary Replace a dish
// @Tags Dishes
// @Accept json
// @Param id path int true "Dish ID"
// @Param request body request_models.CreateDishRequest true "Dish payload"
// @Success 200 {object} utils.APIResponse
// @Router /dishes/{id} [put]
func (dc *DishController) UpdateDish(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid dish id")
		return
	}
	var req request_models.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := dc.dishService.UpdateDish(c.Request.Context(), id, userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Dish updated successfully")
}

// PatchDish godoc
// @Summary Update some fields of a dish
// @Tags Dishes
// @Accept json
// @Param id path int true "Dish ID"
// @Param request body request_models.PatchDishRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Router /dishes/{id} [patch]
func (dc *DishController) PatchDish(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid dish id")
		return
	}
	var req request_models.PatchDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := dc.dishService.PatchDish(c.Request.Context(), id, userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Dish updated successfully")
}

// DeleteDish godoc
// @Summary Delete a dish, its ingredients and its meal links
// @Tags Dishes
// @Param id path int true "Dish ID"
// @Success 200 {object} utils.APIResponse
// @Router /dishes/{id} [delete]
func (dc *DishController) DeleteDish(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid dish id")
		return
	}

	deleted, err := dc.dishService.DeleteDish(c.Request.Context(), id, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp.DeletedResponse{Deleted: deleted}, "Dish deleted")
}
