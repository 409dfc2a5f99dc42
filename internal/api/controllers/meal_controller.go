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

type MealController struct {
	mealService services.MealServiceInterface
	cfg         *config.Config
}

func NewMealController(mealService services.MealServiceInterface, cfg *config.Config) *MealController {
	return &MealController{
		mealService: mealService,
		cfg:         cfg,
	}
}

// ListMeals godoc
// @Summary List meals with their dishes
// @Description startDate and endDate accept epoch milliseconds or a date string.
// @Description A meal is returned when its range overlaps the requested one.
// @Tags Meals
// @Produce json
// @Param cursor query int false "Return meals with id greater than this"
// @Param limit query int false "Page size"
// @Param startDate query string false "Lower bound"
// @Param endDate query string false "Upper bound"
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {object} utils.APIResponse
// @Router /meals [get]
func (mc *MealController) ListMeals(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cursor, limit, err := parsePage(c, mc.cfg)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	meals, err := mc.mealService.ListMeals(c.Request.Context(), userID, cursor, limit, services.MealFilter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Search:    c.Query("search"),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, meals, "Fetched meals successfully")
}

// GetMeal godoc
// @Summary Get a meal with its dishes
// @Tags Meals
// @Param id path int true "Meal ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /meals/{id} [get]
func (mc *MealController) GetMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid meal id")
		return
	}

	meal, err := mc.mealService.GetMeal(c.Request.Context(), id, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, meal, "Fetched meal successfully")
}

// CreateMeal godoc
// @Summary Schedule a meal
// @Tags Meals
// @Accept json
// @Param request body request_models.CreateMealRequest true "Meal payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /meals [post]
func (mc *MealController) CreateMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req request_models.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := mc.mealService.CreateMeal(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp.CreatedResponse{ID: id}, "Meal created successfully")
}

// UpdateMeal godoc
// @Summary Replace a meal
// @Description Omitting dishIds keeps the linked dishes. Sending [] removes them all.
// @Tags Meals
// @Accept json
// @Param id path int true "Meal ID"
// @Param request body request_models.UpdateMealRequest true "Meal payload"
// @Success 200 {object} utils.APIResponse
// @Router /meals/{id} [put]
func (mc *MealController) UpdateMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid meal id")
		return
	}
	var req request_models.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := mc.mealService.UpdateMeal(c.Request.Context(), id, userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Meal updated successfully")
}

// PatchMeal godoc
// @Summary Update some fields of a meal
// @Tags Meals
// @Accept json
// @Param id path int true "Meal ID"
// @Param request body request_models.PatchMealRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Router /meals/{id} [patch]
func (mc *MealController) PatchMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid meal id")
		return
	}
	var req request_models.PatchMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := mc.mealService.PatchMeal(c.Request.Context(), id, userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Meal updated successfully")
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Tags Meals
// @Param id path int true "Meal ID"
// @Success 200 {object} utils.APIResponse
// @Router /meals/{id} [delete]
func (mc *MealController) DeleteMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid meal id")
		return
	}

	deleted, err := mc.mealService.DeleteMeal(c.Request.Context(), id, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp.DeletedResponse{Deleted: deleted}, "Meal deleted")
}

// ShoppingList godoc
// @Summary Aggregate ingredients over meals
// @Description Sums ingredient quantities per product across every dish of the given meals.
// @Tags Meals
// @Accept json
// @Produce json
// @Param request body request_models.ShoppingListRequest true "Meal ids"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /meals/shopping-list [post]
func (mc *MealController) ShoppingList(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req request_models.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	lines, err := mc.mealService.ShoppingList(c.Request.Context(), userID, req.MealIDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lines, "Built shopping list successfully")
}
