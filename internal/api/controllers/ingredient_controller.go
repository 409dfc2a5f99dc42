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

type IngredientController struct {
	ingredientService services.IngredientServiceInterface
	cfg               *config.Config
}

func NewIngredientController(ingredientService services.IngredientServiceInterface, cfg *config.Config) *IngredientController {
	return &IngredientController{
		ingredientService: ingredientService,
		cfg:               cfg,
	}
}

// ListIngredients godoc
// @Summary List ingredients
// @Tags Ingredients
// @Produce json
// @Param cursor query int false "Return ingredients with id greater than this"
// @Param limit query int false "Page size"
// @Param dishId query int false "Only ingredients of this dish"
// @Param productId query int false "Only ingredients using this product"
// @Param search query string false "Case-insensitive product name filter"
// @Success 200 {object} utils.APIResponse
// @Router /ingredients [get]
func (ic *IngredientController) ListIngredients(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cursor, limit, err := parsePage(c, ic.cfg)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	dishID, err := parseOptionalID(c.Query("dishId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid dishId")
		return
	}
	productID, err := parseOptionalID(c.Query("productId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid productId")
		return
	}

	ingredients, err := ic.ingredientService.ListIngredients(c.Request.Context(), userID, cursor, limit, services.IngredientFilter{
		DishID:    dishID,
		ProductID: productID,
		Search:    c.Query("search"),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ingredients, "Fetched ingredients successfully")
}

// GetIngredient godoc
// @Summary Get an ingredient
// @Tags Ingredients
// @Param id path int true "Ingredient ID"
// @Success 200 {object} utils.APIResponse
// @Router /ingredients/{id} [get]
func (ic *IngredientController) GetIngredient(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid ingredient id")
		return
	}

	ingredient, err := ic.ingredientService.GetIngredient(c.Request.Context(), id, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ingredient, "Fetched ingredient successfully")
}

// CreateIngredient godoc
// @Summary Add a product to a dish
// @Tags Ingredients
// @Accept json
// @Param request body request_models.IngredientRequest true "Ingredient payload"
// @Success 201 {object} utils.APIResponse
// @Router /ingredients [post]
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req request_models.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ic.ingredientService.CreateIngredient(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp.CreatedResponse{ID: id}, "Ingredient created successfully")
}

func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid ingredient id")
		return
	}
	var req request_models.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ic.ingredientService.UpdateIngredient(c.Request.Context(), id, userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Ingredient updated successfully")
}

func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid ingredient id")
		return
	}

	deleted, err := ic.ingredientService.DeleteIngredient(c.Request.Context(), id, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp.DeletedResponse{Deleted: deleted}, "Ingredient deleted")
}
