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

type ProductController struct {
	productService services.ProductServiceInterface
	cfg            *config.Config
}

func NewProductController(productService services.ProductServiceInterface, cfg *config.Config) *ProductController {
	return &ProductController{
		productService: productService,
		cfg:            cfg,
	}
}

// ListProducts godoc
// @Summary List products
// @Tags Products
// @Produce json
// @Param cursor query int false "Return products with id greater than this"
// @Param limit query int false "Page size"
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /products [get]
func (pc *ProductController) ListProducts(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cursor, limit, err := parsePage(c, pc.cfg)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	products, err := pc.productService.ListProducts(c.Request.Context(), userID, cursor, limit, c.Query("search"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Fetched products successfully")
}

// GetProduct godoc
// @Summary Get a product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [get]
func (pc *ProductController) GetProduct(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := pc.productService.GetProduct(c.Request.Context(), id, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Fetched product successfully")
}

// CreateProduct godoc
// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body request_models.CreateProductRequest true "Product payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req request_models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := pc.productService.CreateProduct(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp.CreatedResponse{ID: id}, "Product created successfully")
}

// UpdateProduct godoc
// @Summary Replace a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body request_models.CreateProductRequest true "Product payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req request_models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := pc.productService.UpdateProduct(c.Request.Context(), id, userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Product updated successfully")
}

// PatchProduct godoc
// @Summary Update some fields of a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body request_models.PatchProductRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [patch]
func (pc *ProductController) PatchProduct(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req request_models.PatchProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := pc.productService.PatchProduct(c.Request.Context(), id, userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Product updated successfully")
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Fails with 409 while an ingredient still uses the product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	deleted, err := pc.productService.DeleteProduct(c.Request.Context(), id, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp.DeletedResponse{Deleted: deleted}, "Product deleted")
}
