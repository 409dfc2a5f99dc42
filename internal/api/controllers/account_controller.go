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

type AccountController struct {
	accountService services.AccountServiceInterface
	cfg            *config.Config
}

func NewAccountController(accountService services.AccountServiceInterface, cfg *config.Config) *AccountController {
	return &AccountController{
		accountService: accountService,
		cfg:            cfg,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp.CreatedResponse{ID: id}, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}

// Logout godoc
// @Summary Revoke the current token
// @Tags Accounts
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /accounts/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	if err := a.accountService.Logout(c.Request.Context(), c.GetString("token")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Logged out")
}

// ChangePassword godoc
// @Summary Change the password of the current account
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Param request body request_models.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/change-password [post]
func (a *AccountController) ChangePassword(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password changed successfully")
}

// Me godoc
// @Summary Current account
// @Tags Accounts
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /accounts/me [get]
func (a *AccountController) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	account, err := a.accountService.Me(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Fetched account successfully")
}

// ListAccounts godoc
// @Summary List all accounts (admin)
// @Tags Accounts
// @Security BearerAuth
// @Param cursor query int false "Return accounts with id greater than this"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /accounts/all [get]
func (a *AccountController) ListAccounts(c *gin.Context) {
	cursor, limit, err := parsePage(c, a.cfg)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	accounts, err := a.accountService.ListAccounts(c.Request.Context(), cursor, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Fetched accounts successfully")
}
