package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"mealplanner/internal/config"
	"mealplanner/pkg/utils"
)

// parsePage reads ?cursor= and ?limit=. cursor is optional but must be a
// positive id when present; limit defaults to cfg.DefaultPageSize and must lie
// in [1, cfg.MaxPageSize].
func parsePage(c *gin.Context, cfg *config.Config) (*uint, int, error) {
	cursor, err := parseOptionalID(c.Query("cursor"))
	if err != nil {
		return nil, 0, utils.ErrInvalidCursor
	}

	limit := cfg.DefaultPageSize
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > cfg.MaxPageSize {
			return nil, 0, utils.ErrInvalidPageSize
		}
	}
	return cursor, limit, nil
}

// parseOptionalID returns nil for "", the id for a positive integer, and an
// error for anything else.
func parseOptionalID(raw string) (*uint, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil, utils.ErrInvalidInput
	}
	id := uint(v)
	return &id, nil
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := parseOptionalID(c.Param("id"))
	if err != nil || id == nil {
		return 0, false
	}
	return *id, true
}

// currentUser aborts with 401 when the JWT middleware did not run.
func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := utils.UserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return 0, false
	}
	return userID, true
}
