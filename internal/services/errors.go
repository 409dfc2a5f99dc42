package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mealplanner/pkg/utils"
)

var passthroughErrors = []error{
	utils.ErrProductNotFound,
	utils.ErrDishNotFound,
	utils.ErrMealNotFound,
	utils.ErrIngredientNotFound,
	utils.ErrAccountNotFound,
}

// repoError keeps not-found sentinels as they are and wraps everything else as
// ErrDatabaseError, logging the original cause.
func repoError(log *zap.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range passthroughErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	log.Error(op+" failed", zap.Error(err))
	return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
}
