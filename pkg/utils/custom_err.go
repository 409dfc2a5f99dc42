package utils

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrMealNotFound       = errors.New("meal not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrAccountNotFound    = errors.New("account not found")

	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidCursor    = errors.New("invalid cursor parameter")
	ErrInvalidPageSize  = errors.New("invalid page size parameter")
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrTooManyMeals     = errors.New("too many meal ids")

	ErrEmailAlreadyExists = errors.New("email or username already registered")
	ErrProductInUse       = errors.New("product is used by an ingredient")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrMissingSigningKey  = errors.New("jwt signing secret is empty")

	ErrDatabaseError = errors.New("database error")
)
