package response_models

import "time"

// DishSummary is the dish shape nested in meals; ingredient detail is fetched per dish.
type DishSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Recipe   string `json:"recipe"`
	ImageURL string `json:"imageUrl"`
}

// Meal always carries a non-nil Dishes slice.
type Meal struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`
	UserID    uint          `json:"userId"`
	Dishes    []DishSummary `json:"dishes"`
}

// AggregatedIngredient is one shopping-list line: the summed demand for a product
// across every dish of the requested meals.
type AggregatedIngredient struct {
	ProductID     uint    `json:"productId"`
	ProductName   string  `json:"productName"`
	Measure       string  `json:"measure"`
	Price         float64 `json:"price"`
	TotalQuantity float64 `json:"totalQuantity"`
}

type CreatedResponse struct {
	ID uint `json:"id"`
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
