package request_models

// CreateProductRequest is also the body of a full (PUT) update.
type CreateProductRequest struct {
	Name    string   `json:"name" binding:"required,max=255"`
	Measure string   `json:"measure" binding:"required,oneof=kg gram piece"`
	Price   *float64 `json:"price" binding:"required,gte=0"`
	Emoji   *string  `json:"emoji" binding:"omitempty,max=16"`
}

type PatchProductRequest struct {
	Name    *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Measure *string  `json:"measure" binding:"omitempty,oneof=kg gram piece"`
	Price   *float64 `json:"price" binding:"omitempty,gte=0"`
	Emoji   *string  `json:"emoji" binding:"omitempty,max=16"`
}
