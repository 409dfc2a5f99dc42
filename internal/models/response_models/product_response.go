package response_models

type Product struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Measure string  `json:"measure"`
	Price   float64 `json:"price"`
	Emoji   *string `json:"emoji,omitempty"`
	UserID  uint    `json:"userId,omitempty"`
}
