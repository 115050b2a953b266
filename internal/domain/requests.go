package domain

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
}

type RegisterRequest struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	Language string  `json:"language" validate:"omitempty,oneof=english hindi telugu"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateListingRequest is validated by hand in the controller so the
// missing-userId case can answer 401 rather than a generic 400.
type CreateListingRequest struct {
	UserID       string  `json:"userId"`
	CropID       *string `json:"cropId"`
	Quantity     float64 `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Location     string  `json:"location"`
	Description  *string `json:"description"`
}

type BackfillRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type DatabaseStatus struct {
	Connected   bool           `json:"connected"`
	Collections map[string]int `json:"collections"`
	Message     string         `json:"message"`
}
