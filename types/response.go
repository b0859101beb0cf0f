package types

type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// PagedResponse is the envelope for paginated collections. The dashboard
// clients read data and totalPages directly.
type PagedResponse struct {
	Data       interface{} `json:"data"`
	TotalPages int64       `json:"totalPages"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
}
