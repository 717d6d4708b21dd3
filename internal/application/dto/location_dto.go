package dto

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
