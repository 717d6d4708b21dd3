package dto

// CreateNameRequest entrada para crear una categoría o huella: solo nombre.
type CreateNameRequest struct {
	Name string `json:"name"`
}

// NameResponse salida de una categoría o huella.
type NameResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
