package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. El dueño se toma del
// token, nunca del body.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (campos opcionales).
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Count    int                `json:"count"`
	Next     *int               `json:"next"`
	Previous *int               `json:"previous"`
	Results  []CategoryResponse `json:"results"`
}
