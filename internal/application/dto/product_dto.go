package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Category debe ser una
// categoría del propio usuario; se verifica antes de persistir.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	MinThreshold   int             `json:"min_threshold"`
	ExpirationDate *Date           `json:"expiration_date"`
	Category       string          `json:"category"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// Cambiar Category re-verifica la propiedad de la categoría destino.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Price          *decimal.Decimal `json:"price"`
	Quantity       *int             `json:"quantity"`
	MinThreshold   *int             `json:"min_threshold"`
	ExpirationDate *Date            `json:"expiration_date"`
	Category       *string          `json:"category"`
}

// ProductResponse salida de un producto con sus dos flags derivados, calculados
// a la fecha de evaluación de la consulta.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	MinThreshold   int             `json:"min_threshold"`
	ExpirationDate *Date           `json:"expiration_date"`
	Category       string          `json:"category"`
	IsLowStock     bool            `json:"is_low_stock"`
	HasExpiry      bool            `json:"has_expiry"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ListProductsQuery parámetros del listado de productos.
type ListProductsQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Ordering string `query:"ordering"` // price | quantity | created_at, con "-" opcional
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Count    int               `json:"count"`
	Next     *int              `json:"next"`
	Previous *int              `json:"previous"`
	Results  []ProductResponse `json:"results"`
}

// AlertsResponse listas de alerta. No son excluyentes: un producto puede estar
// en ambas a la vez.
type AlertsResponse struct {
	LowStock []ProductResponse `json:"low_stock"`
	Expired  []ProductResponse `json:"expired"`
}
