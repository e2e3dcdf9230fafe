package repository

import (
	"context"
	"time"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// OrderField columnas por las que puede ordenarse el listado de productos.
type OrderField string

const (
	OrderByPrice     OrderField = "price"
	OrderByQuantity  OrderField = "quantity"
	OrderByCreatedAt OrderField = "created_at"
)

// ProductListFilter parámetros ya normalizados del listado de productos.
// OwnerID es obligatorio: el filtro de propiedad no es opcional en ningún caso.
type ProductListFilter struct {
	OwnerID    string
	CategoryID string     // filtro de igualdad, vacío = sin filtro
	Search     string     // substring case-insensitive sobre name, vacío = sin búsqueda
	OrderBy    OrderField // siempre una columna válida (el use case la resuelve)
	Descending bool
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product.
// Todo método de lectura/escritura está acotado por el dueño de la categoría.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetOwned devuelve el producto solo si su categoría pertenece a ownerID.
	GetOwned(ctx context.Context, ownerID, id string) (*entity.Product, error)
	// ListOwned aplica filtro de propiedad + categoría + búsqueda + orden +
	// paginación y devuelve la página junto con el total sin paginar.
	ListOwned(ctx context.Context, filter ProductListFilter) ([]*entity.Product, int, error)
	Update(ctx context.Context, product *entity.Product) error
	// DeleteOwned elimina el producto si pertenece al dueño; reporta si había fila.
	DeleteOwned(ctx context.Context, ownerID, id string) (bool, error)
	// ListLowStock y ListExpired son los conjuntos de alertas, filtrados en SQL
	// con los fragmentos de internal/domain/alert.
	ListLowStock(ctx context.Context, ownerID string) ([]*entity.Product, error)
	ListExpired(ctx context.Context, ownerID string, ref time.Time) ([]*entity.Product, error)
}
