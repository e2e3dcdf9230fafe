package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario. El dueño efectivo es el dueño
// de su categoría; no existe asignación directa producto → usuario.
//
// is_low_stock y has_expiry son derivados (internal/domain/alert), nunca se
// persisten.
type Product struct {
	ID             string
	CategoryID     string
	Name           string
	Price          decimal.Decimal // precio unitario, ≥ 0
	Quantity       int             // existencias, ≥ 0
	MinThreshold   int             // umbral de stock bajo, ≥ 0
	ExpirationDate *time.Time      // fecha de vencimiento, opcional (solo fecha)
	CreatedAt      time.Time       // inmutable
}

// Value devuelve el valor de inventario del producto (precio × cantidad).
func (p *Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
