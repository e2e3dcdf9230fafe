package usecase

import (
	"context"

	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Las escrituras de producto lo usan para que la verificación de propiedad de
// la categoría y la persistencia sean atómicas (no hay ventana entre chequeo y
// escritura dentro del request).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		products repository.ProductRepository,
	) error) error
}
