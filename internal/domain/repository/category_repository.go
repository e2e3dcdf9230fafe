package repository

import (
	"context"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
// Todas las lecturas y escrituras van acotadas por ownerID: una categoría de
// otro usuario simplemente no existe para el que consulta.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	// GetOwned devuelve la categoría solo si pertenece a ownerID; nil si no.
	GetOwned(ctx context.Context, ownerID, id string) (*entity.Category, error)
	// ListOwned devuelve la página pedida y el total de categorías del dueño.
	ListOwned(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Category, int, error)
	Update(ctx context.Context, category *entity.Category) error
	// DeleteOwned elimina (con cascada a productos) y reporta si había fila.
	DeleteOwned(ctx context.Context, ownerID, id string) (bool, error)
}
