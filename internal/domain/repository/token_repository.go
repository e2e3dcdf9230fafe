package repository

import (
	"context"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// TokenRepository define el puerto de persistencia para las sesiones emitidas.
// El middleware de auth consulta por hash; logout elimina la fila.
type TokenRepository interface {
	Create(ctx context.Context, token *entity.Token) error
	GetByHash(ctx context.Context, tokenHash string) (*entity.Token, error)
	DeleteByHash(ctx context.Context, tokenHash string) error
}
