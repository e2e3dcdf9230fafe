package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo implementación del puerto TokenRepository sobre PostgreSQL.
type TokenRepo struct {
	q Querier
}

// NewTokenRepository construye el adaptador de persistencia para sesiones.
func NewTokenRepository(q Querier) *TokenRepo {
	return &TokenRepo{q: q}
}

// Create persiste una sesión nueva.
func (r *TokenRepo) Create(ctx context.Context, token *entity.Token) error {
	const query = `
		INSERT INTO tokens (id, user_id, token_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		token.ID, token.UserID, token.TokenHash, token.CreatedAt, token.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// GetByHash obtiene una sesión por hash; nil si no existe (revocada o nunca emitida).
func (r *TokenRepo) GetByHash(ctx context.Context, tokenHash string) (*entity.Token, error) {
	const query = `
		SELECT id, user_id, token_hash, created_at, expires_at
		FROM tokens WHERE token_hash = $1`
	var t entity.Token
	err := r.q.QueryRow(ctx, query, tokenHash).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.CreatedAt, &t.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token: %w", err)
	}
	return &t, nil
}

// DeleteByHash elimina la sesión (logout). No es error si no existía.
func (r *TokenRepo) DeleteByHash(ctx context.Context, tokenHash string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM tokens WHERE token_hash = $1`, tokenHash); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
