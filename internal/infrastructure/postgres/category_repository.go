package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL
// (usable con pool o tx). Todas las consultas filtran por owner_id.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría con su dueño.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	const query = `
		INSERT INTO categories (id, owner_id, name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.OwnerID, category.Name, category.Description, category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetOwned obtiene la categoría solo si pertenece a ownerID; nil si no.
func (r *CategoryRepo) GetOwned(ctx context.Context, ownerID, id string) (*entity.Category, error) {
	const query = `
		SELECT id, owner_id, name, description, created_at
		FROM categories WHERE id = $1 AND owner_id = $2`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id, ownerID).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Description, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListOwned devuelve la página pedida y el total de categorías del dueño.
func (r *CategoryRepo) ListOwned(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Category, int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE owner_id = $1`, ownerID).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	const query = `
		SELECT id, owner_id, name, description, created_at
		FROM categories WHERE owner_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, count, rows.Err()
}

// Update actualiza nombre y descripción, acotado al dueño.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	const query = `
		UPDATE categories SET name = $3, description = $4
		WHERE id = $1 AND owner_id = $2`
	_, err := r.q.Exec(ctx, query, category.ID, category.OwnerID, category.Name, category.Description)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteOwned elimina la categoría del dueño; la FK cascada borra sus productos.
func (r *CategoryRepo) DeleteOwned(ctx context.Context, ownerID, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
