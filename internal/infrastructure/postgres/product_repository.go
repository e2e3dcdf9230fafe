package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/despensa-api/internal/domain/alert"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Todas las consultas parten del fragmento de
// propiedad ownedProducts (scope.go); no hay SELECT de productos sin dueño.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. La propiedad de la categoría ya fue
// verificada por el use case dentro de la misma transacción.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	const query = `
		INSERT INTO products (id, category_id, name, price, quantity, min_threshold, expiration_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.CategoryID, product.Name, product.Price,
		product.Quantity, product.MinThreshold, product.ExpirationDate, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetOwned obtiene un producto solo si su categoría pertenece a ownerID.
func (r *ProductRepo) GetOwned(ctx context.Context, ownerID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` ` + ownedProducts + ` WHERE p.id = @id`
	row := r.q.QueryRow(ctx, query, pgx.NamedArgs{"owner_id": ownerID, "id": id})
	var p entity.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Price, &p.Quantity, &p.MinThreshold, &p.ExpirationDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListOwned compone el listado: propiedad (siempre) + categoría + búsqueda +
// orden + paginación, y devuelve además el total sin paginar.
func (r *ProductRepo) ListOwned(ctx context.Context, filter repository.ProductListFilter) ([]*entity.Product, int, error) {
	args := pgx.NamedArgs{"owner_id": filter.OwnerID}
	where := ""
	if filter.CategoryID != "" {
		where += ` AND p.category_id = @category_id`
		args["category_id"] = filter.CategoryID
	}
	if filter.Search != "" {
		where += ` AND p.name ILIKE @search`
		args["search"] = "%" + escapeLike(filter.Search) + "%"
	}

	var count int
	countQuery := `SELECT COUNT(*) ` + ownedProducts + where
	if err := r.q.QueryRow(ctx, countQuery, args).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	args["limit"] = filter.Limit
	args["offset"] = filter.Offset
	query := `SELECT ` + productColumns + ` ` + ownedProducts + where +
		` ORDER BY ` + orderClause(filter.OrderBy, filter.Descending) +
		` LIMIT @limit OFFSET @offset`

	rows, err := r.q.Query(ctx, query, args)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

// Update actualiza un producto existente (campos editables; created_at nunca).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	const query = `
		UPDATE products
		SET category_id = $2, name = $3, price = $4, quantity = $5, min_threshold = $6, expiration_date = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.CategoryID, product.Name, product.Price,
		product.Quantity, product.MinThreshold, product.ExpirationDate,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DeleteOwned elimina el producto si su categoría pertenece al dueño.
func (r *ProductRepo) DeleteOwned(ctx context.Context, ownerID, id string) (bool, error) {
	const query = `
		DELETE FROM products p
		USING categories c
		WHERE p.id = @id AND c.id = p.category_id AND c.owner_id = @owner_id`
	cmd, err := r.q.Exec(ctx, query, pgx.NamedArgs{"owner_id": ownerID, "id": id})
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListLowStock productos del dueño con stock en o bajo el umbral. El predicado
// es el fragmento canónico de internal/domain/alert.
func (r *ProductRepo) ListLowStock(ctx context.Context, ownerID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` ` + ownedProducts +
		` WHERE ` + alert.LowStockSQL + ` ORDER BY p.created_at DESC, p.id`
	rows, err := r.q.Query(ctx, query, pgx.NamedArgs{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListExpired productos del dueño vencidos a la fecha de referencia (el mismo
// día cuenta como vencido).
func (r *ProductRepo) ListExpired(ctx context.Context, ownerID string, ref time.Time) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` ` + ownedProducts +
		` WHERE ` + alert.ExpiredSQL + ` ORDER BY p.created_at DESC, p.id`
	rows, err := r.q.Query(ctx, query, pgx.NamedArgs{"owner_id": ownerID, "ref_date": alert.DateOf(ref)})
	if err != nil {
		return nil, fmt.Errorf("list expired: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// orderClause traduce la columna (ya validada por el use case) y dirección a
// SQL, con p.id como desempate estable.
func orderClause(field repository.OrderField, descending bool) string {
	dir := "ASC"
	if descending {
		dir = "DESC"
	}
	return fmt.Sprintf("p.%s %s, p.id", field, dir)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Price, &p.Quantity, &p.MinThreshold, &p.ExpirationDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
