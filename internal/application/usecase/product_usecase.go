package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/alert"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/jhoicas/despensa-api/pkg/config"
)

// ProductUseCase casos de uso de productos: CRUD con verificación de propiedad
// de la categoría, listado compuesto (filtro + búsqueda + orden + paginación) y
// alertas. Los flags derivados siempre se calculan con internal/domain/alert.
type ProductUseCase struct {
	repo       repository.ProductRepository
	tx         TxRunner
	pagination config.PaginationConfig
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner, pagination config.PaginationConfig) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx, pagination: pagination}
}

// Create crea un producto. La categoría enviada debe pertenecer al caller; se
// verifica y persiste dentro de la misma transacción, así la propiedad no puede
// cambiar entre chequeo y escritura. Devuelve ErrCategoryNotOwned si la
// categoría no existe o es de otro usuario (sin persistir nada).
func (uc *ProductUseCase) Create(ctx context.Context, ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if verr := validateCreateProduct(in); !verr.Empty() {
		return nil, verr
	}
	product := &entity.Product{
		ID:           uuid.New().String(),
		CategoryID:   in.Category,
		Name:         in.Name,
		Price:        in.Price,
		Quantity:     in.Quantity,
		MinThreshold: in.MinThreshold,
		CreatedAt:    time.Now(),
	}
	if in.ExpirationDate != nil {
		d := alert.DateOf(in.ExpirationDate.Time)
		product.ExpirationDate = &d
	}
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		category, err := categories.GetOwned(ctx, ownerID, in.Category)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrCategoryNotOwned
		}
		return products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, time.Now()), nil
}

// GetByID obtiene un producto del dueño (vía su categoría); nil si no es suyo.
func (uc *ProductUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product, time.Now()), nil
}

// List produce la vista paginada de productos del caller: filtro de propiedad
// (siempre), filtro por categoría, búsqueda por nombre, orden y paginación.
func (uc *ProductUseCase) List(ctx context.Context, ownerID string, q dto.ListProductsQuery) (*dto.ProductListResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := uc.pagination.Normalize(q.PageSize, uc.pagination.ProductPageSize)
	orderBy, descending := ParseOrdering(q.Ordering)

	filter := repository.ProductListFilter{
		OwnerID:    ownerID,
		CategoryID: q.Category,
		Search:     q.Search,
		OrderBy:    orderBy,
		Descending: descending,
		Limit:      pageSize,
		Offset:     dto.Offset(page, pageSize),
	}
	list, count, err := uc.repo.ListOwned(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	results := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		results = append(results, *toProductResponse(p, now))
	}
	links := dto.BuildPageLinks(count, page, pageSize)
	return &dto.ProductListResponse{
		Count:    count,
		Next:     links.Next,
		Previous: links.Previous,
		Results:  results,
	}, nil
}

// Update actualiza un producto del dueño. Cambiar de categoría re-verifica la
// propiedad de la categoría destino dentro de la misma transacción.
func (uc *ProductUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if verr := validateUpdateProduct(in); !verr.Empty() {
		return nil, verr
	}
	var updated *entity.Product
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.GetOwned(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.Quantity != nil {
			product.Quantity = *in.Quantity
		}
		if in.MinThreshold != nil {
			product.MinThreshold = *in.MinThreshold
		}
		if in.ExpirationDate != nil {
			d := alert.DateOf(in.ExpirationDate.Time)
			product.ExpirationDate = &d
		}
		if in.Category != nil && *in.Category != product.CategoryID {
			category, err := categories.GetOwned(ctx, ownerID, *in.Category)
			if err != nil {
				return err
			}
			if category == nil {
				return domain.ErrCategoryNotOwned
			}
			product.CategoryID = *in.Category
		}
		if err := products.Update(ctx, product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return toProductResponse(updated, time.Now()), nil
}

// Delete elimina un producto del dueño. False si no existía en su alcance.
func (uc *ProductUseCase) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	return uc.repo.DeleteOwned(ctx, ownerID, id)
}

// Alerts devuelve los productos con stock bajo y los vencidos del dueño. Las
// listas no son excluyentes y llevan los mismos flags que el listado normal.
func (uc *ProductUseCase) Alerts(ctx context.Context, ownerID string) (*dto.AlertsResponse, error) {
	now := time.Now()
	lowStock, err := uc.repo.ListLowStock(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	expired, err := uc.repo.ListExpired(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}
	out := &dto.AlertsResponse{
		LowStock: make([]dto.ProductResponse, 0, len(lowStock)),
		Expired:  make([]dto.ProductResponse, 0, len(expired)),
	}
	for _, p := range lowStock {
		out.LowStock = append(out.LowStock, *toProductResponse(p, now))
	}
	for _, p := range expired {
		out.Expired = append(out.Expired, *toProductResponse(p, now))
	}
	return out, nil
}

// ParseOrdering traduce el parámetro ordering ("-price", "created_at", ...) a
// columna + dirección. Un campo fuera de la lista blanca se ignora y se cae al
// orden por defecto: creación descendente (lo más nuevo primero).
func ParseOrdering(ordering string) (repository.OrderField, bool) {
	descending := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")
	switch repository.OrderField(field) {
	case repository.OrderByPrice, repository.OrderByQuantity, repository.OrderByCreatedAt:
		return repository.OrderField(field), descending
	default:
		return repository.OrderByCreatedAt, true
	}
}

func validateCreateProduct(in dto.CreateProductRequest) *domain.ValidationError {
	verr := domain.NewValidationError()
	if in.Name == "" {
		verr.Add("name", "es requerido")
	}
	if in.Category == "" {
		verr.Add("category", "es requerido")
	}
	if in.Price.LessThan(decimal.Zero) {
		verr.Add("price", "debe ser ≥ 0")
	}
	if in.Quantity < 0 {
		verr.Add("quantity", "debe ser ≥ 0")
	}
	if in.MinThreshold < 0 {
		verr.Add("min_threshold", "debe ser ≥ 0")
	}
	return verr
}

func validateUpdateProduct(in dto.UpdateProductRequest) *domain.ValidationError {
	verr := domain.NewValidationError()
	if in.Name != nil && *in.Name == "" {
		verr.Add("name", "no puede quedar vacío")
	}
	if in.Category != nil && *in.Category == "" {
		verr.Add("category", "no puede quedar vacío")
	}
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		verr.Add("price", "debe ser ≥ 0")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		verr.Add("quantity", "debe ser ≥ 0")
	}
	if in.MinThreshold != nil && *in.MinThreshold < 0 {
		verr.Add("min_threshold", "debe ser ≥ 0")
	}
	return verr
}

// toProductResponse anota el producto con sus flags derivados a la fecha ref.
// Mismo camino para listado y detalle: ambos pasan por aquí y por domain/alert.
func toProductResponse(p *entity.Product, ref time.Time) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	flags := alert.Evaluate(p.Quantity, p.MinThreshold, p.ExpirationDate, ref)
	out := &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Quantity:     p.Quantity,
		MinThreshold: p.MinThreshold,
		Category:     p.CategoryID,
		IsLowStock:   flags.IsLowStock,
		HasExpiry:    flags.HasExpiry,
		CreatedAt:    p.CreatedAt,
	}
	if p.ExpirationDate != nil {
		d := dto.NewDate(*p.ExpirationDate)
		out.ExpirationDate = &d
	}
	return out
}
