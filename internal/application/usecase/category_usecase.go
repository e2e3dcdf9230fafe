package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/jhoicas/despensa-api/pkg/config"
)

// CategoryUseCase casos de uso CRUD para categorías. Toda operación va acotada
// al dueño autenticado; una categoría ajena se comporta como inexistente.
type CategoryUseCase struct {
	repo       repository.CategoryRepository
	pagination config.PaginationConfig
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, pagination config.PaginationConfig) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, pagination: pagination}
}

// Create crea una categoría estampando al caller como dueño.
func (uc *CategoryUseCase) Create(ctx context.Context, ownerID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError().Add("name", "es requerido")
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría del dueño; nil si no existe o no es suya.
func (uc *CategoryUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// List lista las categorías del dueño con la paginación global por defecto.
func (uc *CategoryUseCase) List(ctx context.Context, ownerID string, page dto.PageQuery) (*dto.CategoryListResponse, error) {
	pageNum := page.Page
	if pageNum < 1 {
		pageNum = 1
	}
	pageSize := uc.pagination.Normalize(page.PageSize, uc.pagination.DefaultPageSize)

	list, count, err := uc.repo.ListOwned(ctx, ownerID, pageSize, dto.Offset(pageNum, pageSize))
	if err != nil {
		return nil, err
	}
	results := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		results = append(results, *toCategoryResponse(c))
	}
	links := dto.BuildPageLinks(count, pageNum, pageSize)
	return &dto.CategoryListResponse{
		Count:    count,
		Next:     links.Next,
		Previous: links.Previous,
		Results:  results,
	}, nil
}

// Update actualiza nombre/descripción. Nil si la categoría no es del dueño.
func (uc *CategoryUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError().Add("name", "no puede quedar vacío")
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina la categoría del dueño (cascada a sus productos). Devuelve
// false si no existía dentro del alcance del dueño.
func (uc *CategoryUseCase) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	return uc.repo.DeleteOwned(ctx, ownerID, id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
