// Package service holds the business rules between the HTTP handlers and the
// repositories: existence and uniqueness checks, totals, defaults and enum
// validation. Services return *apperror.Error values for every expected
// failure; anything else bubbles up as an internal error. Each service
// declares the narrow repository interface it consumes so tests can substitute
// in-memory fakes.
package service

import (
	"context"
	"errors"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/model"
	"github.com/jpariona/ulima-campus-api/internal/repository"
)

// MenuRepository is the slice of repository.MenuRepo the menu service needs.
type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	GetDetail(ctx context.Context, id string) (*model.MenuItem, error)
}

// MenuService serves the read-only menu catalog.
type MenuService struct {
	menu MenuRepository
}

// NewMenuService constructs a MenuService.
func NewMenuService(menu MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

// GetMenuItems returns all menu items ordered by name.
func (s *MenuService) GetMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	return s.menu.List(ctx)
}

// GetMenuItemDetail returns one item including its reviews and their
// comments.
func (s *MenuService) GetMenuItemDetail(ctx context.Context, id string) (*model.MenuItem, error) {
	item, err := s.menu.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, apperror.NotFound("Item del menú no encontrado")
		}
		return nil, err
	}
	return item, nil
}
