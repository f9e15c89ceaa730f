package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jpariona/ulima-campus-api/internal/service"
)

// MenuHandler exposes the read-only menu catalog.
type MenuHandler struct {
	svc *service.MenuService
}

// NewMenuHandler constructs a MenuHandler.
func NewMenuHandler(svc *service.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// GetMenuItems handles GET /api/menu.
func (h *MenuHandler) GetMenuItems(c echo.Context) error {
	items, err := h.svc.GetMenuItems(c.Request().Context())
	if err != nil {
		return err
	}
	return respondOK(c, items)
}

// GetMenuItemDetail handles GET /api/menu/:id.
func (h *MenuHandler) GetMenuItemDetail(c echo.Context) error {
	item, err := h.svc.GetMenuItemDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondOK(c, item)
}
