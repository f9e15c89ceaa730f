package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/service"
)

// ReviewHandler exposes review creation and aggregation.
type ReviewHandler struct {
	svc *service.ReviewService
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// CreateResena handles POST /api/resenas.
func (h *ReviewHandler) CreateResena(c echo.Context) error {
	var in service.CreateReviewInput
	if err := c.Bind(&in); err != nil {
		return apperror.BadRequest("Cuerpo de solicitud inválido")
	}
	review, err := h.svc.CreateResena(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respondCreated(c, review)
}

// GetResenaItem handles GET /api/resenas/item/:id.
func (h *ReviewHandler) GetResenaItem(c echo.Context) error {
	review, err := h.svc.GetResenaItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondOK(c, review)
}

// GetResenasByProduct handles GET /api/resenas/:productId.
func (h *ReviewHandler) GetResenasByProduct(c echo.Context) error {
	out, err := h.svc.GetResenasByProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return respondOK(c, out)
}
