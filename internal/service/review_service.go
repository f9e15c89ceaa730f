package service

import (
	"context"
	"errors"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/model"
	"github.com/jpariona/ulima-campus-api/internal/repository"
)

// ReviewRepository is the slice of repository.ReviewRepo the review service
// needs.
type ReviewRepository interface {
	ListByProduct(ctx context.Context, productID string) ([]model.Review, error)
	GetByID(ctx context.Context, id string) (*model.Review, error)
	Create(ctx context.Context, rv *model.Review) error
}

// ProductChecker verifies that a review target exists in the menu catalog.
type ProductChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// CreateReviewInput is the request shape for review creation. Comments ride
// along and are persisted atomically with the review.
type CreateReviewInput struct {
	ProductID    string `json:"productId"`
	UsuarioID    string `json:"usuarioId"`
	Calificacion int    `json:"calificacion"`
	Comentarios  []struct {
		Comentario   string `json:"comentario"`
		Calificacion int    `json:"calificacion"`
	} `json:"comentarios"`
}

// ReviewService implements review creation and aggregation.
type ReviewService struct {
	reviews ReviewRepository
	menu    ProductChecker
}

// NewReviewService constructs a ReviewService.
func NewReviewService(reviews ReviewRepository, menu ProductChecker) *ReviewService {
	return &ReviewService{reviews: reviews, menu: menu}
}

// GetResenasByProduct returns all reviews of a product, newest first, plus
// the arithmetic mean of their ratings. The average is recomputed from live
// rows on every call and is exactly 0 when the product has no reviews.
func (s *ReviewService) GetResenasByProduct(ctx context.Context, productID string) (*model.ProductReviews, error) {
	reviews, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	avg := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, rv := range reviews {
			sum += rv.Calificacion
		}
		avg = float64(sum) / float64(len(reviews))
	}

	return &model.ProductReviews{
		ProductID:    productID,
		Calificacion: avg,
		Resenas:      reviews,
	}, nil
}

// CreateResena verifies that the target product exists and persists the
// review with its comments as one unit.
func (s *ReviewService) CreateResena(ctx context.Context, in CreateReviewInput) (*model.Review, error) {
	ok, err := s.menu.Exists(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("Producto no encontrado")
	}

	comments := make([]model.Comment, len(in.Comentarios))
	for i, c := range in.Comentarios {
		comments[i] = model.Comment{Comentario: c.Comentario, Calificacion: c.Calificacion}
	}
	review := &model.Review{
		ProductID:    in.ProductID,
		UsuarioID:    in.UsuarioID,
		Calificacion: in.Calificacion,
		Comentarios:  comments,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// GetResenaItem fetches one review with its comments.
func (s *ReviewService) GetResenaItem(ctx context.Context, id string) (*model.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, apperror.NotFound("Reseña no encontrada")
		}
		return nil, err
	}
	return review, nil
}
