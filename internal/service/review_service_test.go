package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/model"
	"github.com/jpariona/ulima-campus-api/internal/repository"
)

type fakeReviewRepo struct {
	reviews []model.Review
}

func (f *fakeReviewRepo) ListByProduct(_ context.Context, productID string) ([]model.Review, error) {
	var out []model.Review
	for _, rv := range f.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (*model.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			return &f.reviews[i], nil
		}
	}
	return nil, repository.ErrReviewNotFound
}

func (f *fakeReviewRepo) Create(_ context.Context, rv *model.Review) error {
	rv.ID = fmt.Sprintf("resena-%d", len(f.reviews)+1)
	rv.CreatedAt = time.Now()
	f.reviews = append(f.reviews, *rv)
	return nil
}

type fakeProductChecker struct {
	known map[string]bool
}

func (f *fakeProductChecker) Exists(_ context.Context, id string) (bool, error) {
	return f.known[id], nil
}

func newReviewFixture() (*ReviewService, *fakeReviewRepo) {
	repo := &fakeReviewRepo{}
	menu := &fakeProductChecker{known: map[string]bool{"menu-1": true}}
	return NewReviewService(repo, menu), repo
}

func TestGetResenasByProductAverage(t *testing.T) {
	svc, repo := newReviewFixture()

	// no reviews yet: average is exactly zero, not NaN
	agg, err := svc.GetResenasByProduct(context.Background(), "menu-1")
	require.NoError(t, err)
	assert.Zero(t, agg.Calificacion)
	assert.Empty(t, agg.Resenas)

	for _, rating := range []int{5, 4, 3} {
		repo.reviews = append(repo.reviews, model.Review{
			ID: fmt.Sprintf("resena-%d", rating), ProductID: "menu-1", UsuarioID: "u1", Calificacion: rating,
		})
	}

	agg, err = svc.GetResenasByProduct(context.Background(), "menu-1")
	require.NoError(t, err)
	assert.Equal(t, "menu-1", agg.ProductID)
	assert.Len(t, agg.Resenas, 3)
	assert.InDelta(t, 4.0, agg.Calificacion, 1e-9)
}

func TestCreateResenaRequiresExistingProduct(t *testing.T) {
	svc, repo := newReviewFixture()

	_, err := svc.CreateResena(context.Background(), CreateReviewInput{
		ProductID: "menu-ghost", UsuarioID: "u1", Calificacion: 5,
	})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Producto no encontrado", appErr.Message)
	assert.Empty(t, repo.reviews)
}

func TestCreateResenaPersistsComments(t *testing.T) {
	svc, _ := newReviewFixture()

	in := CreateReviewInput{ProductID: "menu-1", UsuarioID: "u1", Calificacion: 4}
	in.Comentarios = append(in.Comentarios, struct {
		Comentario   string `json:"comentario"`
		Calificacion int    `json:"calificacion"`
	}{Comentario: "Buen sabor", Calificacion: 4})

	rv, err := svc.CreateResena(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, rv.ID)
	require.Len(t, rv.Comentarios, 1)
	assert.Equal(t, "Buen sabor", rv.Comentarios[0].Comentario)
}

func TestGetResenaItemNotFound(t *testing.T) {
	svc, _ := newReviewFixture()

	_, err := svc.GetResenaItem(context.Background(), "ghost")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Reseña no encontrada", appErr.Message)
}
