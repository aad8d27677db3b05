package services_test

import (
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCatalogService() (*services.CatalogService, *repositories.MockMovieRepository) {
	repo := repositories.NewMockMovieRepository()
	// nil MQ client: catalog events are skipped entirely.
	return services.NewCatalogService(repo, nil), repo
}

func TestCatalogService_CreateAndList(t *testing.T) {
	svc, _ := newCatalogService()

	movie := &models.Movie{
		Title:    "Inception",
		Genre:    "Sci-Fi",
		Sinopsis: "A thief steals secrets through dreams.",
		Language: "English",
	}
	err := svc.CreateMovie(movie)
	assert.NoError(t, err)
	assert.NotZero(t, movie.ID)

	movies, err := svc.GetAllMovies()
	assert.NoError(t, err)
	assert.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0].Title)
}

func TestCatalogService_CreateDuplicateTitle(t *testing.T) {
	svc, _ := newCatalogService()

	first := &models.Movie{Title: "Inception", Genre: "Sci-Fi", Sinopsis: "...", Language: "English"}
	assert.NoError(t, svc.CreateMovie(first))

	second := &models.Movie{Title: "Inception", Genre: "Drama", Sinopsis: "...", Language: "French"}
	err := svc.CreateMovie(second)
	assert.ErrorIs(t, err, repositories.ErrDuplicateTitle)

	movies, err := svc.GetAllMovies()
	assert.NoError(t, err)
	assert.Len(t, movies, 1)
}

func TestCatalogService_UpdateMovie(t *testing.T) {
	svc, _ := newCatalogService()

	movie := &models.Movie{Title: "Inception", Genre: "Sci-Fi", Sinopsis: "...", Language: "English"}
	assert.NoError(t, svc.CreateMovie(movie))

	movie.Genre = "Thriller"
	movie.Language = "Japanese"
	assert.NoError(t, svc.UpdateMovie(movie))

	got, err := svc.GetMovieByID(movie.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Thriller", got.Genre)
	assert.Equal(t, "Japanese", got.Language)
}

func TestCatalogService_UpdateMissingMovie(t *testing.T) {
	svc, _ := newCatalogService()

	err := svc.UpdateMovie(&models.Movie{
		ID:       999999,
		Title:    "Nowhere",
		Genre:    "Drama",
		Sinopsis: "...",
		Language: "English",
	})
	assert.ErrorIs(t, err, repositories.ErrMovieNotFound)
}

func TestCatalogService_UpdateOntoExistingTitle(t *testing.T) {
	svc, _ := newCatalogService()

	first := &models.Movie{Title: "Inception", Genre: "Sci-Fi", Sinopsis: "...", Language: "English"}
	second := &models.Movie{Title: "Memento", Genre: "Thriller", Sinopsis: "...", Language: "English"}
	assert.NoError(t, svc.CreateMovie(first))
	assert.NoError(t, svc.CreateMovie(second))

	second.Title = "Inception"
	err := svc.UpdateMovie(second)
	assert.ErrorIs(t, err, repositories.ErrDuplicateTitle)
}

func TestCatalogService_DeleteMovie(t *testing.T) {
	svc, _ := newCatalogService()

	movie := &models.Movie{Title: "Inception", Genre: "Sci-Fi", Sinopsis: "...", Language: "English"}
	assert.NoError(t, svc.CreateMovie(movie))

	assert.NoError(t, svc.DeleteMovie(movie.ID))

	movies, err := svc.GetAllMovies()
	assert.NoError(t, err)
	assert.Empty(t, movies)

	err = svc.DeleteMovie(movie.ID)
	assert.ErrorIs(t, err, repositories.ErrMovieNotFound)
}

func TestCatalogService_GetMovieByID(t *testing.T) {
	svc, _ := newCatalogService()

	movie := &models.Movie{Title: "Inception", Genre: "Sci-Fi", Sinopsis: "...", Language: "English"}
	assert.NoError(t, svc.CreateMovie(movie))

	got, err := svc.GetMovieByID(movie.ID)
	assert.NoError(t, err)
	assert.Equal(t, movie.Title, got.Title)

	_, err = svc.GetMovieByID(999999)
	assert.ErrorIs(t, err, repositories.ErrMovieNotFound)
}
