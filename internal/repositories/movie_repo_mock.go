package repositories

import (
	"fmt"
	"sync"

	"katalog/internal/models"
)

// MockMovieRepository is an in-memory implementation of MovieRepository.
// It mirrors the database semantics: generated integer IDs, unique titles,
// and not-found errors on zero-row updates and deletes.
type MockMovieRepository struct {
	movies map[uint]models.Movie
	nextID uint
	mu     sync.RWMutex
}

// NewMockMovieRepository creates a new instance of MockMovieRepository.
func NewMockMovieRepository() *MockMovieRepository {
	return &MockMovieRepository{
		movies: make(map[uint]models.Movie),
		nextID: 1,
	}
}

// GetAll returns all movies in ID order.
func (r *MockMovieRepository) GetAll() ([]models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movieList := make([]models.Movie, 0, len(r.movies))
	for id := uint(1); id < r.nextID; id++ {
		if m, ok := r.movies[id]; ok {
			movieList = append(movieList, m)
		}
	}
	return movieList, nil
}

// GetByID returns a movie by its ID.
func (r *MockMovieRepository) GetByID(id uint) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie with ID %d: %w", id, ErrMovieNotFound)
	}
	return &movie, nil
}

// Create adds a new movie, assigning the next generated ID.
func (r *MockMovieRepository) Create(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.movies {
		if existing.Title == movie.Title {
			return fmt.Errorf("title %q: %w", movie.Title, ErrDuplicateTitle)
		}
	}

	movie.ID = r.nextID
	r.nextID++
	r.movies[movie.ID] = *movie
	return nil
}

// Update replaces an existing movie.
func (r *MockMovieRepository) Update(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[movie.ID]; !ok {
		return fmt.Errorf("movie with ID %d: %w", movie.ID, ErrMovieNotFound)
	}
	for id, existing := range r.movies {
		if id != movie.ID && existing.Title == movie.Title {
			return fmt.Errorf("title %q: %w", movie.Title, ErrDuplicateTitle)
		}
	}
	r.movies[movie.ID] = *movie
	return nil
}

// Delete removes a movie by its ID.
func (r *MockMovieRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return fmt.Errorf("movie with ID %d: %w", id, ErrMovieNotFound)
	}
	delete(r.movies, id)
	return nil
}
