package repositories

import (
	"errors"
	"fmt"

	"katalog/internal/models"

	"gorm.io/gorm"
)

// GORMMovieRepository is a GORM implementation of MovieRepository.
//
// It relies on the connection being opened with TranslateError enabled so
// that unique-index violations surface as gorm.ErrDuplicatedKey regardless
// of the underlying driver.
type GORMMovieRepository struct {
	db *gorm.DB
}

// NewGORMMovieRepository creates a new instance of GORMMovieRepository.
func NewGORMMovieRepository(db *gorm.DB) *GORMMovieRepository {
	return &GORMMovieRepository{
		db: db,
	}
}

// GetAll retrieves all movies from the database.
func (r *GORMMovieRepository) GetAll() ([]models.Movie, error) {
	movies := make([]models.Movie, 0)
	if err := r.db.Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to get all movies: %w", err)
	}
	return movies, nil
}

// GetByID retrieves a single movie by its ID from the database.
func (r *GORMMovieRepository) GetByID(id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("movie with ID %d: %w", id, ErrMovieNotFound)
		}
		return nil, fmt.Errorf("failed to get movie by ID %d: %w", id, err)
	}
	return &movie, nil
}

// Create inserts a new movie. The duplicate-title check is the unique index
// on the title column, so two concurrent creates with the same title cannot
// both succeed.
func (r *GORMMovieRepository) Create(movie *models.Movie) error {
	if err := r.db.Create(movie).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("title %q: %w", movie.Title, ErrDuplicateTitle)
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// Update replaces all mutable fields of the movie with the given ID in a
// single UPDATE statement. Zero affected rows means the ID does not exist.
func (r *GORMMovieRepository) Update(movie *models.Movie) error {
	res := r.db.Model(&models.Movie{}).Where("id = ?", movie.ID).Updates(map[string]interface{}{
		"title":    movie.Title,
		"genre":    movie.Genre,
		"sinopsis": movie.Sinopsis,
		"language": movie.Language,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("title %q: %w", movie.Title, ErrDuplicateTitle)
		}
		return fmt.Errorf("failed to update movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("movie with ID %d: %w", movie.ID, ErrMovieNotFound)
	}
	return nil
}

// Delete removes the movie with the given ID. The existence check and the
// delete are the same statement, checked through RowsAffected.
func (r *GORMMovieRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Movie{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("movie with ID %d: %w", id, ErrMovieNotFound)
	}
	return nil
}
