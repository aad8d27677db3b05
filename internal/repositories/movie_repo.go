package repositories

import (
	"katalog/internal/models"
)

// MovieRepository defines the interface for movie data access.
type MovieRepository interface {
	GetAll() ([]models.Movie, error)
	GetByID(id uint) (*models.Movie, error)
	Create(movie *models.Movie) error
	Update(movie *models.Movie) error
	Delete(id uint) error
}
