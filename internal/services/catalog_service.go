package services

import (
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"
)

// CatalogService handles business logic for the movie catalog.
type CatalogService struct {
	repo     repositories.MovieRepository
	mqClient *rabbitmq.Client
}

// NewCatalogService creates a new CatalogService. The MQ client may be nil,
// in which case catalog events are skipped.
func NewCatalogService(repo repositories.MovieRepository, mqClient *rabbitmq.Client) *CatalogService {
	return &CatalogService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllMovies retrieves all movies in the catalog.
func (s *CatalogService) GetAllMovies() ([]models.Movie, error) {
	return s.repo.GetAll()
}

// GetMovieByID retrieves a single movie by its ID.
func (s *CatalogService) GetMovieByID(id uint) (*models.Movie, error) {
	return s.repo.GetByID(id)
}

// CreateMovie inserts a new movie and publishes a created event.
func (s *CatalogService) CreateMovie(movie *models.Movie) error {
	if err := s.repo.Create(movie); err != nil {
		return err
	}
	s.publishEvent(rabbitmq.EventMovieCreated, *movie)
	return nil
}

// UpdateMovie replaces an existing movie and publishes an updated event.
func (s *CatalogService) UpdateMovie(movie *models.Movie) error {
	if err := s.repo.Update(movie); err != nil {
		return err
	}
	s.publishEvent(rabbitmq.EventMovieUpdated, *movie)
	return nil
}

// DeleteMovie removes a movie by its ID and publishes a deleted event.
func (s *CatalogService) DeleteMovie(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvent(rabbitmq.EventMovieDeleted, models.Movie{ID: id})
	return nil
}

// publishEvent sends a catalog event if an MQ client is configured. Event
// publication is best-effort: failures are logged and never fail the
// originating request.
func (s *CatalogService) publishEvent(kind string, movie models.Movie) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishCatalogEvent(kind, movie); err != nil {
		log.Printf("Warning: failed to publish %s event for movie %d: %v", kind, movie.ID, err)
	}
}
