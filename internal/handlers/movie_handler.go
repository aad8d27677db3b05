package handlers

import (
	"errors"
	"fmt"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service *services.CatalogService) *MovieHandler {
	return &MovieHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the movie routes with the Fiber app.
func (h *MovieHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/movie", h.HandleGetMovies)
	router.Post("/movie", h.HandleCreateMovie)
	router.Put("/movie/:id", h.HandleUpdateMovie)
	router.Delete("/movie/:id", h.HandleDeleteMovie)
}

// HandleGetMovies returns the full catalog.
func (h *MovieHandler) HandleGetMovies(c *fiber.Ctx) error {
	movies, err := h.service.GetAllMovies()
	if err != nil {
		log.Printf("Error getting all movies: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not retrieve movies",
		})
	}
	return c.JSON(movies)
}

// HandleCreateMovie creates a new catalog entry.
func (h *MovieHandler) HandleCreateMovie(c *fiber.Ctx) error {
	var movie models.Movie
	if err := c.BodyParser(&movie); err != nil {
		log.Printf("Error parsing create movie request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	// The ID is generated by the store; never trust one from the client.
	movie.ID = 0

	if err := h.validate.Struct(movie); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	}

	if err := h.service.CreateMovie(&movie); err != nil {
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "title already exists",
			})
		}
		log.Printf("Error creating movie: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not create movie",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(movie)
}

// HandleUpdateMovie replaces all fields of an existing catalog entry.
func (h *MovieHandler) HandleUpdateMovie(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid movie id",
		})
	}

	var movie models.Movie
	if err := c.BodyParser(&movie); err != nil {
		log.Printf("Error parsing update movie request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	movie.ID = uint(id)

	if err := h.validate.Struct(movie); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	}

	if err := h.service.UpdateMovie(&movie); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMovieNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "movie not found",
			})
		case errors.Is(err, repositories.ErrDuplicateTitle):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "title already exists",
			})
		default:
			log.Printf("Error updating movie %d: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "could not update movie",
			})
		}
	}

	return c.JSON(movie)
}

// HandleDeleteMovie removes a catalog entry by its ID.
func (h *MovieHandler) HandleDeleteMovie(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid movie id",
		})
	}

	if err := h.service.DeleteMovie(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "movie not found",
			})
		}
		log.Printf("Error deleting movie %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not delete movie",
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("movie with ID %d deleted", id),
	})
}
