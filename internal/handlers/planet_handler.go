// cosmos-crm/internal/handlers/planet_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cosmos-crm/models"
)

// PlanetHandler encapsulates dependencies such as the database handle.
type PlanetHandler struct {
	DB *gorm.DB
}

// NewPlanetHandler creates a new PlanetHandler instance.
func NewPlanetHandler(db *gorm.DB) *PlanetHandler {
	return &PlanetHandler{DB: db}
}

// PlanetResponse is the full declared projection of a planet.
type PlanetResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	DistanceFromEarth int    `json:"distance_from_earth"`
	NearestStar       string `json:"nearest_star"`
}

func newPlanetResponse(p models.Planet) PlanetResponse {
	return PlanetResponse{
		ID:                p.ID,
		Name:              p.Name,
		DistanceFromEarth: p.DistanceFromEarth,
		NearestStar:       p.NearestStar,
	}
}

// List returns every planet. Planets are read-only through the API.
func (h *PlanetHandler) List(c *gin.Context) {
	var planets []models.Planet
	if err := h.DB.Find(&planets).Error; err != nil {
		slog.Error("Failed to list planets", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	response := make([]PlanetResponse, 0, len(planets))
	for _, p := range planets {
		response = append(response, newPlanetResponse(p))
	}
	c.JSON(http.StatusOK, response)
}
