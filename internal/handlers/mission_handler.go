// cosmos-crm/internal/handlers/mission_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cosmos-crm/models"
)

// MissionHandler encapsulates dependencies such as the database handle.
type MissionHandler struct {
	DB *gorm.DB
}

// NewMissionHandler creates a new MissionHandler instance.
func NewMissionHandler(db *gorm.DB) *MissionHandler {
	return &MissionHandler{DB: db}
}

// --- Input and response structures for MISSIONS ---

type MissionInput struct {
	Name        string `json:"name"`
	ScientistID uint   `json:"scientist_id"`
	PlanetID    uint   `json:"planet_id"`
}

// MissionResponse is the mission's default projection, used inside the
// scientist detail view.
type MissionResponse struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Planet *PlanetResponse `json:"planet"`
}

// MissionCreatedResponse is returned on create: both nested records plus
// the raw foreign keys.
type MissionCreatedResponse struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Planet      *PlanetResponse    `json:"planet"`
	ScientistID uint               `json:"scientist_id"`
	PlanetID    uint               `json:"planet_id"`
	Scientist   *ScientistResponse `json:"scientist"`
}

func newMissionResponse(m models.Mission) MissionResponse {
	response := MissionResponse{ID: m.ID, Name: m.Name}
	if m.Planet != nil {
		planet := newPlanetResponse(*m.Planet)
		response.Planet = &planet
	}
	return response
}

// --- Handlers for MISSIONS ---

// Create validates and persists a new mission. Field violations are a 400;
// a scientist_id or planet_id that resolves to no record is a 404.
func (h *MissionHandler) Create(c *gin.Context) {
	var input MissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"validation errors"}})
		return
	}

	mission := models.Mission{
		Name:        input.Name,
		ScientistID: input.ScientistID,
		PlanetID:    input.PlanetID,
	}
	if err := mission.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationMessages(err)})
		return
	}

	var scientist models.Scientist
	if err := h.DB.First(&scientist, input.ScientistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"errors": []string{"Scientist not found"}})
			return
		}
		slog.Error("Failed to fetch scientist", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	var planet models.Planet
	if err := h.DB.First(&planet, input.PlanetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"errors": []string{"Planet not found"}})
			return
		}
		slog.Error("Failed to fetch planet", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	if err := h.DB.Create(&mission).Error; err != nil {
		slog.Error("Failed to create mission", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	planetResponse := newPlanetResponse(planet)
	scientistResponse := newScientistResponse(scientist)
	c.JSON(http.StatusCreated, MissionCreatedResponse{
		ID:          mission.ID,
		Name:        mission.Name,
		Planet:      &planetResponse,
		ScientistID: mission.ScientistID,
		PlanetID:    mission.PlanetID,
		Scientist:   &scientistResponse,
	})
}
