// cosmos-crm/internal/handlers/scientist_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cosmos-crm/models"
)

// ScientistHandler encapsulates dependencies such as the database handle.
type ScientistHandler struct {
	DB *gorm.DB
}

// NewScientistHandler creates a new ScientistHandler instance.
func NewScientistHandler(db *gorm.DB) *ScientistHandler {
	return &ScientistHandler{DB: db}
}

// --- Input and response structures for SCIENTISTS ---

type ScientistInput struct {
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

// ScientistUpdateInput distinguishes absent fields from empty ones so a
// PATCH only touches what the payload carries.
type ScientistUpdateInput struct {
	Name         *string `json:"name"`
	FieldOfStudy *string `json:"field_of_study"`
}

// ScientistResponse is the three-field projection used by the list, create
// and update endpoints; missions are deliberately excluded to bound the
// payload size.
type ScientistResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

// ScientistDetailResponse additionally carries the mission list, so a client
// can reach a scientist's visited planets transitively.
type ScientistDetailResponse struct {
	ID           uint              `json:"id"`
	Name         string            `json:"name"`
	FieldOfStudy string            `json:"field_of_study"`
	Missions     []MissionResponse `json:"missions"`
}

func newScientistResponse(s models.Scientist) ScientistResponse {
	return ScientistResponse{ID: s.ID, Name: s.Name, FieldOfStudy: s.FieldOfStudy}
}

// --- Handlers for SCIENTISTS ---

// List returns every scientist in the three-field projection.
func (h *ScientistHandler) List(c *gin.Context) {
	var scientists []models.Scientist
	if err := h.DB.Find(&scientists).Error; err != nil {
		slog.Error("Failed to list scientists", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	response := make([]ScientistResponse, 0, len(scientists))
	for _, s := range scientists {
		response = append(response, newScientistResponse(s))
	}
	c.JSON(http.StatusOK, response)
}

// Create validates and persists a new scientist.
func (h *ScientistHandler) Create(c *gin.Context) {
	var input ScientistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"validation errors"}})
		return
	}

	scientist := models.Scientist{Name: input.Name, FieldOfStudy: input.FieldOfStudy}
	if err := scientist.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationMessages(err)})
		return
	}

	if err := h.DB.Create(&scientist).Error; err != nil {
		slog.Error("Failed to create scientist", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	c.JSON(http.StatusCreated, newScientistResponse(scientist))
}

// Get returns one scientist by id, expanded with its missions and their
// planets.
func (h *ScientistHandler) Get(c *gin.Context) {
	var scientist models.Scientist
	err := h.DB.Preload("Missions.Planet").First(&scientist, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scientist not found"})
		return
	}
	if err != nil {
		slog.Error("Failed to fetch scientist", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	missions := make([]MissionResponse, 0, len(scientist.Missions))
	for _, m := range scientist.Missions {
		missions = append(missions, newMissionResponse(m))
	}
	c.JSON(http.StatusOK, ScientistDetailResponse{
		ID:           scientist.ID,
		Name:         scientist.Name,
		FieldOfStudy: scientist.FieldOfStudy,
		Missions:     missions,
	})
}

// Update applies a partial update. The merged candidate is validated before
// anything is written, so a bad payload leaves every field untouched.
func (h *ScientistHandler) Update(c *gin.Context) {
	var scientist models.Scientist
	err := h.DB.First(&scientist, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scientist not found"})
		return
	}
	if err != nil {
		slog.Error("Failed to fetch scientist", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	var input ScientistUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"validation errors"}})
		return
	}

	candidate := scientist
	if input.Name != nil {
		candidate.Name = *input.Name
	}
	if input.FieldOfStudy != nil {
		candidate.FieldOfStudy = *input.FieldOfStudy
	}
	if err := candidate.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationMessages(err)})
		return
	}

	if err := h.DB.Save(&candidate).Error; err != nil {
		slog.Error("Failed to update scientist", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	c.JSON(http.StatusAccepted, newScientistResponse(candidate))
}

// Delete removes a scientist and all of its missions in one transaction.
func (h *ScientistHandler) Delete(c *gin.Context) {
	var scientist models.Scientist
	err := h.DB.First(&scientist, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scientist not found"})
		return
	}
	if err != nil {
		slog.Error("Failed to fetch scientist", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("scientist_id = ?", scientist.ID).Delete(&models.Mission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&scientist).Error
	})
	if err != nil {
		slog.Error("Failed to delete scientist", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Scientist successfully deleted."})
}
