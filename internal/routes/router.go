// cosmos-crm/internal/routes/router.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cosmos-crm/internal/handlers"
)

// NewRouter builds the Gin engine with every resource route registered
// against the given database handle.
func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "")
	})

	scientistHandler := handlers.NewScientistHandler(db)
	scientists := r.Group("/scientists")
	{
		scientists.GET("", scientistHandler.List)
		scientists.POST("", scientistHandler.Create)
		scientists.GET("/:id", scientistHandler.Get)
		scientists.PATCH("/:id", scientistHandler.Update)
		scientists.DELETE("/:id", scientistHandler.Delete)
	}

	planetHandler := handlers.NewPlanetHandler(db)
	r.GET("/planets", planetHandler.List)

	missionHandler := handlers.NewMissionHandler(db)
	r.POST("/missions", missionHandler.Create)

	return r
}
