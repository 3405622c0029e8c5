// internal/api/routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stockmaster-api-server/config"
	"stockmaster-api-server/internal/api/handlers"
	"stockmaster-api-server/internal/service"
	"stockmaster-api-server/internal/socket"
)

// SetupRouter wires the handlers onto the REST surface the dashboard
// frontend consumes.
func SetupRouter(svc *service.ItemService, hub *socket.Hub, cfg config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins(),
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	itemHandler := &handlers.ItemHandler{Service: svc}
	statsHandler := &handlers.StatsHandler{Service: svc}
	webSocketHandler := &handlers.WebSocketHandler{Hub: hub}

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		items := api.Group("/items")
		{
			items.GET("", itemHandler.ListItems)
			items.POST("", itemHandler.CreateItem)

			// Fixed paths before the :id routes.
			items.POST("/seed", itemHandler.SeedItems)
			items.GET("/stats", statsHandler.GetStats)
			items.GET("/ws", webSocketHandler.ServeWs)

			items.PUT("/:id", itemHandler.UpdateItem)
			items.DELETE("/:id", itemHandler.DeleteItem)
		}
	}

	return router
}
