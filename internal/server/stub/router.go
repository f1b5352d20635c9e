package stub

import (
	"github.com/gin-gonic/gin"

	"github.com/patiparn/rodchao/internal/logging"
)

// NewRouter assembles the fixture backend's gin engine.
func NewRouter(store *Store, log logging.Logger, requestsPerMinute, burst int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RateLimit(requestsPerMinute, burst))

	h := NewHandler(store, log)

	api := r.Group("/api")
	{
		api.GET("/get-user-cars", h.GetUserCars)
		api.DELETE("/delete-car/:id", h.DeleteCar)
		api.POST("/verify-password", h.VerifyPassword)
		api.POST("/change-password", h.ChangePassword)
	}

	return r
}
