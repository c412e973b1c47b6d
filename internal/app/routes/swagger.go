package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/yigit/mentorly/internal/middleware"

	_ "github.com/yigit/mentorly/docs" // registers the swagger document
)

// SetupSwagger configures Swagger documentation routes
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// SetupMetrics exposes Prometheus metrics
func SetupMetrics(router *gin.Engine, metrics *middleware.Metrics) {
	router.GET("/metrics", metrics.Handler())
}
