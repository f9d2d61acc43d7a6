package api

import (
	"Credo/internal/api/middleware"
	"Credo/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Locale & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.LocaleMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		publicationGroup := apiGroup.Group("/publications")
		{
			authOptGroup := publicationGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PublicationHandler.SelectPublications)
			}

			authGroup := publicationGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PublicationHandler.CreatePublication)
				authGroup.POST("/:publication_id/vote", group.VoteHandler.CastVote)
			}
		}

		metricsGroup := apiGroup.Group("/metrics")
		{
			metricsGroup.Use(middleware.AuthMiddleware())
			{
				metricsGroup.GET("/publication/7d/:publication_id", group.PublicationMetricHandler.GetMetrics7Days)
			}
		}
	}

	return r
}
