// Package routes wires the handlers into the gin engine.
package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	"obeserver/docs"
	assessmenthandler "obeserver/internal/api/handlers/assessment"
	finalresulthandler "obeserver/internal/api/handlers/finalresult"
	peohandler "obeserver/internal/api/handlers/peo"
	predictionhandler "obeserver/internal/api/handlers/prediction"
	"obeserver/server/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Assessment  *assessmenthandler.Handler
	FinalResult *finalresulthandler.Handler
	PEO         *peohandler.Handler
	Prediction  *predictionhandler.Handler

	// UploadLimiter throttles the spreadsheet-upload and model routes.
	UploadLimiter *rate.Limiter
}

// NewRouter builds the gin engine with the full middleware chain and all
// API routes registered.
func NewRouter(h Handlers) *gin.Engine {
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())

	registerSwaggerRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limit := middleware.GinRateLimitMiddleware(h.UploadLimiter)

	api := router.Group("/api")
	{
		uploadAPI := api.Group("/upload")
		{
			uploadAPI.POST("/indirect", limit, h.Assessment.UploadIndirect)
			uploadAPI.POST("/direct", limit, h.Assessment.UploadDirect)
			uploadAPI.POST("/complete", h.Assessment.Complete)
			uploadAPI.POST("/save", h.Assessment.Save)
			uploadAPI.GET("", h.Assessment.List)
			uploadAPI.GET("/count", h.Assessment.Count)
			uploadAPI.GET("/:id", h.Assessment.Get)
			uploadAPI.DELETE("/:id", h.Assessment.Delete)
		}

		finalResultAPI := api.Group("/final-result")
		{
			finalResultAPI.POST("/upload-failure", limit, h.FinalResult.UploadFailure)
			finalResultAPI.POST("/upload-nonplo", limit, h.FinalResult.UploadScores)
			finalResultAPI.POST("/calculate", h.FinalResult.Calculate)
			finalResultAPI.GET("", h.FinalResult.List)
			finalResultAPI.GET("/count", h.FinalResult.Count)
			finalResultAPI.GET("/:id", h.FinalResult.Get)
			finalResultAPI.DELETE("/:id", h.FinalResult.Delete)
		}

		peoAPI := api.Group("/peo")
		{
			peoAPI.POST("/upload", limit, h.PEO.Upload)
			peoAPI.GET("", h.PEO.List)
			peoAPI.GET("/count", h.PEO.Count)
			peoAPI.GET("/:id", h.PEO.Get)
			peoAPI.DELETE("/:id", h.PEO.Delete)
		}

		mlAPI := api.Group("/ml")
		{
			mlAPI.POST("/predict", limit, h.Prediction.Predict)
			mlAPI.POST("/predict-bulk", limit, h.Prediction.PredictBulk)
		}
	}

	return router
}

func registerSwaggerRoutes(router *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}
