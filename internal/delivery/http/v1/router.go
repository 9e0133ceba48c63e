package v1

import (
	"go-caduae-backend/config"
	"go-caduae-backend/internal/delivery/http/middleware"
	"go-caduae-backend/internal/delivery/http/response"
	"go-caduae-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SubmissionUC domain.SubmissionUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		// Recovered panics still answer with the structured envelope.
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
		c.Abort()
	}))
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational")
	})

	// Public routes
	root := r.Group("")
	NewSubmitHandler(root, deps.SubmissionUC) // Website forms (no auth required)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
