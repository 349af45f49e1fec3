package app

import (
	"github.com/MasteriNeuron/ToDo-List-Project/internal/auth"
	"github.com/MasteriNeuron/ToDo-List-Project/internal/config"
	"github.com/MasteriNeuron/ToDo-List-Project/internal/handlers"
	"github.com/MasteriNeuron/ToDo-List-Project/internal/repo"
	"github.com/MasteriNeuron/ToDo-List-Project/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup builds the services over the given pool and registers all routes.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool) {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL.Duration())
	hasher := auth.NewHasher()

	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo, hasher)
	authHandler := handlers.NewAuthHandler(userSvc, tokens)

	taskRepo := repo.NewPGTaskRepo(db)
	taskSvc := service.NewTaskService(taskRepo)
	taskHandler := handlers.NewTaskHandler(taskSvc)

	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	Register(r, tokens, authHandler, taskHandler)
}

// Register wires the API routes. Split out from Setup so tests can mount the
// same routing over fake repositories.
func Register(r *gin.Engine, tokens *auth.TokenManager, authHandler *handlers.AuthHandler, taskHandler *handlers.TaskHandler) {
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	protected := r.Group("", auth.RequireToken(tokens))
	protected.POST("/logout", authHandler.Logout)
	protected.POST("/tasks", taskHandler.Create)
	protected.GET("/tasks", taskHandler.List)
	protected.GET("/tasks/:id", taskHandler.GetByID)
	protected.PUT("/tasks/:id", taskHandler.Update)
	protected.DELETE("/tasks/:id", taskHandler.Delete)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "ToDo API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"message": "swagger doc unavailable"})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
