package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/blog-backend/docs"
	"github.com/rafabene/blog-backend/internal/domain/ports"
	"github.com/rafabene/blog-backend/internal/handlers/dto"
	"github.com/rafabene/blog-backend/internal/handlers/middleware"
	"github.com/rafabene/blog-backend/internal/infrastructure/config"
	"github.com/rafabene/blog-backend/internal/infrastructure/i18n"
)

// RouterDeps agrupa o que o roteador precisa
type RouterDeps struct {
	Config         *config.Config
	Logger         ports.Logger
	I18n           *i18n.Service
	AccountHandler *AccountHandler
	PostHandler    *PostHandler
}

// NewRouter monta o engine Gin com middlewares e rotas da API
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	dto.UseJSONFieldNames()

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
	)

	// Base URL para os tipos RFC 7807
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	router.Use(middleware.NewI18nMiddleware(deps.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.CORS.Origins()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.POST("/register", deps.AccountHandler.Register)
		api.POST("/login", deps.AccountHandler.Login)

		users := api.Group("/users")
		{
			users.GET("/:id", deps.AccountHandler.GetUser)
			users.PUT("/:id", deps.AccountHandler.UpdateUser)
			users.GET("/:id/posts", deps.PostHandler.ListPostsByUser)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", deps.PostHandler.ListPosts)
			posts.POST("", deps.PostHandler.CreatePost)
			posts.GET("/:id", deps.PostHandler.GetPost)
			posts.PUT("/:id", deps.PostHandler.UpdatePost)
			posts.DELETE("/:id", deps.PostHandler.DeletePost)
		}
	}

	return router
}
