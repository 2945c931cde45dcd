package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/container"
	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
)

// PostModule wires the protected post endpoints. Reads are open to any
// authenticated user; mutations go through the ownership check in the
// service layer.

type PostModule struct {
	Handler *handlers.PostHandler
	Auth    *application.AuthService
}

func NewPostModule(h *handlers.PostHandler, auth *application.AuthService) *PostModule {
	return &PostModule{Handler: h, Auth: auth}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.Use(middleware.Auth(m.Auth))
	posts.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		posts.GET("", m.Handler.List)
		posts.GET("/search", m.Handler.Search)
		posts.GET("/:id", m.Handler.Get)
		posts.POST("", m.Handler.Create)
		posts.PUT("/:id", m.Handler.Update)
		posts.DELETE("/:id", m.Handler.Delete)
		posts.POST("/:id/cover", m.Handler.UploadCover)
	}
}
