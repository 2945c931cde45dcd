package router

import (
	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/container"
	pginfra "github.com/oksasatya/go-blog-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup after the container is
// populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	postRepo := pginfra.NewPostRepository(container.GetPGPool())

	authSvc := application.NewAuthService(
		userRepo,
		container.GetTokenManager(),
		container.GetLogger(),
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)
	postSvc := application.NewPostService(
		postRepo,
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetES(),
		cfg.ESPostsIndex,
		container.GetLogger(),
	)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, container.GetLogger())))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(authSvc, container.GetLogger()), authSvc))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, container.GetLogger()), authSvc))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
