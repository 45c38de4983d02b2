package testutils

import (
	"github.com/clockwisehq/workforce-go/events"
	"github.com/clockwisehq/workforce-go/handlers"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/routes"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter() (*gin.Engine, *repositories.Repos) {
	gin.SetMode(gin.TestMode)

	hub := events.NewHub()
	repos := repositories.New()
	svc := services.New(repos, zap.NewNop(), hub)
	h := handlers.New(svc, hub)

	r := gin.New()
	routes.RegisterRoutes(r, h, repos)
	return r, repos
}
