package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/cnic-auth/backend/internal/interface/http"
	"github.com/cnic-auth/backend/internal/interface/middleware"
	"github.com/cnic-auth/backend/pkg/helpers"
)

// Module wires account HTTP handlers and JWT middleware into routes.
// Public: POST /api/register, POST /api/login, POST /api/token/refresh
// Protected: POST /api/logout, GET /api/profile

type Module struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func New(h *handlers.UserHandler, jwt *helpers.JWTManager) *Module {
	return &Module{Handler: h, JWT: jwt}
}

func (m *Module) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	rg.POST("/token/refresh", m.Handler.Refresh)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
	}
}
