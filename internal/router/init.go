package router

import (
	"github.com/cnic-auth/backend/internal/application"
	"github.com/cnic-auth/backend/internal/container"
	pginfra "github.com/cnic-auth/backend/internal/infrastructure/postgres"
	"github.com/cnic-auth/backend/internal/infrastructure/redisdb"
	handlers "github.com/cnic-auth/backend/internal/interface/http"
	usermodule "github.com/cnic-auth/backend/internal/router/modules"
)

func buildUserModule() *usermodule.Module {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	blacklist := redisdb.NewTokenBlacklist(container.GetRedis())

	registration := application.NewRegistrationService(
		repo,
		container.GetRabbitPub(),
		container.GetLogger(),
		container.GetConfig().MailSendEnabled,
	)
	auth := application.NewAuthService(
		repo,
		blacklist,
		container.GetJWT(),
		container.GetLogger(),
	)

	handler := handlers.NewUserHandler(registration, auth, container.GetLogger())
	return usermodule.New(handler, container.GetJWT())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildUserModule())
}
