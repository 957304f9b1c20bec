package main

import (
	"os"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/lumina-arg/lumina_api/middleware"
	"github.com/lumina-arg/lumina_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file found, using system environment")
	}

	var sqlSvc context.Service
	if os.Getenv("DB_DRIVER") == "postgres" {
		sqlSvc = &services.PostgresService{}
	} else {
		sqlSvc = &services.SqliteService{}
	}

	ctx, err := context.NewCtx(
		sqlSvc,
		&services.RedisService{},
		&services.JWTService{},
		&services.SessionService{},
		&services.ChatService{},
		&services.UnlockService{},
		&services.AuthService{},
		&services.PhotoActionService{},
		&services.ColorService{},
		&services.UserService{},
		&services.AdminService{},
		&services.RateLimitService{},
		&middleware.AuthMiddleware{},
		&middleware.RateLimitMiddleware{},
		&services.MonitoringService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
