package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	docs "github.com/lumina-arg/lumina_api/docs"
	"github.com/lumina-arg/lumina_api/services/handlers"
	"github.com/lumina-arg/lumina_api/shared"
)

// AuthGuard and RateLimitGuard are satisfied by the middleware package.
// Resolving them by service id keeps the route table here without a
// package cycle.
type AuthGuard interface {
	RequiredAuth() fiber.Handler
	AdminAuth() fiber.Handler
}

type RateLimitGuard interface {
	Limit(endpointType string) fiber.Handler
}

const (
	authMiddlewareID      = "auth"
	rateLimitMiddlewareID = "rate_limit"
)

type HttpService struct {
	context.DefaultService

	authMw  AuthGuard
	rateMw  RateLimitGuard
	monitor *MonitoringService

	authHandler   *handlers.AuthHandler
	chatHandler   *handlers.ChatHandler
	photoHandler  *handlers.PhotoActionHandler
	unlockHandler *handlers.UnlockHandler
	colorHandler  *handlers.ColorHandler
	userHandler   *handlers.UserHandler
	adminHandler  *handlers.AdminHandler

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authMw = svc.Service(authMiddlewareID).(AuthGuard)
	svc.rateMw = svc.Service(rateLimitMiddlewareID).(RateLimitGuard)
	svc.monitor = svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.authHandler = handlers.NewAuthHandler(svc.Service(AUTH_SVC).(*AuthService))
	svc.chatHandler = handlers.NewChatHandler(svc.Service(CHAT_SVC).(*ChatService))
	svc.photoHandler = handlers.NewPhotoActionHandler(svc.Service(PHOTO_ACTION_SVC).(*PhotoActionService))
	svc.unlockHandler = handlers.NewUnlockHandler(svc.Service(UNLOCK_SVC).(*UnlockService))
	svc.colorHandler = handlers.NewColorHandler(svc.Service(COLOR_SVC).(*ColorService))
	svc.userHandler = handlers.NewUserHandler(svc.Service(USER_SVC).(*UserService))
	svc.adminHandler = handlers.NewAdminHandler(svc.Service(ADMIN_SVC).(*AdminService))

	app := fiber.New(fiber.Config{
		AppName:      SERVICE_NAME,
		JSONEncoder:  shared.JSONEncoder,
		JSONDecoder:  shared.JSONDecoder,
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitor))

	docs.SwaggerInfo.BasePath = ""
	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError("Not found")
	})

	svc.server = app
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", svc.rateMw.Limit("register"), svc.authHandler.Register)
	auth.Post("/login", svc.rateMw.Limit("login"), svc.authHandler.Login)
	auth.Post("/logout", svc.authHandler.Logout)

	chat := api.Group("/chat", svc.authMw.RequiredAuth())
	chat.Get("/contacts", svc.chatHandler.GetContacts)
	chat.Post("/contacts", svc.chatHandler.CreateContact)
	chat.Get("/messages", svc.chatHandler.GetMessages)
	chat.Post("/messages", svc.chatHandler.CreateMessage)
	chat.Delete("/messages", svc.chatHandler.DeleteMessages)

	photo := api.Group("/photo-actions", svc.authMw.RequiredAuth())
	photo.Get("/", svc.photoHandler.List)
	photo.Post("/", svc.photoHandler.Create)
	photo.Post("/:action/done", svc.photoHandler.Complete)
	photo.Delete("/", svc.photoHandler.Delete)

	unlock := api.Group("/unlock-apps", svc.authMw.RequiredAuth())
	unlock.Get("/", svc.unlockHandler.Get)
	unlock.Patch("/", svc.unlockHandler.Update)

	api.Get("/users", svc.userHandler.GetUsers)
	api.Post("/users", svc.userHandler.CreateUser)
	api.Get("/messages", svc.userHandler.GetBoardMessages)
	api.Post("/messages", svc.userHandler.CreateBoardMessage)
	api.Delete("/messages/:id", svc.userHandler.DeleteBoardMessage)

	colors := api.Group("/colors")
	colors.Get("/", svc.colorHandler.List)
	colors.Get("/search", svc.colorHandler.Search)
	colors.Get("/:id", svc.colorHandler.Get)
	colors.Post("/", svc.colorHandler.Create)
	colors.Put("/:id", svc.colorHandler.Update)
	colors.Delete("/:id", svc.colorHandler.Delete)

	admin := api.Group("/admin")
	admin.Post("/login", svc.rateMw.Limit("admin_login"), svc.adminHandler.Login)

	console := admin.Group("/", svc.authMw.AdminAuth())
	console.Get("/tables", svc.adminHandler.ListTables)
	console.Get("/tables/:name", svc.adminHandler.BrowseTable)
	console.Post("/sql", svc.adminHandler.ExecSQL)
	console.Post("/rows", svc.adminHandler.InsertRow)
	console.Put("/rows", svc.adminHandler.UpdateRow)
	console.Delete("/rows", svc.adminHandler.DeleteRow)
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {string} string
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")
	return c.Status(fiber.StatusOK).SendString("pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			log.Error().Err(appErr.Err).Str("path", c.Path()).Msg("Request failed")
		}
		return shared.ResponseError(c, appErr.StatusCode, appErr.Message)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseError(c, fiberErr.Code, fiberErr.Message)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
	return shared.ResponseError(c, fiber.StatusInternalServerError, "Internal server error")
}
