package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/domain"
	"taskboard/internal/middleware"
	"taskboard/internal/modules/auth"
	"taskboard/internal/modules/board"
	"taskboard/internal/modules/status"
	"taskboard/internal/modules/tag"
	"taskboard/internal/modules/task"
	"taskboard/internal/pkg/token"
	"taskboard/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.RefreshToken{},
		&domain.Status{},
		&domain.Tag{},
		&domain.Task{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	tagRepo := repository.NewTagRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	codec := token.NewCodec(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	cookies := auth.NewCookieWriter(cfg.CookieSecure, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authService := auth.NewService(userRepo, refreshRepo, codec)
	authHandler := auth.NewHandler(authService, cookies)

	hub := board.NewHub()
	boardHandler := board.NewHandler(hub)

	taskService := task.NewService(taskRepo, statusRepo, tagRepo, hub)
	taskHandler := task.NewHandler(taskService)

	statusService := status.NewService(statusRepo, taskRepo, hub)
	statusHandler := status.NewHandler(statusService)

	tagService := tag.NewService(tagRepo, hub)
	tagHandler := tag.NewHandler(tagService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api, middleware.CronAuth(cfg.CronSecret))

		protected := api.Group("/")
		protected.Use(middleware.RequireAuth(codec.Verifier))
		{
			taskHandler.RegisterRoutes(protected)
			statusHandler.RegisterRoutes(protected)
			tagHandler.RegisterRoutes(protected)
			boardHandler.RegisterRoutes(protected)
		}
	}

	// App-shell pages sit behind the gate; it refreshes expired sessions
	// inline via the service's own refresh endpoint.
	gate := middleware.NewGate(codec.Verifier, middleware.NewHTTPRefresher("http://127.0.0.1:"+cfg.Port))
	registerPages(r, gate)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func registerPages(r *gin.Engine, gate *middleware.Gate) {
	shell := func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(shellHTML))
	}
	loginPage := func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginHTML))
	}

	guard := gate.Handler()
	r.GET("/", guard, shell)
	r.GET("/board", guard, shell)
	r.GET("/task/:id", guard, shell)

	r.GET("/auth/login", loginPage)
	r.GET("/auth/register", loginPage)
}

const shellHTML = `<!doctype html>
<html><head><meta charset="utf-8"><title>taskboard</title></head>
<body><div id="root"></div><script src="/assets/app.js"></script></body></html>`

const loginHTML = `<!doctype html>
<html><head><meta charset="utf-8"><title>Sign in | taskboard</title></head>
<body><div id="root" data-page="auth"></div><script src="/assets/app.js"></script></body></html>`
