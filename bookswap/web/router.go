package web

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// ServerConfig is the [server] block of the config file.
type ServerConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	AllowOrigins string `toml:"allow_origins"`
}

// NewServer builds the fiber app with the standard middleware stack and all
// routes registered.
func NewServer(app *WebApp, cfg ServerConfig) *fiber.App {
	server := fiber.New(fiber.Config{
		AppName:      "BookSwap Ranking API",
		ServerHeader: "BookSwap",
		ErrorHandler: errorHandler,
	})

	server.Use(recover.New())
	server.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	origins := cfg.AllowOrigins
	if origins == "" {
		origins = "http://localhost:3000"
	}
	server.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	server.Use(requestLogger())

	setupRoutes(server, app)
	return server
}

func setupRoutes(server *fiber.App, app *WebApp) {
	server.Get("/health", HealthCheck(app))

	api := server.Group("/api")

	rankings := api.Group("/rankings")
	rankings.Get("/leaderboard", GetLeaderboard(app))
	rankings.Post("/refresh-all", RefreshAll(app))
	rankings.Post("/recalculate", Recalculate(app))
	rankings.Post("/decay", ApplyDecay(app))
	rankings.Post("/reset-weekly", ResetWeekly(app))
	rankings.Get("/:userID", GetRanking(app))
	rankings.Get("/:userID/progress", GetTierProgress(app))
	rankings.Get("/:userID/compare/:otherID", CompareRankings(app))
	rankings.Post("/:userID/refresh", RefreshUser(app))
	rankings.Post("/:userID/events/exchange", RecordExchangeEvent(app))
	rankings.Post("/:userID/events/review", RecordReviewEvent(app))
	rankings.Post("/:userID/events/activity", RecordActivityPing(app))

	matches := api.Group("/matches")
	matches.Get("/:userID/offers", FindOffers(app))

	api.Get("/books/:bookID/interested", FindInterestedUsers(app))

	users := api.Group("/users")
	users.Get("/:userID/achievements", GetAchievements(app))
	users.Post("/:userID/achievements/check", CheckAchievements(app))

	server.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "the requested endpoint does not exist",
		})
	})
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("Request failed",
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Any("error", err))
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		slog.Info("Request",
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("took", time.Since(start)))
		return err
	}
}
