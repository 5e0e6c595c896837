package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"tronexcars/internal/config"
	"tronexcars/internal/http/handlers"
	applog "tronexcars/internal/log"
	"tronexcars/internal/repos"
	"tronexcars/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Admin auth wiring (shared secret, session cookie)
	authSvc, err := services.NewAuthService(repos.NewSessionRepo(db), cfg.AdminPassword)
	if err != nil {
		log.Fatal(err)
	}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false, "message": "Internal server error",
				})
			}
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
	}))

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- Pages ----------
	app.Get("/", func(c *fiber.Ctx) error { return c.Render("index", fiber.Map{}) })
	app.Get("/stock-list", func(c *fiber.Ctx) error { return c.Render("stock_list", fiber.Map{}) })
	app.Get("/admin-login", func(c *fiber.Ctx) error { return c.Render("admin_login", fiber.Map{}) })
	app.Get("/admin", func(c *fiber.Ctx) error { return c.Redirect("/admin-login") })
	app.Get("/admin-dashboard", func(c *fiber.Ctx) error { return c.Render("admin_dashboard", fiber.Map{}) })
	app.Get("/manage-cars", func(c *fiber.Ctx) error { return c.Render("manage_cars", fiber.Map{}) })

	// ---------- Public API ----------
	deps := handlers.NewDeps(db)

	api := app.Group("/api")
	api.Get("/cars", deps.CarHandler.List)
	api.Get("/cars/featured", deps.CarHandler.Featured)
	api.Get("/cars/:id", deps.CarHandler.Detail)
	api.Post("/contact", deps.ContactHandler.Submit)

	// ---------- Admin API ----------
	api.Post("/admin/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false, "message": "Too many attempts. Please try again later.",
			})
		},
	}), authH.Login)
	api.Post("/admin/logout", authH.Logout)

	admin := api.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Post("/cars", deps.AdminHandler.Create)
	admin.Put("/cars/:id", deps.AdminHandler.Update)
	admin.Delete("/cars/:id", deps.AdminHandler.Delete)
	admin.Get("/stats", deps.AdminHandler.Stats)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
