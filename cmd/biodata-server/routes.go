package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-router"

	biodatarouter "github.com/DEV-SHUKLA-GITHUB/BioData-maker/adapters/router"
)

// SetupRoutes registers all application routes.
func (a *App) SetupRoutes(r router.Router[*fiber.App]) {
	handler := biodatarouter.NewHandler(biodatarouter.Config{
		Service:  a.Service,
		Exporter: a.Exporter,
		Preview:  a.Renderer,
		Logger:   a.Logger,
	})
	handler.RegisterRoutes(r)
}
