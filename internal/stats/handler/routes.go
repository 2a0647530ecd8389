package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the statistics endpoints behind the given auth
// middleware.
func RegisterRoutes(app *fiber.App, h *StatsHandler, authRequired fiber.Handler) {
	me := app.Group("/api/v1/users/me", authRequired)

	me.Get("/daily_streak", h.GetDailyStreak)
	me.Put("/daily_streak", h.UpdateDailyStreak)
	me.Get("/review_stats", h.GetReviewStats)
	me.Put("/review_stats", h.IncrementReviewCount)
	me.Get("/new_card_stats", h.GetNewCardStats)
	me.Put("/new_card_stats", h.IncrementNewCardCount)
}
