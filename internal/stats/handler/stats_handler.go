package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	authhandler "github.com/CasualJavaUser/FlashcardApi/internal/auth/handler"
	apperror "github.com/CasualJavaUser/FlashcardApi/internal/errors"
	"github.com/CasualJavaUser/FlashcardApi/internal/stats/domain"
	"github.com/CasualJavaUser/FlashcardApi/internal/stats/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) GetDailyStreak(c *fiber.Ctx) error {
	userID, ok := authhandler.UserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	streak, err := h.statsService.GetDailyStreak(c.UserContext(), userID)
	if err != nil {
		return statsError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"daily_streak": streak,
	})
}

func (h *StatsHandler) UpdateDailyStreak(c *fiber.Ctx) error {
	userID, ok := authhandler.UserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	if err := h.statsService.UpdateDailyStreak(c.UserContext(), userID); err != nil {
		return statsError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *StatsHandler) GetReviewStats(c *fiber.Ctx) error {
	return h.getStats(c, domain.KindReview)
}

func (h *StatsHandler) IncrementReviewCount(c *fiber.Ctx) error {
	return h.incrementCount(c, domain.KindReview)
}

func (h *StatsHandler) GetNewCardStats(c *fiber.Ctx) error {
	return h.getStats(c, domain.KindNewCard)
}

func (h *StatsHandler) IncrementNewCardCount(c *fiber.Ctx) error {
	return h.incrementCount(c, domain.KindNewCard)
}

func (h *StatsHandler) getStats(c *fiber.Ctx, kind domain.CounterKind) error {
	userID, ok := authhandler.UserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	buckets, err := h.statsService.GetStatistics(c.UserContext(), userID, kind)
	if err != nil {
		return statsError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"buckets": buckets,
	})
}

func (h *StatsHandler) incrementCount(c *fiber.Ctx, kind domain.CounterKind) error {
	userID, ok := authhandler.UserID(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	if err := h.statsService.IncrementCount(c.UserContext(), userID, kind); err != nil {
		return statsError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func statsError(c *fiber.Ctx, err error) error {
	if errors.Is(err, apperror.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "user not found",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}
