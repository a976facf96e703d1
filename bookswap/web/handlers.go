package web

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bookswap/bookswap/bookswap/achievements"
	"github.com/bookswap/bookswap/bookswap/database"
	"github.com/bookswap/bookswap/bookswap/matching"
	"github.com/bookswap/bookswap/bookswap/ranking"
)

// WebApp bundles everything the HTTP handlers need.
type WebApp struct {
	DB           *database.DB
	Rankings     *ranking.Service
	Matching     *matching.Service
	Achievements *achievements.Service
	Scheduler    *ranking.Scheduler
	Version      string
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+param)
	}
	return id, nil
}

// HealthCheck reports server and database health.
func HealthCheck(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := app.DB.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"error":  "database unreachable",
			})
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"version": app.Version,
		})
	}
}

// GetRanking returns one user's ranking record.
func GetRanking(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userID")
		if err != nil {
			return err
		}
		record, err := app.Rankings.GetRanking(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load ranking")
		}
		if record == nil {
			return fiber.NewError(fiber.StatusNotFound, "no ranking for user")
		}
		return c.JSON(record)
	}
}

// GetTierProgress returns the user's tier and progress toward the next one.
func GetTierProgress(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userID")
		if err != nil {
			return err
		}
		record, err := app.Rankings.GetRanking(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load ranking")
		}
		if record == nil {
			return fiber.NewError(fiber.StatusNotFound, "no ranking for user")
		}
		return c.JSON(ranking.ProgressToNextTier(record.TotalScore))
	}
}

// GetLeaderboard returns a page of records in rank order.
func GetLeaderboard(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 25)
		offset := c.QueryInt("offset", 0)
		if limit > 100 {
			limit = 100
		}
		if offset < 0 {
			offset = 0
		}
		records, err := app.Rankings.GetLeaderboard(c.Context(), limit, offset)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load leaderboard")
		}
		return c.JSON(fiber.Map{
			"leaderboard": records,
			"limit":       limit,
			"offset":      offset,
		})
	}
}

// CompareRankings returns a side-by-side view of two users.
func CompareRankings(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userA, err := parseID(c, "userID")
		if err != nil {
			return err
		}
		userB, err := parseID(c, "otherID")
		if err != nil {
			return err
		}
		comparison, err := app.Rankings.CompareUsers(c.Context(), userA, userB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to compare users")
		}
		if comparison == nil {
			return fiber.NewError(fiber.StatusNotFound, "one or both users have no ranking")
		}
		return c.JSON(comparison)
	}
}

// RefreshUser recomputes one user's score and schedules a deferred re-rank.
func RefreshUser(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userID")
		if err != nil {
			return err
		}
		record, err := app.Rankings.UpdateUserScore(c.Context(), userID)
		if err != nil {
			slog.Error("User refresh failed",
				slog.Int64("user_id", userID),
				slog.Any("error", err))
			return fiber.NewError(fiber.StatusInternalServerError, "failed to refresh user")
		}
		app.Scheduler.RequestRecalc()

		// Newly satisfied achievements unlock as part of a refresh.
		if _, err := app.Achievements.CheckUser(c.Context(), userID); err != nil {
			slog.Warn("Achievement check failed during refresh",
				slog.Int64("user_id", userID),
				slog.Any("error", err))
		}
		return c.JSON(record)
	}
}

// RefreshAll recomputes every user and re-ranks once.
func RefreshAll(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		updated, err := app.Rankings.UpdateAllUsers(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "batch refresh failed")
		}
		return c.JSON(fiber.Map{"updated": updated})
	}
}

// Recalculate runs a full re-rank without recomputing scores.
func Recalculate(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := app.Rankings.RecalculateRankings(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "recalculation failed")
		}
		return c.JSON(fiber.Map{"status": "recalculated"})
	}
}

// ApplyDecay discounts inactive users' scores.
func ApplyDecay(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decayed, err := app.Rankings.ApplyDecay(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "decay failed")
		}
		return c.JSON(fiber.Map{"decayed": decayed})
	}
}

// ResetWeekly zeroes the weekly counters on every record.
func ResetWeekly(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := app.Rankings.ResetWeeklyCounters(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "weekly reset failed")
		}
		return c.JSON(fiber.Map{"status": "reset"})
	}
}

// RecordExchangeEvent bumps the user's weekly exchange counter. The
// marketplace calls this when one of the user's exchanges completes.
func RecordExchangeEvent(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userID")
		if err != nil {
			return err
		}
		if err := app.Rankings.RecordExchangeActivity(c.Context(), userID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to record exchange")
		}
		return c.JSON(fiber.Map{"status": "recorded"})
	}
}

// RecordReviewEvent bumps the user's weekly review counter.
func RecordReviewEvent(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userID")
		if err != nil {
			return err
		}
		if err := app.Rankings.RecordReviewActivity(c.Context(), userID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to record review")
		}
		return c.JSON(fiber.Map{"status": "recorded"})
	}
}

// RecordActivityPing refreshes the user's last-activity timestamp. The
// marketplace calls this on login so decay never hits active users.
func RecordActivityPing(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userID")
		if err != nil {
			return err
		}
		if err := app.Rankings.RecordActivityPing(c.Context(), userID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to record activity")
		}
		return c.JSON(fiber.Map{"status": "recorded"})
	}
}

// FindOffers returns candidate books matching the user's wishlist.
func FindOffers(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userID")
		if err != nil {
			return err
		}
		offers, err := app.Matching.FindOffers(c.Context(), userID)
		if err != nil {
			slog.Error("Offer search failed",
				slog.Int64("user_id", userID),
				slog.Any("error", err))
			return fiber.NewError(fiber.StatusInternalServerError, "offer search failed")
		}
		return c.JSON(fiber.Map{"offers": offers})
	}
}

// FindInterestedUsers returns users whose wishlist contains the book's title.
func FindInterestedUsers(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookID, err := parseID(c, "bookID")
		if err != nil {
			return err
		}
		interested, err := app.Matching.FindInterestedUsers(c.Context(), bookID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "interest search failed")
		}
		return c.JSON(fiber.Map{"interested": interested})
	}
}

// GetAchievements returns a user's unlocked achievements.
func GetAchievements(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userID")
		if err != nil {
			return err
		}
		unlocked, err := app.Achievements.GetUnlocked(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load achievements")
		}
		return c.JSON(fiber.Map{"achievements": unlocked})
	}
}

// CheckAchievements evaluates the catalog against the user's progress and
// grants whatever is newly satisfied.
func CheckAchievements(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userID")
		if err != nil {
			return err
		}
		granted, err := app.Achievements.CheckUser(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "achievement check failed")
		}
		if granted == nil {
			granted = []string{}
		}
		return c.JSON(fiber.Map{"granted": granted})
	}
}
