package achievements

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bookswap/bookswap/bookswap/database/models"
)

type CatalogStore interface {
	GetAll(ctx context.Context) ([]*models.Achievement, error)
	GetUnlockedByUserID(ctx context.Context, userID int64) ([]*models.UserAchievement, error)
	Grant(ctx context.Context, userID int64, achievementID string) error
}

type RankingStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserRanking, error)
}

// Service walks the catalog and unlocks whatever a user's progress now
// satisfies. Grants are idempotent at the store level, so re-checking a user
// is always safe.
type Service struct {
	catalog  CatalogStore
	rankings RankingStore
}

func NewService(catalog CatalogStore, rankings RankingStore) *Service {
	return &Service{catalog: catalog, rankings: rankings}
}

// CheckUser evaluates every catalog entry against the user's current progress
// and grants the newly satisfied ones. Returns the IDs granted this pass.
// A user without a ranking record has no progress and unlocks nothing.
func (s *Service) CheckUser(ctx context.Context, userID int64) ([]string, error) {
	ranking, err := s.rankings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load ranking for user %d: %w", userID, err)
	}
	if ranking == nil {
		return nil, nil
	}
	return s.checkProgress(ctx, userID, ProgressFromRanking(ranking))
}

func (s *Service) checkProgress(ctx context.Context, userID int64, progress Progress) ([]string, error) {
	catalog, err := s.catalog.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load achievement catalog: %w", err)
	}

	unlocked, err := s.catalog.GetUnlockedByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load unlocks for user %d: %w", userID, err)
	}
	have := make(map[string]bool, len(unlocked))
	for _, u := range unlocked {
		have[u.AchievementID] = true
	}

	var granted []string
	for _, a := range catalog {
		if have[a.ID] {
			continue
		}
		ok, err := Evaluate(a, progress)
		if err != nil {
			slog.Warn("Skipping unevaluable achievement",
				slog.String("achievement_id", a.ID),
				slog.Any("error", err))
			continue
		}
		if !ok {
			continue
		}
		if err := s.catalog.Grant(ctx, userID, a.ID); err != nil {
			return granted, fmt.Errorf("grant %s to user %d: %w", a.ID, userID, err)
		}
		granted = append(granted, a.ID)
	}

	if len(granted) > 0 {
		slog.Info("Achievements unlocked",
			slog.Int64("user_id", userID),
			slog.Any("achievements", granted))
	}
	return granted, nil
}

// GetUnlocked returns a user's unlock records with the catalog rows attached.
func (s *Service) GetUnlocked(ctx context.Context, userID int64) ([]*models.UserAchievement, error) {
	return s.catalog.GetUnlockedByUserID(ctx, userID)
}
