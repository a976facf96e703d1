package bookswap

import (
	"context"
	"fmt"

	"github.com/bookswap/bookswap/bookswap/achievements"
	"github.com/bookswap/bookswap/bookswap/database"
	"github.com/bookswap/bookswap/bookswap/database/repositories"
	"github.com/bookswap/bookswap/bookswap/matching"
	"github.com/bookswap/bookswap/bookswap/ranking"
)

func New(cfg Config, version string, commit string) *App {
	return &App{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

// App wires the database, repositories and services together.
type App struct {
	Cfg     Config
	Version string
	Commit  string

	DB *database.DB

	UserRepository         repositories.UserRepository
	BookRepository         repositories.BookRepository
	ExchangeRepository     repositories.ExchangeRepository
	ReviewRepository       repositories.ReviewRepository
	ConversationRepository repositories.ConversationRepository
	WishlistRepository     repositories.WishlistRepository
	AchievementRepository  repositories.AchievementRepository
	RankingRepository      repositories.RankingRepository

	RankingService     *ranking.Service
	MatchingService    *matching.Service
	AchievementService *achievements.Service
	Scheduler          *ranking.Scheduler
}

// Setup connects to the database, ensures the schema and builds the service
// graph.
func (a *App) Setup(ctx context.Context) error {
	db, err := database.New(ctx, a.Cfg.DB)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	a.DB = db

	if err := db.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}

	bunDB := db.BunDB()
	a.UserRepository = repositories.NewUserRepository(bunDB)
	a.BookRepository = repositories.NewBookRepository(bunDB)
	a.ExchangeRepository = repositories.NewExchangeRepository(bunDB)
	a.ReviewRepository = repositories.NewReviewRepository(bunDB)
	a.ConversationRepository = repositories.NewConversationRepository(bunDB)
	a.WishlistRepository = repositories.NewWishlistRepository(bunDB)
	a.AchievementRepository = repositories.NewAchievementRepository(bunDB)
	a.RankingRepository = repositories.NewRankingRepository(bunDB)

	rankingConfig := ranking.NewDefaultConfig()
	calculator := ranking.NewCalculator(
		rankingConfig,
		a.ExchangeRepository,
		a.ReviewRepository,
		a.ConversationRepository,
		a.BookRepository,
		a.WishlistRepository,
		a.AchievementRepository,
		a.UserRepository,
	)

	a.RankingService = ranking.NewService(
		calculator,
		a.RankingRepository,
		a.UserRepository,
		a.AchievementRepository,
		rankingConfig,
	)
	a.MatchingService = matching.NewService(
		a.BookRepository,
		a.WishlistRepository,
		a.RankingRepository,
		a.UserRepository,
	)
	a.AchievementService = achievements.NewService(
		a.AchievementRepository,
		a.RankingRepository,
	)

	jobs := a.Cfg.Jobs
	if jobs == (ranking.JobsConfig{}) {
		jobs = ranking.DefaultJobsConfig()
	}
	a.Scheduler = ranking.NewScheduler(a.RankingService, jobs)

	return nil
}

// Close releases the database handles.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
