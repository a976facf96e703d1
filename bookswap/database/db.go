package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"time"

	"log/slog"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/uptrace/bun"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

// DB keeps both handles: the pgx pool for raw, logged statements and a bun
// handle for model queries.
type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	// Probe reachability with retries before building the pool.
	var conn net.Conn
	var err error

	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	for i := 0; i < defaultMaxRetries; i++ {
		conn, err = net.DialTimeout("tcp", addr, defaultConnTimeout)
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}
	defer conn.Close()

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &DB{pool: pool, bunDB: newBunDB(cfg)}, nil
}

func buildConnString(cfg DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
}

func newBunDB(cfg DBConfig) *bun.DB {
	sslMode := os.Getenv("PG_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, sslMode)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) GetPool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	duration := time.Since(start)

	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", "exec"),
			slog.String("query", sql),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return result, err
	}

	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", "exec"),
		slog.String("query", sql),
		slog.Duration("took", duration),
		slog.Int64("affected_rows", result.RowsAffected()),
	)
	return result, nil
}

func (db *DB) QueryWithLog(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	start := time.Now()
	rows, err := db.pool.Query(ctx, sql, args...)
	duration := time.Since(start)

	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", "query"),
			slog.String("query", sql),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return rows, err
	}

	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", "query"),
		slog.String("query", sql),
		slog.Duration("took", duration),
	)
	return rows, nil
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

// Ping verifies both database connections are working.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pgxpool ping failed: %w", err)
	}
	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping failed: %w", err)
	}
	return nil
}

// InitializeSchema creates all required tables and indexes and seeds the
// achievement catalog.
func (db *DB) InitializeSchema(ctx context.Context) error {
	// Create tables in dependency order.
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Book)(nil),
		(*models.Exchange)(nil),
		(*models.Review)(nil),
		(*models.Conversation)(nil),
		(*models.WishlistItem)(nil),
		(*models.Achievement)(nil),
		(*models.UserAchievement)(nil),
		(*models.UserRanking)(nil),
	}

	for _, model := range tables {
		_, err := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_books_owner_id ON books(owner_id);",
		"CREATE INDEX IF NOT EXISTS idx_books_title_lower ON books(LOWER(title));",
		"CREATE INDEX IF NOT EXISTS idx_books_available ON books(status) WHERE status = 'available';",
		"CREATE INDEX IF NOT EXISTS idx_exchanges_initiator ON exchanges(initiator_id, status);",
		"CREATE INDEX IF NOT EXISTS idx_exchanges_receiver ON exchanges(receiver_id, status);",
		"CREATE INDEX IF NOT EXISTS idx_reviews_rated_id ON reviews(rated_id);",
		"CREATE INDEX IF NOT EXISTS idx_conversations_participant_a ON conversations(participant_a);",
		"CREATE INDEX IF NOT EXISTS idx_conversations_participant_b ON conversations(participant_b);",
		"CREATE INDEX IF NOT EXISTS idx_wishlist_items_user_id ON wishlist_items(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_wishlist_items_title_lower ON wishlist_items(LOWER(title));",
		"CREATE INDEX IF NOT EXISTS idx_user_achievements_user_id ON user_achievements(user_id);",
		// Ranking hot paths: the full-population sort and the decay scan.
		"CREATE INDEX IF NOT EXISTS idx_user_rankings_total_score ON user_rankings(total_score DESC, user_id ASC);",
		"CREATE INDEX IF NOT EXISTS idx_user_rankings_last_activity ON user_rankings(last_activity) WHERE total_score > 0;",
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := db.InitializeAchievementData(ctx); err != nil {
		return fmt.Errorf("failed to initialize achievement data: %w", err)
	}

	return nil
}

// InitializeAchievementData inserts or updates the achievement catalog.
func (db *DB) InitializeAchievementData(ctx context.Context) error {
	type achievementDef struct {
		ID          string
		Name        string
		Description string
		Points      int
		Kind        string
		N           int
	}

	achievements := []achievementDef{
		{"first_exchange", "First Exchange", "Complete your first exchange", 50, "exchanges_completed", 1},
		{"trusted_trader", "Trusted Trader", "Complete 10 exchanges", 150, "exchanges_completed", 10},
		{"exchange_veteran", "Exchange Veteran", "Complete 50 exchanges", 400, "exchanges_completed", 50},
		{"well_reviewed", "Well Reviewed", "Receive 5 reviews", 100, "reviews_received", 5},
		{"community_favorite", "Community Favorite", "Receive 25 reviews", 300, "reviews_received", 25},
		{"shelf_starter", "Shelf Starter", "List 5 books", 75, "books_added", 5},
		{"librarian", "Librarian", "List 25 books", 250, "books_added", 25},
		{"regular_visitor", "Regular Visitor", "Log in 7 days in a row", 100, "login_streak", 7},
		{"dedicated_reader", "Dedicated Reader", "Log in 30 days in a row", 350, "login_streak", 30},
		{"best_of_the_best", "Best of the Best", "Reach rank 1 on the leaderboard", 500, "rank_reached", 1},
	}

	insertSQL := `
		INSERT INTO achievements (
			id, name, description, points, requirement_kind, requirement_n,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
		) ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			points = EXCLUDED.points,
			requirement_kind = EXCLUDED.requirement_kind,
			requirement_n = EXCLUDED.requirement_n,
			updated_at = CURRENT_TIMESTAMP;
	`

	for _, a := range achievements {
		if _, err := db.ExecWithLog(ctx, insertSQL,
			a.ID, a.Name, a.Description, a.Points, a.Kind, a.N,
		); err != nil {
			return fmt.Errorf("failed to upsert achievement %s: %w", a.ID, err)
		}
	}

	slog.Info("Achievement catalog initialized", slog.Int("count", len(achievements)))
	return nil
}
