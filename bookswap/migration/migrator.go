package migration

import (
	"bufio"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Migrator imports the legacy MongoDB marketplace data into Postgres, either
// from raw BSON dump files or straight from a live Mongo database. Imports
// are idempotent upserts, so a failed run can simply be re-run.
type Migrator struct {
	pgDB      *bun.DB
	dataDir   string
	batchSize int
	stats     MigrationStats

	// set via UseMongo for the live-database path
	mongoDB   *mongo.Database
	collNames map[string]string
}

func NewMigrator(pgDB *bun.DB, dataDir string) *Migrator {
	return &Migrator{
		pgDB:      pgDB,
		dataDir:   dataDir,
		batchSize: 1000,
		stats: MigrationStats{
			Tables:    make(map[string]*TableStats),
			StartTime: time.Now(),
		},
		collNames: map[string]string{
			"users":         "users",
			"books":         "books",
			"exchanges":     "exchanges",
			"reviews":       "reviews",
			"conversations": "conversations",
			"wishlists":     "wishlists",
		},
	}
}

// SetBatchSize overrides the default insert batch size.
func (m *Migrator) SetBatchSize(size int) {
	if size > 0 {
		m.batchSize = size
	}
}

// UseMongo enables direct-from-Mongo mode.
func (m *Migrator) UseMongo(client *mongo.Client, dbName string) {
	if client != nil && dbName != "" {
		m.mongoDB = client.Database(dbName)
	}
}

// SetMongoCollectionName overrides a collection name for deployments that
// renamed the defaults.
func (m *Migrator) SetMongoCollectionName(kind, name string) {
	if kind != "" && name != "" {
		m.collNames[kind] = name
	}
}

func (m *Migrator) tableStats(name string) *TableStats {
	ts, ok := m.stats.Tables[name]
	if !ok {
		ts = &TableStats{}
		m.stats.Tables[name] = ts
	}
	return ts
}

// MigrateAll imports every legacy collection from BSON dump files in the data
// directory. Order preserves referential integrity: users before books,
// books before exchanges.
func (m *Migrator) MigrateAll(ctx context.Context) error {
	logProgress(fmt.Sprintf("Starting BSON import from %s", m.dataDir))
	m.stats.StartTime = time.Now()

	steps := []struct {
		name     string
		fileName string
		migrate  func(context.Context, string) error
	}{
		{"users", "users.bson", m.migrateUsersFile},
		{"books", "books.bson", m.migrateBooksFile},
		{"exchanges", "exchanges.bson", m.migrateExchangesFile},
		{"reviews", "reviews.bson", m.migrateReviewsFile},
		{"conversations", "conversations.bson", m.migrateConversationsFile},
		{"wishlists", "wishlists.bson", m.migrateWishlistsFile},
	}

	for _, step := range steps {
		path := filepath.Join(m.dataDir, step.fileName)
		if _, err := os.Stat(path); err != nil {
			logProgress(fmt.Sprintf("%s not found, skipping step %s", step.fileName, step.name))
			continue
		}
		logProgress(fmt.Sprintf("Starting import step: %s", step.name))
		if err := step.migrate(ctx, path); err != nil {
			return fmt.Errorf("import failed at step %s: %w", step.name, err)
		}
		logProgress(fmt.Sprintf("Completed import step: %s", step.name))
	}

	m.stats.EndTime = time.Now()
	if err := m.writeReport(); err != nil {
		slog.Error("Failed to write migration report", "error", err)
	}
	m.logFinalStats()
	return nil
}

// MigrateAllFromMongo imports every legacy collection from a live database.
func (m *Migrator) MigrateAllFromMongo(ctx context.Context) error {
	if m.mongoDB == nil {
		return fmt.Errorf("mongo not configured; call UseMongo first")
	}

	logProgress("Starting direct MongoDB import")
	m.stats.StartTime = time.Now()

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"users", m.migrateUsersFromMongo},
		{"books", m.migrateBooksFromMongo},
		{"exchanges", m.migrateExchangesFromMongo},
		{"reviews", m.migrateReviewsFromMongo},
		{"conversations", m.migrateConversationsFromMongo},
		{"wishlists", m.migrateWishlistsFromMongo},
	}

	for _, step := range steps {
		logProgress(fmt.Sprintf("Starting import step: %s", step.name))
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("import failed at step %s: %w", step.name, err)
		}
		logProgress(fmt.Sprintf("Completed import step: %s", step.name))
	}

	m.stats.EndTime = time.Now()
	if err := m.writeReport(); err != nil {
		slog.Error("Failed to write migration report", "error", err)
	}
	m.logFinalStats()
	return nil
}

// readBSONFile decodes a raw mongodump file: a stream of BSON documents, each
// prefixed with its own int32 length.
func readBSONFile[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var docs []T
	reader := bufio.NewReader(file)
	for {
		lengthBytes := make([]byte, 4)
		if _, err := io.ReadFull(reader, lengthBytes); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to read document length: %w", err)
		}

		length := int32(binary.LittleEndian.Uint32(lengthBytes))
		if length <= 4 {
			return nil, fmt.Errorf("invalid document length: %d", length)
		}

		docBytes := make([]byte, length-4)
		if _, err := io.ReadFull(reader, docBytes); err != nil {
			return nil, fmt.Errorf("failed to read document bytes: %w", err)
		}

		var doc T
		if err := bson.Unmarshal(append(lengthBytes, docBytes...), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// readMongoCollection drains a live collection into memory.
func readMongoCollection[T any](ctx context.Context, col *mongo.Collection) ([]T, error) {
	cur, err := col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	var docs []T
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, cur.Err()
}

func (m *Migrator) coll(kind string) *mongo.Collection {
	return m.mongoDB.Collection(m.collNames[kind])
}

func (m *Migrator) migrateUsersFile(ctx context.Context, path string) error {
	docs, err := readBSONFile[MongoUser](path)
	if err != nil {
		return err
	}
	return m.processUsers(ctx, docs)
}

func (m *Migrator) migrateUsersFromMongo(ctx context.Context) error {
	docs, err := readMongoCollection[MongoUser](ctx, m.coll("users"))
	if err != nil {
		return err
	}
	return m.processUsers(ctx, docs)
}

func (m *Migrator) processUsers(ctx context.Context, docs []MongoUser) error {
	ts := m.tableStats("users")
	ts.Read = len(docs)

	// Deduplicate on legacy ID, keeping the latest record.
	byID := make(map[int64]*models.User, len(docs))
	var order []int64
	for _, doc := range docs {
		user := convertUser(doc)
		if user.ID == 0 || user.Username == "" {
			ts.Skipped++
			continue
		}
		if _, exists := byID[user.ID]; !exists {
			order = append(order, user.ID)
		}
		byID[user.ID] = user
	}

	users := make([]*models.User, 0, len(order))
	for _, id := range order {
		users = append(users, byID[id])
	}
	imported, err := upsertInBatches(ctx, m.pgDB, users, m.batchSize, "users")
	ts.Imported = imported
	if err != nil {
		return err
	}
	logProgress(fmt.Sprintf("Users imported: %d of %d (%d skipped)", ts.Imported, ts.Read, ts.Skipped))
	return nil
}

func (m *Migrator) migrateBooksFile(ctx context.Context, path string) error {
	docs, err := readBSONFile[MongoBook](path)
	if err != nil {
		return err
	}
	return m.processBooks(ctx, docs)
}

func (m *Migrator) migrateBooksFromMongo(ctx context.Context) error {
	docs, err := readMongoCollection[MongoBook](ctx, m.coll("books"))
	if err != nil {
		return err
	}
	return m.processBooks(ctx, docs)
}

func (m *Migrator) processBooks(ctx context.Context, docs []MongoBook) error {
	ts := m.tableStats("books")
	ts.Read = len(docs)

	books := make([]*models.Book, 0, len(docs))
	for _, doc := range docs {
		book := convertBook(doc)
		if book.ID == 0 || book.OwnerID == 0 || book.Title == "" {
			ts.Skipped++
			continue
		}
		books = append(books, book)
	}
	imported, err := upsertInBatches(ctx, m.pgDB, books, m.batchSize, "books")
	ts.Imported = imported
	if err != nil {
		return err
	}
	logProgress(fmt.Sprintf("Books imported: %d of %d (%d skipped)", ts.Imported, ts.Read, ts.Skipped))
	return nil
}

func (m *Migrator) migrateExchangesFile(ctx context.Context, path string) error {
	docs, err := readBSONFile[MongoExchange](path)
	if err != nil {
		return err
	}
	return m.processExchanges(ctx, docs)
}

func (m *Migrator) migrateExchangesFromMongo(ctx context.Context) error {
	docs, err := readMongoCollection[MongoExchange](ctx, m.coll("exchanges"))
	if err != nil {
		return err
	}
	return m.processExchanges(ctx, docs)
}

func (m *Migrator) processExchanges(ctx context.Context, docs []MongoExchange) error {
	ts := m.tableStats("exchanges")
	ts.Read = len(docs)

	exchanges := make([]*models.Exchange, 0, len(docs))
	for _, doc := range docs {
		exchange := convertExchange(doc)
		if exchange.ID == 0 || exchange.InitiatorID == 0 || exchange.ReceiverID == 0 {
			ts.Skipped++
			continue
		}
		exchanges = append(exchanges, exchange)
	}
	imported, err := upsertInBatches(ctx, m.pgDB, exchanges, m.batchSize, "exchanges")
	ts.Imported = imported
	if err != nil {
		return err
	}
	logProgress(fmt.Sprintf("Exchanges imported: %d of %d (%d skipped)", ts.Imported, ts.Read, ts.Skipped))
	return nil
}

func (m *Migrator) migrateReviewsFile(ctx context.Context, path string) error {
	docs, err := readBSONFile[MongoReview](path)
	if err != nil {
		return err
	}
	return m.processReviews(ctx, docs)
}

func (m *Migrator) migrateReviewsFromMongo(ctx context.Context) error {
	docs, err := readMongoCollection[MongoReview](ctx, m.coll("reviews"))
	if err != nil {
		return err
	}
	return m.processReviews(ctx, docs)
}

func (m *Migrator) processReviews(ctx context.Context, docs []MongoReview) error {
	ts := m.tableStats("reviews")
	ts.Read = len(docs)

	reviews := make([]*models.Review, 0, len(docs))
	for _, doc := range docs {
		review := convertReview(doc)
		if review.ID == 0 || review.RaterID == 0 || review.RatedID == 0 {
			ts.Skipped++
			continue
		}
		reviews = append(reviews, review)
	}
	imported, err := upsertInBatches(ctx, m.pgDB, reviews, m.batchSize, "reviews")
	ts.Imported = imported
	if err != nil {
		return err
	}
	logProgress(fmt.Sprintf("Reviews imported: %d of %d (%d skipped)", ts.Imported, ts.Read, ts.Skipped))
	return nil
}

func (m *Migrator) migrateConversationsFile(ctx context.Context, path string) error {
	docs, err := readBSONFile[MongoConversation](path)
	if err != nil {
		return err
	}
	return m.processConversations(ctx, docs)
}

func (m *Migrator) migrateConversationsFromMongo(ctx context.Context) error {
	docs, err := readMongoCollection[MongoConversation](ctx, m.coll("conversations"))
	if err != nil {
		return err
	}
	return m.processConversations(ctx, docs)
}

func (m *Migrator) processConversations(ctx context.Context, docs []MongoConversation) error {
	ts := m.tableStats("conversations")
	ts.Read = len(docs)

	conversations := make([]*models.Conversation, 0, len(docs))
	for _, doc := range docs {
		conv := convertConversation(doc)
		if conv == nil || conv.ID == 0 {
			ts.Skipped++
			continue
		}
		conversations = append(conversations, conv)
	}
	imported, err := upsertInBatches(ctx, m.pgDB, conversations, m.batchSize, "conversations")
	ts.Imported = imported
	if err != nil {
		return err
	}
	logProgress(fmt.Sprintf("Conversations imported: %d of %d (%d skipped)", ts.Imported, ts.Read, ts.Skipped))
	return nil
}

func (m *Migrator) migrateWishlistsFile(ctx context.Context, path string) error {
	docs, err := readBSONFile[MongoWishlistEntry](path)
	if err != nil {
		return err
	}
	return m.processWishlists(ctx, docs)
}

func (m *Migrator) migrateWishlistsFromMongo(ctx context.Context) error {
	docs, err := readMongoCollection[MongoWishlistEntry](ctx, m.coll("wishlists"))
	if err != nil {
		return err
	}
	return m.processWishlists(ctx, docs)
}

func (m *Migrator) processWishlists(ctx context.Context, docs []MongoWishlistEntry) error {
	ts := m.tableStats("wishlists")
	ts.Read = len(docs)

	// Deduplicate (user, lowercased title) pairs; the legacy client allowed
	// adding the same book twice.
	seen := make(map[string]bool, len(docs))
	items := make([]*models.WishlistItem, 0, len(docs))
	for _, doc := range docs {
		item := convertWishlistEntry(doc)
		if item.UserID == 0 || item.Title == "" {
			ts.Skipped++
			continue
		}
		key := fmt.Sprintf("%d|%s", item.UserID, strings.ToLower(item.Title))
		if seen[key] {
			ts.Skipped++
			continue
		}
		seen[key] = true
		items = append(items, item)
	}
	imported, err := insertInBatches(ctx, m.pgDB, items, m.batchSize, "wishlists")
	ts.Imported = imported
	if err != nil {
		return err
	}
	logProgress(fmt.Sprintf("Wishlist entries imported: %d of %d (%d skipped)", ts.Imported, ts.Read, ts.Skipped))
	return nil
}

// upsertInBatches inserts rows keyed on the legacy primary key, splitting a
// batch on timeouts so a pooler hiccup does not abort the whole run. Returns
// how many rows were written.
func upsertInBatches[T any](ctx context.Context, db *bun.DB, rows []*T, batchSize int, name string) (int, error) {
	imported := 0
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := upsertBatch(ctx, db, rows[start:end], name); err != nil {
			return imported, err
		}
		imported += end - start
	}
	return imported, nil
}

func upsertBatch[T any](ctx context.Context, db *bun.DB, batch []*T, name string) error {
	if len(batch) == 0 {
		return nil
	}
	if _, err := db.NewInsert().
		Model(&batch).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx); err != nil {
		if isTimeoutErr(err) && len(batch) > 1 {
			mid := len(batch) / 2
			logProgress(fmt.Sprintf("%s batch timeout, splitting into %d and %d", name, mid, len(batch)-mid))
			if err := upsertBatch(ctx, db, batch[:mid], name); err != nil {
				return err
			}
			return upsertBatch(ctx, db, batch[mid:], name)
		}
		return fmt.Errorf("failed to insert %s batch: %w", name, err)
	}
	return nil
}

func insertInBatches[T any](ctx context.Context, db *bun.DB, rows []*T, batchSize int, name string) (int, error) {
	imported := 0
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]
		if _, err := db.NewInsert().Model(&batch).Exec(ctx); err != nil {
			return imported, fmt.Errorf("failed to insert %s batch: %w", name, err)
		}
		imported += end - start
	}
	return imported, nil
}

func isTimeoutErr(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "timeout") ||
		strings.Contains(s, "context deadline")
}

// writeReport drops a JSON summary next to the data files.
func (m *Migrator) writeReport() error {
	data, err := json.MarshalIndent(m.stats, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(m.dataDir, "migration_report.json")
	return os.WriteFile(path, data, 0o644)
}

func (m *Migrator) logFinalStats() {
	took := m.stats.EndTime.Sub(m.stats.StartTime)
	for name, ts := range m.stats.Tables {
		slog.Info("Import table summary",
			slog.String("table", name),
			slog.Int("read", ts.Read),
			slog.Int("imported", ts.Imported),
			slog.Int("skipped", ts.Skipped))
	}
	logProgress(fmt.Sprintf("Import completed in %s", took.Round(time.Millisecond)))
}

func logProgress(msg string) {
	slog.Info(msg, slog.String("type", "sys"))
}
