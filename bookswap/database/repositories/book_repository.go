package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/bookswap/bookswap/bookswap/database/models"
	"github.com/uptrace/bun"
)

type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	// GetAvailableByTitles returns available books whose lowercased title is
	// in titles, excluding one owner's own listings.
	GetAvailableByTitles(ctx context.Context, titles []string, excludeOwnerID int64) ([]*models.Book, error)
	GetAvailableExcluding(ctx context.Context, excludeOwnerID int64) ([]*models.Book, error)
	UpdateStatus(ctx context.Context, id int64, status models.BookStatus) error
}

type bookRepository struct {
	db *bun.DB
}

func NewBookRepository(db *bun.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	book.CreatedAt = time.Now()
	book.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(book).Exec(ctx)
	return err
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	book := new(models.Book)
	err := r.db.NewSelect().
		Model(book).
		Relation("Owner").
		Where("b.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return book, nil
}

func (r *bookRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	return r.db.NewSelect().
		Model((*models.Book)(nil)).
		Where("owner_id = ?", ownerID).
		Count(ctx)
}

func (r *bookRepository) GetAvailableByTitles(ctx context.Context, titles []string, excludeOwnerID int64) ([]*models.Book, error) {
	if len(titles) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(titles))
	for i, t := range titles {
		lowered[i] = strings.ToLower(t)
	}

	var books []*models.Book
	err := r.db.NewSelect().
		Model(&books).
		Relation("Owner").
		Where("b.status = ?", models.BookAvailable).
		Where("b.owner_id != ?", excludeOwnerID).
		Where("LOWER(b.title) IN (?)", bun.In(lowered)).
		Order("b.created_at DESC").
		Scan(ctx)
	return books, err
}

func (r *bookRepository) GetAvailableExcluding(ctx context.Context, excludeOwnerID int64) ([]*models.Book, error) {
	var books []*models.Book
	err := r.db.NewSelect().
		Model(&books).
		Relation("Owner").
		Where("b.status = ?", models.BookAvailable).
		Where("b.owner_id != ?", excludeOwnerID).
		Scan(ctx)
	return books, err
}

func (r *bookRepository) UpdateStatus(ctx context.Context, id int64, status models.BookStatus) error {
	_, err := r.db.NewUpdate().
		Model((*models.Book)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
