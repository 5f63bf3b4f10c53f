package repository

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Table is a table-like collection of one model type.  Every call opens a
// session bound to the caller's context, so no statement state is shared
// between requests and a cancelled request aborts its query.
type Table[T any] struct {
	db       *gorm.DB
	preloads []string // associations eagerly loaded by All and Find
}

// NewTable constructs a Table over db.  The named associations are loaded
// together with every row returned by All and Find.
func NewTable[T any](db *gorm.DB, preloads ...string) *Table[T] {
	return &Table[T]{db: db, preloads: preloads}
}

func (t *Table[T]) session(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx)
}

func (t *Table[T]) eager(ctx context.Context) *gorm.DB {
	q := t.session(ctx)
	for _, p := range t.preloads {
		q = q.Preload(p)
	}
	return q
}

// All returns every row ordered by primary key.
func (t *Table[T]) All(ctx context.Context) ([]T, error) {
	var out []T
	if err := t.eager(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Find fetches a row with its eager associations.  It returns ErrNotFound
// when no row has the given id.
func (t *Table[T]) Find(ctx context.Context, id uint64) (*T, error) {
	return first[T](t.eager(ctx), id)
}

// Get fetches a row without associations; used before updates and deletes.
func (t *Table[T]) Get(ctx context.Context, id uint64) (*T, error) {
	return first[T](t.session(ctx), id)
}

func first[T any](q *gorm.DB, id uint64) (*T, error) {
	if id > math.MaxInt64 {
		// beyond a signed BIGINT key; database/sql refuses to send it
		return nil, ErrNotFound
	}
	row := new(T)
	if err := q.First(row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

// Insert adds row and fills in its generated primary key.  Associations
// are never written; only the foreign key columns are.
func (t *Table[T]) Insert(ctx context.Context, row *T) error {
	return t.session(ctx).Omit(clause.Associations).Create(row).Error
}

// Save writes every column of an existing row, zero values included.  A
// row deleted in the meantime is not recreated; ErrNotFound is returned.
func (t *Table[T]) Save(ctx context.Context, row *T) error {
	res := t.session(ctx).Model(row).Select("*").Omit(clause.Associations).Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Remove hard-deletes row by its primary key.
func (t *Table[T]) Remove(ctx context.Context, row *T) error {
	return t.session(ctx).Delete(row).Error
}
