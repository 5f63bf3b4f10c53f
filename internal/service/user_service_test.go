package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iliyamo/accommodation-reservation/internal/dbtest"
	"github.com/iliyamo/accommodation-reservation/internal/dto"
	"github.com/iliyamo/accommodation-reservation/internal/repository"
	"github.com/iliyamo/accommodation-reservation/internal/service"
)

func userDto(name, email string) dto.User { return dto.User{Name: name, Email: email} }

func TestUserService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.users.Create(ctx, dto.User{ID: 999, Name: "Ann", Email: "a@x.com"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, uint64(999), created.ID, "caller-supplied id is ignored")

	got, err := f.users.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)
	assert.Equal(t, []string{"user.created"}, f.events.actions())
}

func TestUserService_AbsentIDs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	kept, err := f.users.Create(ctx, userDto("Ann", "a@x.com"))
	require.NoError(t, err)

	got, err := f.users.Get(ctx, kept.ID+1)
	require.NoError(t, err)
	assert.Nil(t, got)

	updated, err := f.users.Update(ctx, dto.User{ID: kept.ID + 1, Name: "Ghost"})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := f.users.Delete(ctx, kept.ID+1)
	require.NoError(t, err)
	assert.False(t, deleted)

	all, err := f.users.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.User{kept}, all, "no mutation for absent ids")
	assert.Equal(t, []string{"user.created"}, f.events.actions())
}

func TestUserService_UpdateIsIdempotentFullReplace(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created, err := f.users.Create(ctx, userDto("Ann", "a@x.com"))
	require.NoError(t, err)

	change := dto.User{ID: created.ID, Name: "Anna"}
	first, err := f.users.Update(ctx, change)
	require.NoError(t, err)
	require.NotNil(t, first)
	second, err := f.users.Update(ctx, change)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)

	got, err := f.users.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.User{ID: created.ID, Name: "Anna", Email: ""}, *got, "omitted fields overwrite")
}

func TestUserService_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created, err := f.users.Create(ctx, userDto("Ann", "a@x.com"))
	require.NoError(t, err)

	ok, err := f.users.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.users.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"user.created", "user.deleted"}, f.events.actions())
}

func TestUserService_ListAfterCreatesAndDeletes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var ids []uint64
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		u, err := f.users.Create(ctx, userDto(name, name+"@x.com"))
		require.NoError(t, err)
		ids = append(ids, u.ID)
	}
	for _, id := range ids[:2] {
		ok, err := f.users.Delete(ctx, id)
		require.NoError(t, err)
		require.True(t, ok)
	}

	all, err := f.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	live := make([]uint64, 0, len(all))
	for _, u := range all {
		live = append(live, u.ID)
	}
	assert.ElementsMatch(t, ids[2:], live)
}

func TestUserService_EmptyListIsNotNil(t *testing.T) {
	f := newFixture(t)
	all, err := f.users.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestUserService_PublishFailureDoesNotFailWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.events.fail = true

	created, err := f.users.Create(ctx, userDto("Ann", "a@x.com"))
	require.NoError(t, err)
	got, err := f.users.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestUserService_UpdateOfRowDeletedMeanwhile(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	rec := &recorder{}
	users := service.NewUserService(repository.NewGateway(db), rec, zap.NewNop())

	created, err := users.Create(ctx, userDto("Ann", "a@x.com"))
	require.NoError(t, err)

	// another request removes the row after Update has loaded it
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:concurrent_delete", func(tx *gorm.DB) {
		tx.Session(&gorm.Session{NewDB: true}).Exec("DELETE FROM users WHERE id = ?", created.ID)
	}))

	updated, err := users.Update(ctx, dto.User{ID: created.ID, Name: "Anna", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, []string{"user.created"}, rec.actions(), "no update event for a vanished row")

	got, err := users.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "the row is not recreated")
}
