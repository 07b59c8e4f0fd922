package sqlrepo

import (
	"context"
	"database/sql"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"representantes/internal/config"
	"representantes/internal/database"
	"representantes/internal/model"
	"representantes/internal/repository"
)

// newSQLiteRepo returns a repository over a fresh in-memory store with the schema applied.
func newSQLiteRepo(t *testing.T, initData bool) *RepresentanteSQL {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	dbs := database.NewService(db, config.DriverSQLite, initData, zerolog.Nop())
	require.NoError(t, dbs.Init(context.Background()))

	return NewRepresentanteSQL(dbs, zerolog.Nop())
}

var (
	ana = model.Representante{ID: uuid.MustParse("0a000000-0000-4000-8000-000000000001"), Nombre: "Ana", Email: "ana@x.com"}
	bob = model.Representante{ID: uuid.MustParse("0b000000-0000-4000-8000-000000000002"), Nombre: "Bob", Email: "bob@x.com"}
)

func seedAnaBob(t *testing.T, repo *RepresentanteSQL) {
	t.Helper()
	for _, r := range []model.Representante{ana, bob} {
		_, err := repo.Save(context.Background(), &r)
		require.NoError(t, err)
	}
}

func TestSQLite_SaveFindByIDRoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t, false)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &ana)
	require.NoError(t, err)
	assert.Equal(t, ana, *saved)

	found, err := repo.FindByID(ctx, ana.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, ana, *found)

	missing, err := repo.FindByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSQLite_SaveDuplicateFails(t *testing.T) {
	repo := newSQLiteRepo(t, false)
	ctx := context.Background()

	_, err := repo.Save(ctx, &ana)
	require.NoError(t, err)
	_, err = repo.Save(ctx, &ana)
	assert.Error(t, err)
}

func TestSQLite_FindByNombre(t *testing.T) {
	repo := newSQLiteRepo(t, false)
	seedAnaBob(t, repo)

	items, err := repository.Collect(repo.FindByNombre(context.Background(), "Ana"))

	require.NoError(t, err)
	assert.Equal(t, []model.Representante{ana}, items)
}

func TestSQLite_PagesPartitionFindAll(t *testing.T) {
	repo := newSQLiteRepo(t, false)
	ctx := context.Background()
	seedAnaBob(t, repo)

	page0, err := repository.Collect(repo.FindAllPageable(ctx, 0, 1))
	require.NoError(t, err)
	page1, err := repository.Collect(repo.FindAllPageable(ctx, 1, 1))
	require.NoError(t, err)
	page2, err := repository.Collect(repo.FindAllPageable(ctx, 2, 1))
	require.NoError(t, err)

	require.Len(t, page0, 1)
	require.Len(t, page1, 1)
	assert.Empty(t, page2)
	assert.NotEqual(t, page0[0].ID, page1[0].ID)

	all, err := repository.Collect(repo.FindAll(ctx))
	require.NoError(t, err)
	assert.ElementsMatch(t, all, append(page0, page1...))
}

func TestSQLite_PageFarPastDataIsRejected(t *testing.T) {
	repo := newSQLiteRepo(t, false)
	seedAnaBob(t, repo)

	items, err := repository.Collect(repo.FindAllPageable(context.Background(), math.MaxInt/10+1, 10))

	assert.ErrorIs(t, err, repository.ErrInvalidPage)
	assert.Empty(t, items)
}

func TestSQLite_PageNeverExceedsCap(t *testing.T) {
	repo := newSQLiteRepo(t, false)
	ctx := context.Background()

	for range 120 {
		_, err := repo.Save(ctx, &model.Representante{ID: uuid.New(), Nombre: "n", Email: "n@x.com"})
		require.NoError(t, err)
	}

	items, err := repository.Collect(repo.FindAllPageable(ctx, 0, 500))
	require.NoError(t, err)
	assert.Len(t, items, repository.MaxPerPage)

	items, err = repository.Collect(repo.FindAllPageable(ctx, 0, 7))
	require.NoError(t, err)
	assert.Len(t, items, 7)
}

func TestSQLite_FindAllBreakEarly(t *testing.T) {
	repo := newSQLiteRepo(t, false)
	ctx := context.Background()
	seedAnaBob(t, repo)

	n := 0
	for _, err := range repo.FindAll(ctx) {
		require.NoError(t, err)
		n++
		break
	}
	assert.Equal(t, 1, n)

	// rows were released: the single connection is usable again
	found, err := repo.FindByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestSQLite_Update(t *testing.T) {
	repo := newSQLiteRepo(t, false)
	ctx := context.Background()
	seedAnaBob(t, repo)

	updated, err := repo.Update(ctx, ana.ID, &model.Representante{ID: ana.ID, Nombre: "Ana2", Email: "ana2@x.com"})
	require.NoError(t, err)
	require.NotNil(t, updated)

	found, err := repo.FindByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Representante{ID: ana.ID, Nombre: "Ana2", Email: "ana2@x.com"}, *found)
}

func TestSQLite_UpdateMissingLeavesStoreUnchanged(t *testing.T) {
	repo := newSQLiteRepo(t, false)
	ctx := context.Background()
	seedAnaBob(t, repo)

	before, err := repository.Collect(repo.FindAll(ctx))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, uuid.New(), &model.Representante{Nombre: "X", Email: "x@x.com"})
	require.NoError(t, err)
	assert.Nil(t, updated)

	after, err := repository.Collect(repo.FindAll(ctx))
	require.NoError(t, err)
	assert.ElementsMatch(t, before, after)
}

func TestSQLite_Delete(t *testing.T) {
	repo := newSQLiteRepo(t, false)
	ctx := context.Background()
	seedAnaBob(t, repo)

	deleted, err := repo.Delete(ctx, &ana)
	require.NoError(t, err)
	assert.Equal(t, &ana, deleted)

	found, err := repo.FindByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	deleted, err = repo.Delete(ctx, &ana)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestSQLite_ClearThenInitData(t *testing.T) {
	repo := newSQLiteRepo(t, true)
	ctx := context.Background()
	seedAnaBob(t, repo)

	res := repo.ClearData(ctx)
	require.True(t, res.OK())
	assert.Equal(t, int64(2), res.Deleted)

	require.NoError(t, repo.InitData(ctx))

	all, err := repository.Collect(repo.FindAll(ctx))
	require.NoError(t, err)
	assert.ElementsMatch(t, repository.Seed(), all)
}
