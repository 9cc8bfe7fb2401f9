package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
	"github.com/SpirahlDev/sig-backend/internal/pkg/queryparams"
	"github.com/SpirahlDev/sig-backend/internal/repository/postgres"
)

// testDB connects to the database named by TEST_DATABASE_URL and applies
// the migrations. Tests are skipped when the variable is unset, so the
// suite only runs against a disposable local database.
func testDB(t *testing.T) *postgres.DB {
	t.Helper()

	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration tests")
	}

	require.NoError(t, postgres.RunMigrations(databaseURL))

	sqlxDB, err := sqlx.Connect("pgx", databaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { sqlxDB.Close() })

	return postgres.NewDBForTest(sqlxDB, zap.NewNop())
}

func TestSiteRepository_Lifecycle(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	photos := postgres.NewPhotoRepository(db)
	sites := postgres.NewSiteRepository(db, photos)

	city := "Integration City"
	created, err := sites.Insert(ctx, map[string]interface{}{
		"name": "Integration Test Site",
		"lat":  6.5,
		"lon":  -5.5,
		"city": city,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	t.Cleanup(func() { _ = sites.Delete(ctx, created.ID) })

	t.Run("get by id loads relations", func(t *testing.T) {
		got, err := sites.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Integration Test Site", got.Name)
		require.NotNil(t, got.City)
		assert.Equal(t, city, *got.City)
	})

	t.Run("list filters by city", func(t *testing.T) {
		spec := queryparams.MustSpec(postgres.SiteColumns)
		q := queryparams.NewBuilder(spec, queryparams.Params{
			Filter: map[string]interface{}{"city": city},
		}, zap.NewNop()).Build()

		items, total, err := sites.List(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, created.ID, items[0].ID)
	})

	t.Run("nearby finds the site and orders by distance", func(t *testing.T) {
		found, err := sites.FindNearby(ctx, 6.5, -5.5, 5)
		require.NoError(t, err)

		var hit bool
		for _, s := range found {
			if s.ID == created.ID {
				hit = true
				require.NotNil(t, s.Distance)
				assert.InDelta(t, 0, *s.Distance, 0.001)
			}
		}
		assert.True(t, hit)
	})

	t.Run("nearby excludes sites outside the radius", func(t *testing.T) {
		// ~157 km away
		found, err := sites.FindNearby(ctx, 7.9, -5.5, 10)
		require.NoError(t, err)
		for _, s := range found {
			assert.NotEqual(t, created.ID, s.ID)
		}
	})

	t.Run("update changes only provided columns", func(t *testing.T) {
		updated, err := sites.Update(ctx, created.ID, map[string]interface{}{"name": "Renamed Site"})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Site", updated.Name)
		require.NotNil(t, updated.City)
		assert.Equal(t, city, *updated.City)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, sites.Delete(ctx, created.ID))

		_, err := sites.GetByID(ctx, created.ID)
		assert.Equal(t, errors.ErrSiteNotFound, err)

		assert.Equal(t, errors.ErrSiteNotFound, sites.Delete(ctx, created.ID))
	})
}

func TestSiteRepository_PhotoAttachments(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	photos := postgres.NewPhotoRepository(db)
	sites := postgres.NewSiteRepository(db, photos)

	site, err := sites.Insert(ctx, map[string]interface{}{
		"name": "Photo Test Site",
		"lat":  1.0,
		"lon":  1.0,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sites.Delete(ctx, site.ID) })

	photo, err := photos.Create(ctx, "/storage/sites/test.jpg", 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = photos.Delete(ctx, photo.ID) })

	require.NoError(t, photos.Attach(ctx, site.ID, photo.ID))

	t.Run("attachment visible through eager load", func(t *testing.T) {
		got, err := sites.GetByID(ctx, site.ID)
		require.NoError(t, err)
		require.Len(t, got.Photos, 1)
		assert.Equal(t, photo.ID, got.Photos[0].ID)
	})

	t.Run("attachment lookup", func(t *testing.T) {
		att, err := photos.GetAttachment(ctx, site.ID, photo.ID)
		require.NoError(t, err)
		require.NotNil(t, att)
		assert.Equal(t, site.ID, att.SiteID)

		missing, err := photos.GetAttachment(ctx, site.ID, photo.ID+9999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("detach removes the link only", func(t *testing.T) {
		require.NoError(t, photos.Detach(ctx, site.ID, photo.ID))

		got, err := sites.GetByID(ctx, site.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Photos)

		still, err := photos.GetByID(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, photo.URL, still.URL)
	})
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	photos := postgres.NewPhotoRepository(db)
	sites := postgres.NewSiteRepository(db, photos)

	var insertedID int64
	boom := errors.ErrDatabaseError
	err := db.WithinTx(ctx, func(ctx context.Context) error {
		site, err := sites.Insert(ctx, map[string]interface{}{
			"name": "Rollback Test Site",
			"lat":  2.0,
			"lon":  2.0,
		})
		if err != nil {
			return err
		}
		insertedID = site.ID
		return boom
	})

	assert.Equal(t, boom, err)
	_, err = sites.GetByID(ctx, insertedID)
	assert.Equal(t, errors.ErrSiteNotFound, err)
}

func TestCrudRepository_Stats(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	types := postgres.NewSiteTypeRepository(db)

	stats, err := types.Stats(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Total, 1)
	require.NotNil(t, stats.LatestEntry)
	require.NotNil(t, stats.OldestEntry)
	assert.False(t, stats.LatestEntry.CreatedAt.Before(stats.OldestEntry.CreatedAt))
}
