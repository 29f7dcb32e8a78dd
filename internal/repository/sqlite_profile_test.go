package repository

import (
	"context"
	"testing"

	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteCapacityProfileRepo_GetReturnsDefaultsWhenUnset(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedPerson(t, database)
	repo := NewSQLiteCapacityProfileRepo(database)

	profile, err := repo.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 240, profile.DailyMaxMin)
	assert.Equal(t, 90, profile.SubjectDailyMaxMin)
	assert.Equal(t, domain.DistributeEven, profile.Distribution)
	assert.Equal(t, 10.0, profile.WeightDayStride)
}

func TestSQLiteCapacityProfileRepo_UpsertRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedPerson(t, database)
	repo := NewSQLiteCapacityProfileRepo(database)
	ctx := context.Background()

	profile := domain.DefaultCapacityProfile(p.ID)
	profile.DailyMaxMin = 180
	profile.SubjectDailyMaxMin = 60
	profile.Distribution = domain.DistributeFront
	profile.WeightGapFill = 42.5
	require.NoError(t, repo.Upsert(ctx, profile))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 180, got.DailyMaxMin)
	assert.Equal(t, 60, got.SubjectDailyMaxMin)
	assert.Equal(t, domain.DistributeFront, got.Distribution)
	assert.Equal(t, 42.5, got.WeightGapFill)
}

func TestSQLiteCapacityProfileRepo_UpsertOverwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedPerson(t, database)
	repo := NewSQLiteCapacityProfileRepo(database)
	ctx := context.Background()

	profile := domain.DefaultCapacityProfile(p.ID)
	require.NoError(t, repo.Upsert(ctx, profile))

	profile.DailyMaxMin = 300
	require.NoError(t, repo.Upsert(ctx, profile))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 300, got.DailyMaxMin)
}
