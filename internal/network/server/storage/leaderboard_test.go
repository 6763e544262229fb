package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLeaderboardManager(t *testing.T) (*LeaderboardManager, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	lm := NewLeaderboardManager(client)
	return lm, mr
}

func TestLeaderboard_RecordMatchResult_NewPlayer(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	err := lm.RecordMatchResult(ctx, "Ann", 25, true)
	assert.NoError(t, err)

	stats, err := lm.GetPlayerStats(ctx, "Ann")
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, "Ann", stats.Name)
	assert.Equal(t, 1, stats.Games)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 25, stats.Score)
	assert.Equal(t, 25, stats.Best)
	assert.NotZero(t, stats.CreatedAt)
}

func TestLeaderboard_RecordMatchResult_Update(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	err := lm.RecordMatchResult(ctx, "Ann", 25, true)
	assert.NoError(t, err)

	// 第二局输了，得分更低，best 不变
	err = lm.RecordMatchResult(ctx, "Ann", 10, false)
	assert.NoError(t, err)

	stats, err := lm.GetPlayerStats(ctx, "Ann")
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 2, stats.Games)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 35, stats.Score)
	assert.Equal(t, 25, stats.Best)
}

func TestLeaderboard_RecordMatchResult_BestUpdated(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	assert.NoError(t, lm.RecordMatchResult(ctx, "Ann", 10, false))
	assert.NoError(t, lm.RecordMatchResult(ctx, "Ann", 40, true))

	stats, err := lm.GetPlayerStats(ctx, "Ann")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 40, stats.Best)
}

func TestLeaderboard_GetLeaderboard(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	assert.NoError(t, lm.RecordMatchResult(ctx, "Ann", 30, true))
	assert.NoError(t, lm.RecordMatchResult(ctx, "Bob", 15, false))
	assert.NoError(t, lm.RecordMatchResult(ctx, "Bob", 20, true))

	entries, err := lm.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Bob", entries[0].Name) // 累计 35
	assert.Equal(t, 35, entries[0].Score)
	assert.Equal(t, 2, entries[0].Games)
	assert.Equal(t, 1, entries[0].Wins)
	assert.Equal(t, 20, entries[0].Best)

	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "Ann", entries[1].Name)
	assert.Equal(t, 30, entries[1].Score)
}

func TestLeaderboard_GetLeaderboard_LimitRespected(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	names := []string{"Ann", "Bob", "Cat", "Dan"}
	for i, name := range names {
		assert.NoError(t, lm.RecordMatchResult(ctx, name, (i+1)*10, false))
	}

	entries, err := lm.GetLeaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Dan", entries[0].Name)
	assert.Equal(t, "Cat", entries[1].Name)
}

func TestLeaderboard_GetPlayerStats_Unknown(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()

	stats, err := lm.GetPlayerStats(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, stats)
}
