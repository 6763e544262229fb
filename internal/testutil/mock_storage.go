//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/tap-rush/internal/protocol"
)

// MockLeaderboard 实现 types.LeaderboardInterface 的 mock
type MockLeaderboard struct {
	mock.Mock
}

func (m *MockLeaderboard) RecordMatchResult(ctx context.Context, name string, points int, won bool) error {
	args := m.Called(ctx, name, points, won)
	return args.Error(0)
}

func (m *MockLeaderboard) GetLeaderboard(ctx context.Context, limit int) ([]protocol.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]protocol.LeaderboardEntry), args.Error(1)
}
