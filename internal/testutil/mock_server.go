//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/tap-rush/internal/types"
)

// MockServer 实现 types.ServerContext 的 mock
type MockServer struct {
	mock.Mock
}

func (m *MockServer) GetLeaderboard() types.LeaderboardInterface {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(types.LeaderboardInterface)
}

func (m *MockServer) GetOnlineCount() int {
	args := m.Called()
	return args.Int(0)
}
