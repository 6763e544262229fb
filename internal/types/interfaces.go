package types

import (
	"context"

	"github.com/palemoky/tap-rush/internal/protocol"
)

// ClientInterface 客户端连接接口
type ClientInterface interface {
	GetID() string
	GetName() string
	SetName(name string)
	GetRoom() string
	SetRoom(roomCode string)
	SendMessage(msg *protocol.Message)
	Close()
}

// LeaderboardInterface 排行榜接口
type LeaderboardInterface interface {
	RecordMatchResult(ctx context.Context, name string, points int, won bool) error
	GetLeaderboard(ctx context.Context, limit int) ([]protocol.LeaderboardEntry, error)
}

// ServerContext 服务器上下文接口 - 避免 handlers 与 server 的循环依赖
type ServerContext interface {
	GetLeaderboard() LeaderboardInterface // 排行榜不可用时返回 nil
	GetOnlineCount() int
}
