package handlers

import (
	"context"
	"log"
	"time"

	"github.com/palemoky/tap-rush/internal/protocol"
	"github.com/palemoky/tap-rush/internal/types"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// handleGetLeaderboard 处理获取排行榜
func (h *Handler) handleGetLeaderboard(client types.ClientInterface, msg *protocol.Message) {
	lb := h.server.GetLeaderboard()
	if lb == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeStatsUnavailable))
		return
	}

	payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	limit := payload.Limit
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	entries, err := lb.GetLeaderboard(ctx, limit)
	if err != nil {
		log.Printf("获取排行榜失败: %v", err)
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeStatsUnavailable))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, protocol.LeaderboardResultPayload{
		Entries: entries,
	}))
}

// handleGetOnlineCount 处理获取在线人数
func (h *Handler) handleGetOnlineCount(client types.ClientInterface) {
	client.SendMessage(protocol.MustNewMessage(protocol.MsgOnlineCount, protocol.OnlineCountPayload{
		Count: h.server.GetOnlineCount(),
	}))
}
