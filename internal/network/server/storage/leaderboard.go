package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/tap-rush/internal/protocol"
)

const (
	// Redis key
	playerStatsKey = "player:stats:"
	leaderboardKey = "leaderboard:score"
)

// PlayerStats 玩家统计数据
// 身份只有连接级 ID，跨局统计按昵称归并
type PlayerStats struct {
	Name string `json:"name"`

	Games int `json:"games"` // 总场次
	Wins  int `json:"wins"`  // 胜场（平局不计）
	Score int `json:"score"` // 累计得分
	Best  int `json:"best"`  // 单局最高分

	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// LeaderboardManager 排行榜管理器
type LeaderboardManager struct {
	redis *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{redis: client}
}

// RecordMatchResult 记录一局结果
func (lm *LeaderboardManager) RecordMatchResult(ctx context.Context, name string, points int, won bool) error {
	stats, err := lm.getStats(ctx, name)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	if stats == nil {
		stats = &PlayerStats{Name: name, CreatedAt: now}
	}

	stats.Games++
	if won {
		stats.Wins++
	}
	stats.Score += points
	if points > stats.Best {
		stats.Best = points
	}
	stats.LastPlayedAt = now

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("序列化玩家统计失败: %w", err)
	}

	pipe := lm.redis.Pipeline()
	pipe.Set(ctx, playerStatsKey+name, data, 0)
	pipe.ZIncrBy(ctx, leaderboardKey, float64(points), name)
	_, err = pipe.Exec(ctx)
	return err
}

// GetLeaderboard 获取累计得分最高的玩家
func (lm *LeaderboardManager) GetLeaderboard(ctx context.Context, limit int) ([]protocol.LeaderboardEntry, error) {
	members, err := lm.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]protocol.LeaderboardEntry, 0, len(members))
	for i, member := range members {
		name, _ := member.Member.(string)
		entry := protocol.LeaderboardEntry{
			Rank:  i + 1,
			Name:  name,
			Score: int(member.Score),
		}

		if stats, err := lm.getStats(ctx, name); err == nil && stats != nil {
			entry.Wins = stats.Wins
			entry.Games = stats.Games
			entry.Best = stats.Best
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// GetPlayerStats 获取单个玩家的统计，无记录时返回 nil
func (lm *LeaderboardManager) GetPlayerStats(ctx context.Context, name string) (*PlayerStats, error) {
	return lm.getStats(ctx, name)
}

// getStats 读取玩家统计，无记录时返回 nil
func (lm *LeaderboardManager) getStats(ctx context.Context, name string) (*PlayerStats, error) {
	data, err := lm.redis.Get(ctx, playerStatsKey+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("解析玩家统计失败: %w", err)
	}
	return &stats, nil
}
