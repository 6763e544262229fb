package room

import (
	"sync"
	"time"

	"github.com/palemoky/tap-rush/internal/protocol"
	"github.com/palemoky/tap-rush/internal/types"
)

const (
	roomCodeLength = 6                                      // 房间号长度
	roomCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" // 房间号字符集

	// MinCapacity 和 MaxCapacity 限定房间人数
	MinCapacity = 2
	MaxCapacity = 3

	defaultHostName   = "Host"
	defaultPlayerName = "Player"
)

// Player 房间中的玩家
type Player struct {
	Client   types.ClientInterface
	Name     string // 昵称
	Finished bool   // 本局是否已完成全部回合
	Points   int    // 本局累计得分
}

// Room 游戏房间
type Room struct {
	Code        string             // 房间号
	Capacity    int                // 房间人数上限，创建后不变
	HostID      string             // 房主连接 ID
	Started     bool               // 对局是否已开始
	Players     map[string]*Player // 玩家列表
	PlayerOrder []string           // 玩家顺序（按加入先后）
	CreatedAt   time.Time          // 创建时间

	mu      sync.RWMutex
	removed bool // 已从注册表移除，受 mu 保护
}

// RoomManager 房间管理器
type RoomManager struct {
	leaderboard  types.LeaderboardInterface // 可选，nil 时不记录战绩
	lobbyTimeout time.Duration
	rooms        map[string]*Room
	mu           sync.RWMutex
}

// NewRoomManager 创建房间管理器
// lobbyTimeout 为 0 时不清理等待中的房间
func NewRoomManager(lb types.LeaderboardInterface, lobbyTimeout time.Duration) *RoomManager {
	rm := &RoomManager{
		leaderboard:  lb,
		lobbyTimeout: lobbyTimeout,
		rooms:        make(map[string]*Room),
	}

	if lobbyTimeout > 0 {
		go rm.cleanupLoop()
	}

	return rm
}

// broadcast 广播消息给房间内所有玩家，调用方需持有 r.mu
func (r *Room) broadcast(msg *protocol.Message) {
	for _, id := range r.PlayerOrder {
		r.Players[id].Client.SendMessage(msg)
	}
}

// allFinished 检查对局是否结束：满员且所有人都已完成，调用方需持有 r.mu
// 结果每次上报后重新计算，不做缓存
func (r *Room) allFinished() bool {
	if len(r.Players) != r.Capacity {
		return false
	}
	for _, player := range r.Players {
		if !player.Finished {
			return false
		}
	}
	return true
}

// resetProgress 重置所有玩家的进度，调用方需持有 r.mu
func (r *Room) resetProgress() {
	for _, player := range r.Players {
		player.Finished = false
		player.Points = 0
	}
}
