package room

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/palemoky/tap-rush/internal/apperrors"
	"github.com/palemoky/tap-rush/internal/protocol"
	"github.com/palemoky/tap-rush/internal/types"
)

// CreateRoom 创建房间，创建者自动成为房主和第一名成员
func (rm *RoomManager) CreateRoom(client types.ClientInterface, capacity int, name string) (*Room, error) {
	if capacity < MinCapacity || capacity > MaxCapacity {
		return nil, apperrors.ErrInvalidCapacity
	}

	if name = strings.TrimSpace(name); name == "" {
		name = defaultHostName
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	// 生成唯一房间号
	code := rm.generateRoomCode()

	room := &Room{
		Code:        code,
		Capacity:    capacity,
		HostID:      client.GetID(),
		Players:     make(map[string]*Player),
		PlayerOrder: make([]string, 0, capacity),
		CreatedAt:   time.Now(),
	}

	room.Players[client.GetID()] = &Player{Client: client, Name: name}
	room.PlayerOrder = append(room.PlayerOrder, client.GetID())
	client.SetName(name)
	client.SetRoom(code)

	rm.rooms[code] = room

	log.Printf("🏠 房间 %s 已创建，房主 %s（%d 人局）", code, name, capacity)

	room.broadcast(protocol.MustNewMessage(protocol.MsgRoomUpdate, room.summary()))

	return room, nil
}

// lockRoom 查找房间并持有其锁返回，找不到时报房间不存在
// 注册表锁在房间锁之前释放，等锁期间房间可能已被移除，靠 removed 标记补上这个窗口
func (rm *RoomManager) lockRoom(code string) (*Room, error) {
	rm.mu.RLock()
	room, exists := rm.rooms[code]
	rm.mu.RUnlock()
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	room.mu.Lock()
	if room.removed {
		room.mu.Unlock()
		return nil, apperrors.ErrRoomNotFound
	}
	return room, nil
}

// JoinRoom 加入房间
// 校验顺序固定：房间不存在 → 对局已开始 → 房间已满
func (rm *RoomManager) JoinRoom(client types.ClientInterface, code, name string) (*Room, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	room, err := rm.lockRoom(code)
	if err != nil {
		return nil, err
	}
	defer room.mu.Unlock()

	if room.Started {
		return nil, apperrors.ErrAlreadyStarted
	}
	if len(room.Players) >= room.Capacity {
		return nil, apperrors.ErrRoomFull
	}

	if name = strings.TrimSpace(name); name == "" {
		name = defaultPlayerName
	}

	room.Players[client.GetID()] = &Player{Client: client, Name: name}
	room.PlayerOrder = append(room.PlayerOrder, client.GetID())
	client.SetName(name)
	client.SetRoom(code)

	log.Printf("👤 玩家 %s 加入房间 %s (%d/%d)", name, code, len(room.Players), room.Capacity)

	room.broadcast(protocol.MustNewMessage(protocol.MsgRoomUpdate, room.summary()))

	return room, nil
}

// StartGame 房主开始对局，所有玩家进度清零
func (rm *RoomManager) StartGame(client types.ClientInterface, code string) (*Room, error) {
	room, err := rm.lockRoom(code)
	if err != nil {
		return nil, err
	}
	defer room.mu.Unlock()

	if client.GetID() != room.HostID {
		return nil, apperrors.ErrNotHost
	}

	room.Started = true
	room.resetProgress()

	log.Printf("🚦 房间 %s 对局开始（%d 名玩家）", code, len(room.Players))

	room.broadcast(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.GameStartedPayload{RoomCode: code}))
	room.broadcast(protocol.MustNewMessage(protocol.MsgRoomUpdate, room.summary()))

	return room, nil
}

// ReportFinished 玩家上报本局总分
// 得分由客户端自行统计，服务端不做合理性校验
func (rm *RoomManager) ReportFinished(client types.ClientInterface, code string, totalPoints int) (*Room, error) {
	room, err := rm.lockRoom(code)
	if err != nil {
		return nil, err
	}
	defer room.mu.Unlock()

	player, exists := room.Players[client.GetID()]
	if !exists {
		return nil, apperrors.ErrNotAMember
	}

	player.Finished = true
	player.Points = totalPoints

	log.Printf("🏁 玩家 %s 在房间 %s 完成，得分 %d", player.Name, code, totalPoints)

	room.broadcast(protocol.MustNewMessage(protocol.MsgRoomUpdate, room.summary()))

	if room.allFinished() {
		results := room.results()
		winners := WinnersOf(results)
		log.Printf("🏆 房间 %s 对局结束，获胜者: %v", code, winners)

		room.broadcast(protocol.MustNewMessage(protocol.MsgGameOver, protocol.GameOverPayload{
			Results: results,
			Winners: winners,
		}))

		// 房间保留，等待可能的再来一局
		rm.recordResults(results, winners)
	}

	return room, nil
}

// RestartGame 再来一局：进度清零，房间和成员保留
// 没有房主限制，结算界面上任何成员都可以发起
func (rm *RoomManager) RestartGame(client types.ClientInterface, code string) (*Room, error) {
	room, err := rm.lockRoom(code)
	if err != nil {
		return nil, err
	}
	defer room.mu.Unlock()

	room.resetProgress()
	room.Started = true

	log.Printf("🔄 房间 %s 重新开局", code)

	room.broadcast(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.GameStartedPayload{RoomCode: code}))
	room.broadcast(protocol.MustNewMessage(protocol.MsgRoomUpdate, room.summary()))

	return room, nil
}

// LeaveRoom 离开房间
// 房主离开时房主移交给任意剩余成员；房间空了就从注册表删除
func (rm *RoomManager) LeaveRoom(client types.ClientInterface, code string) error {
	room, err := rm.lockRoom(code)
	if err != nil {
		return err
	}

	rm.removePlayerLocked(room, client)

	if len(room.Players) == 0 {
		// 先在房间锁内打移除标记，再从注册表删除
		room.removed = true
		room.mu.Unlock()
		rm.RemoveRoom(room.Code)
		log.Printf("🏠 房间 %s 已解散", room.Code)
		return nil
	}

	room.broadcast(protocol.MustNewMessage(protocol.MsgRoomUpdate, room.summary()))
	room.mu.Unlock()

	return nil
}

// HandleDisconnect 连接断开时的清理，语义与离开房间一致
// 设计上一个连接至多属于一个房间，这里仍然扫描全部房间兜底
func (rm *RoomManager) HandleDisconnect(client types.ClientInterface) {
	rm.mu.RLock()
	codes := make([]string, 0, len(rm.rooms))
	for code := range rm.rooms {
		codes = append(codes, code)
	}
	rm.mu.RUnlock()

	for _, code := range codes {
		room, err := rm.lockRoom(code)
		if err != nil {
			continue
		}

		if _, member := room.Players[client.GetID()]; !member {
			room.mu.Unlock()
			continue
		}

		rm.removePlayerLocked(room, client)
		log.Printf("📴 玩家 %s 断线离开房间 %s", client.GetName(), code)

		if len(room.Players) == 0 {
			room.removed = true
			room.mu.Unlock()
			rm.RemoveRoom(code)
			log.Printf("🏠 房间 %s 已解散", code)
			continue
		}

		room.broadcast(protocol.MustNewMessage(protocol.MsgRoomUpdate, room.summary()))
		room.mu.Unlock()
	}
}

// removePlayerLocked 从房间移除玩家并处理房主移交，调用方需持有 room.mu
func (rm *RoomManager) removePlayerLocked(room *Room, client types.ClientInterface) {
	id := client.GetID()

	delete(room.Players, id)
	for i, pid := range room.PlayerOrder {
		if pid == id {
			room.PlayerOrder = append(room.PlayerOrder[:i], room.PlayerOrder[i+1:]...)
			break
		}
	}
	client.SetRoom("")

	if room.HostID == id {
		if len(room.PlayerOrder) > 0 {
			room.HostID = room.PlayerOrder[0]
			log.Printf("👑 房间 %s 房主移交给 %s", room.Code, room.Players[room.HostID].Name)
		} else {
			room.HostID = ""
		}
	}
}

// GetRoom 获取房间，不存在时返回 nil
func (rm *RoomManager) GetRoom(code string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[strings.ToUpper(strings.TrimSpace(code))]
}

// RemoveRoom 删除房间，幂等
func (rm *RoomManager) RemoveRoom(code string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	delete(rm.rooms, code)
}

// RoomCount 当前房间数量
func (rm *RoomManager) RoomCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.rooms)
}

// recordResults 对局结束后异步更新排行榜
// 平局不记胜场，只有唯一的最高分玩家计入 won
func (rm *RoomManager) recordResults(results []protocol.PlayerResult, winners []string) {
	if rm.leaderboard == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		for _, result := range results {
			won := len(winners) == 1 && winners[0] == result.Name
			if err := rm.leaderboard.RecordMatchResult(ctx, result.Name, result.Points, won); err != nil {
				log.Printf("排行榜更新失败: %v", err)
			}
		}
	}()
}
