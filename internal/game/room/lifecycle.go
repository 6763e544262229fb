package room

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/palemoky/tap-rush/internal/protocol"
)

// generateRoomCode 生成房间号，与现存房间冲突时重新生成
// 调用方需持有 rm.mu
func (rm *RoomManager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
		}
		codeStr := string(code)
		if _, exists := rm.rooms[codeStr]; !exists {
			return codeStr
		}
	}
}

// cleanupLoop 定期清理超时的大厅房间
func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rm.cleanup()
	}
}

// cleanup 清理在大厅中等待过久的房间
// 只清理从未开始的房间，已开始的房间保留到所有人离开
func (rm *RoomManager) cleanup() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	now := time.Now()

	for code, room := range rm.rooms {
		room.mu.Lock()
		if !room.Started && now.Sub(room.CreatedAt) > rm.lobbyTimeout {
			room.broadcast(protocol.MustNewMessage(protocol.MsgRoomClosed, protocol.RoomClosedPayload{
				RoomCode: code,
				Reason:   "等待超时，房间已关闭",
			}))
			for _, p := range room.Players {
				p.Client.SetRoom("")
			}
			room.removed = true
			delete(rm.rooms, code)
			log.Printf("🧹 房间 %s 等待超时已清理", code)
		}
		room.mu.Unlock()
	}
}
