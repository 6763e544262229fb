//go:build !production

package room

import "time"

// AddRoomForTest 添加房间用于测试
func (rm *RoomManager) AddRoomForTest(room *Room) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.rooms[room.Code] = room
}

// SetCreatedAtForTest 回拨房间创建时间用于测试大厅清理
func (r *Room) SetCreatedAtForTest(t time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CreatedAt = t
}
