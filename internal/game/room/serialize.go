package room

import (
	"github.com/palemoky/tap-rush/internal/protocol"
)

// summary 构建房间快照，调用方需持有 r.mu
func (r *Room) summary() protocol.RoomSummary {
	players := make([]protocol.PlayerInfo, 0, len(r.Players))
	for _, id := range r.PlayerOrder {
		p := r.Players[id]
		players = append(players, protocol.PlayerInfo{
			ID:       id,
			Name:     p.Name,
			Finished: p.Finished,
			Points:   p.Points,
		})
	}

	return protocol.RoomSummary{
		Code:     r.Code,
		Capacity: r.Capacity,
		Started:  r.Started,
		HostID:   r.HostID,
		Players:  players,
	}
}

// Summary 构建房间快照
func (r *Room) Summary() protocol.RoomSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.summary()
}

// results 按加入顺序收集对局结果，调用方需持有 r.mu
func (r *Room) results() []protocol.PlayerResult {
	results := make([]protocol.PlayerResult, 0, len(r.Players))
	for _, id := range r.PlayerOrder {
		p := r.Players[id]
		results = append(results, protocol.PlayerResult{
			Name:   p.Name,
			Points: p.Points,
		})
	}
	return results
}

// WinnersOf 返回得分严格最高的玩家昵称
// 最高分并列时返回全部并列者，由展示层呈现平局
func WinnersOf(results []protocol.PlayerResult) []string {
	if len(results) == 0 {
		return nil
	}

	max := results[0].Points
	for _, r := range results[1:] {
		if r.Points > max {
			max = r.Points
		}
	}

	var winners []string
	for _, r := range results {
		if r.Points == max {
			winners = append(winners, r.Name)
		}
	}
	return winners
}
