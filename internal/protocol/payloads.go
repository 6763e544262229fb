package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	Capacity int    `json:"capacity"` // 房间人数，2 或 3
	Name     string `json:"name"`     // 昵称，为空时使用默认值
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomCode string `json:"room_code"`
	Name     string `json:"name"`
}

// StartGamePayload 开始对局请求
type StartGamePayload struct {
	RoomCode string `json:"room_code"`
}

// PlayerFinishedPayload 回合完成上报
// 客户端在本地跑完自己的回合序列后上报总分，服务端不做校验
type PlayerFinishedPayload struct {
	RoomCode    string `json:"room_code"`
	TotalPoints int    `json:"total_points"`
}

// RestartGamePayload 再来一局请求
type RestartGamePayload struct {
	RoomCode string `json:"room_code"`
}

// LeaveRoomPayload 离开房间请求
type LeaveRoomPayload struct {
	RoomCode string `json:"room_code"`
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Limit int `json:"limit"` // 数量，0 使用默认值
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID string `json:"player_id"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// OnlineCountPayload 在线人数
type OnlineCountPayload struct {
	Count int `json:"count"`
}

// PlayerInfo 房间内玩家信息
type PlayerInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Finished bool   `json:"finished"`
	Points   int    `json:"points"`
}

// RoomSummary 房间状态快照
type RoomSummary struct {
	Code     string       `json:"code"`
	Capacity int          `json:"capacity"`
	Started  bool         `json:"started"`
	HostID   string       `json:"host_id"`
	Players  []PlayerInfo `json:"players"` // 按加入顺序
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	RoomCode string      `json:"room_code"`
	Room     RoomSummary `json:"room"`
}

// RoomJoinedPayload 加入房间成功响应
type RoomJoinedPayload struct {
	RoomCode string      `json:"room_code"`
	Room     RoomSummary `json:"room"`
}

// RoomLeftPayload 离开房间成功响应
type RoomLeftPayload struct {
	RoomCode string `json:"room_code"`
}

// RoomClosedPayload 房间被关闭通知
type RoomClosedPayload struct {
	RoomCode string `json:"room_code"`
	Reason   string `json:"reason"`
}

// GameStartedPayload 对局开始广播
type GameStartedPayload struct {
	RoomCode string `json:"room_code"`
}

// PlayerResult 单个玩家的对局结果
type PlayerResult struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// GameOverPayload 对局结束广播
// Winners 为得分严格最高的玩家昵称集合，平局时包含所有并列者
type GameOverPayload struct {
	Results []PlayerResult `json:"results"` // 按加入顺序
	Winners []string       `json:"winners"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Wins  int    `json:"wins"`
	Games int    `json:"games"`
	Best  int    `json:"best"` // 单局最高分
}

// LeaderboardResultPayload 排行榜结果
type LeaderboardResultPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
