package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom MessageType = "create_room" // 创建房间
	MsgJoinRoom   MessageType = "join_room"   // 加入房间
	MsgLeaveRoom  MessageType = "leave_room"  // 离开房间

	// 对局操作
	MsgStartGame      MessageType = "start_game"      // 房主开始对局
	MsgPlayerFinished MessageType = "player_finished" // 玩家完成本轮全部回合
	MsgRestartGame    MessageType = "restart_game"    // 再来一局

	// 查询
	MsgGetLeaderboard MessageType = "get_leaderboard"  // 获取排行榜
	MsgGetOnlineCount MessageType = "get_online_count" // 获取在线人数
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected   MessageType = "connected"    // 连接成功
	MsgPong        MessageType = "pong"         // 心跳 pong
	MsgOnlineCount MessageType = "online_count" // 在线人数

	// 房间相关
	MsgRoomCreated MessageType = "room_created" // 房间创建成功
	MsgRoomJoined  MessageType = "room_joined"  // 加入房间成功
	MsgRoomLeft    MessageType = "room_left"    // 离开房间成功
	MsgRoomUpdate  MessageType = "room_update"  // 房间状态快照广播
	MsgRoomClosed  MessageType = "room_closed"  // 房间被关闭（大厅超时清理）

	// 对局流程
	MsgGameStarted MessageType = "game_started" // 对局开始（含重开）
	MsgGameOver    MessageType = "game_over"    // 对局结束，附带结果

	// 查询结果
	MsgLeaderboardResult MessageType = "leaderboard_result" // 排行榜结果

	// 错误
	MsgError MessageType = "error" // 错误消息
)
