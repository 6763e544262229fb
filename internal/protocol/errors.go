package protocol

// 错误码
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001
	ErrCodeRateLimit  = 1002 // 速率限制

	ErrCodeRoomNotFound   = 2001
	ErrCodeRoomFull       = 2002
	ErrCodeAlreadyStarted = 2003
	ErrCodeNotHost        = 2004
	ErrCodeNotAMember     = 2005

	ErrCodeStatsUnavailable = 4001 // 排行榜服务不可用
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:          "未知错误",
	ErrCodeInvalidMsg:       "无效的消息格式",
	ErrCodeRateLimit:        "请求过于频繁",
	ErrCodeRoomNotFound:     "房间不存在",
	ErrCodeRoomFull:         "房间已满",
	ErrCodeAlreadyStarted:   "对局已经开始",
	ErrCodeNotHost:          "只有房主可以开始对局",
	ErrCodeNotAMember:       "您不在该房间中",
	ErrCodeStatsUnavailable: "排行榜暂不可用",
}
