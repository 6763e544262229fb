package apperrors

import (
	"github.com/palemoky/tap-rush/internal/protocol"
)

// GameError 游戏错误，携带协议错误码
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound   = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrRoomFull       = &GameError{Code: protocol.ErrCodeRoomFull, Message: "房间已满"}
	ErrAlreadyStarted = &GameError{Code: protocol.ErrCodeAlreadyStarted, Message: "对局已经开始"}
	ErrNotHost        = &GameError{Code: protocol.ErrCodeNotHost, Message: "只有房主可以开始对局"}
	ErrNotAMember     = &GameError{Code: protocol.ErrCodeNotAMember, Message: "您不在该房间中"}

	// 载荷校验错误，协议上归入无效消息
	ErrInvalidCapacity = &GameError{Code: protocol.ErrCodeInvalidMsg, Message: "无效的房间人数"}
)
