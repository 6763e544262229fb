package handlers

import (
	"errors"
	"log"

	"github.com/palemoky/tap-rush/internal/apperrors"
	"github.com/palemoky/tap-rush/internal/game/room"
	"github.com/palemoky/tap-rush/internal/protocol"
	"github.com/palemoky/tap-rush/internal/types"
)

// Handler 消息处理器
// 自身无状态，房间状态全部在 RoomManager 中
type Handler struct {
	server types.ServerContext
	rooms  *room.RoomManager
}

// NewHandler 创建处理器
func NewHandler(s types.ServerContext, rm *room.RoomManager) *Handler {
	return &Handler{server: s, rooms: rm}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	switch msg.Type {
	// 连接操作
	case protocol.MsgPing:
		h.handlePing(client, msg)

	// 房间操作
	case protocol.MsgCreateRoom:
		h.handleCreateRoom(client, msg)
	case protocol.MsgJoinRoom:
		h.handleJoinRoom(client, msg)
	case protocol.MsgLeaveRoom:
		h.handleLeaveRoom(client, msg)

	// 对局操作
	case protocol.MsgStartGame:
		h.handleStartGame(client, msg)
	case protocol.MsgPlayerFinished:
		h.handlePlayerFinished(client, msg)
	case protocol.MsgRestartGame:
		h.handleRestartGame(client, msg)

	// 查询
	case protocol.MsgGetLeaderboard:
		h.handleGetLeaderboard(client, msg)
	case protocol.MsgGetOnlineCount:
		h.handleGetOnlineCount(client)

	default:
		log.Printf("⚠️ 未知消息类型: '%s' (连接: %s)", msg.Type, client.GetID())
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// sendError 将业务错误回给请求方
// 校验失败只回给请求方，不触发任何房间广播
func (h *Handler) sendError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
