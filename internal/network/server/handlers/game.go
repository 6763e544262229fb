package handlers

import (
	"github.com/palemoky/tap-rush/internal/protocol"
	"github.com/palemoky/tap-rush/internal/types"
)

// handleStartGame 房主开始对局
// 成功时 game_started 和快照广播会送达请求方，无需单独回执
func (h *Handler) handleStartGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.StartGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if _, err := h.rooms.StartGame(client, payload.RoomCode); err != nil {
		h.sendError(client, err)
	}
}

// handlePlayerFinished 玩家上报本局总分
func (h *Handler) handlePlayerFinished(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayerFinishedPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if _, err := h.rooms.ReportFinished(client, payload.RoomCode, payload.TotalPoints); err != nil {
		h.sendError(client, err)
	}
}

// handleRestartGame 再来一局
func (h *Handler) handleRestartGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.RestartGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if _, err := h.rooms.RestartGame(client, payload.RoomCode); err != nil {
		h.sendError(client, err)
	}
}
