package handlers

import (
	"github.com/palemoky/tap-rush/internal/protocol"
	"github.com/palemoky/tap-rush/internal/types"
)

// handleCreateRoom 处理创建房间
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if code := client.GetRoom(); code != "" {
		_ = h.rooms.LeaveRoom(client, code)
	}

	newRoom, err := h.rooms.CreateRoom(client, payload.Capacity, payload.Name)
	if err != nil {
		h.sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomCode: newRoom.Code,
		Room:     newRoom.Summary(),
	}))
}

// handleJoinRoom 处理加入房间
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if code := client.GetRoom(); code != "" {
		_ = h.rooms.LeaveRoom(client, code)
	}

	joined, err := h.rooms.JoinRoom(client, payload.RoomCode, payload.Name)
	if err != nil {
		h.sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		RoomCode: joined.Code,
		Room:     joined.Summary(),
	}))
}

// handleLeaveRoom 处理离开房间
func (h *Handler) handleLeaveRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.LeaveRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.rooms.LeaveRoom(client, payload.RoomCode); err != nil {
		h.sendError(client, err)
		return
	}

	// 离开者已不在广播组里，单独回执
	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomLeft, protocol.RoomLeftPayload{
		RoomCode: payload.RoomCode,
	}))
}
