package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tap-rush/internal/protocol"
	"github.com/palemoky/tap-rush/internal/testutil"
)

func TestHandleStartGame_NotHost(t *testing.T) {
	t.Parallel()

	h, rm := newTestHandler()
	host := testutil.NewSimpleClient("c1")
	joiner := testutil.NewSimpleClient("c2")
	created, err := rm.CreateRoom(host, 2, "Ann")
	require.NoError(t, err)
	_, err = rm.JoinRoom(joiner, created.Code, "Bob")
	require.NoError(t, err)

	h.Handle(joiner, protocol.MustNewMessage(protocol.MsgStartGame, protocol.StartGamePayload{
		RoomCode: created.Code,
	}))

	errPayload := parseError(t, joiner.LastMessage())
	assert.Equal(t, protocol.ErrCodeNotHost, errPayload.Code)
	assert.False(t, created.Summary().Started)
}

func TestHandleStartGame(t *testing.T) {
	t.Parallel()

	h, rm := newTestHandler()
	host := testutil.NewSimpleClient("c1")
	joiner := testutil.NewSimpleClient("c2")
	created, err := rm.CreateRoom(host, 2, "Ann")
	require.NoError(t, err)
	_, err = rm.JoinRoom(joiner, created.Code, "Bob")
	require.NoError(t, err)

	h.Handle(host, protocol.MustNewMessage(protocol.MsgStartGame, protocol.StartGamePayload{
		RoomCode: created.Code,
	}))

	// 广播即回执，双方都能看到开局
	assert.Len(t, host.SentOfType(protocol.MsgGameStarted), 1)
	assert.Len(t, joiner.SentOfType(protocol.MsgGameStarted), 1)
	assert.True(t, created.Summary().Started)
	assert.Empty(t, host.SentOfType(protocol.MsgError))
}

func TestHandlePlayerFinished_FullMatch(t *testing.T) {
	t.Parallel()

	h, rm := newTestHandler()
	ann := testutil.NewSimpleClient("c1")
	bob := testutil.NewSimpleClient("c2")
	created, err := rm.CreateRoom(ann, 2, "Ann")
	require.NoError(t, err)
	_, err = rm.JoinRoom(bob, created.Code, "Bob")
	require.NoError(t, err)
	_, err = rm.StartGame(ann, created.Code)
	require.NoError(t, err)

	h.Handle(ann, protocol.MustNewMessage(protocol.MsgPlayerFinished, protocol.PlayerFinishedPayload{
		RoomCode:    created.Code,
		TotalPoints: 15,
	}))
	assert.Empty(t, ann.SentOfType(protocol.MsgGameOver))

	h.Handle(bob, protocol.MustNewMessage(protocol.MsgPlayerFinished, protocol.PlayerFinishedPayload{
		RoomCode:    created.Code,
		TotalPoints: 20,
	}))

	overMsgs := ann.SentOfType(protocol.MsgGameOver)
	require.Len(t, overMsgs, 1)
	over, err := protocol.ParsePayload[protocol.GameOverPayload](overMsgs[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob"}, over.Winners)
}

func TestHandlePlayerFinished_NotAMember(t *testing.T) {
	t.Parallel()

	h, rm := newTestHandler()
	host := testutil.NewSimpleClient("c1")
	created, err := rm.CreateRoom(host, 2, "Ann")
	require.NoError(t, err)

	outsider := testutil.NewSimpleClient("c9")
	h.Handle(outsider, protocol.MustNewMessage(protocol.MsgPlayerFinished, protocol.PlayerFinishedPayload{
		RoomCode:    created.Code,
		TotalPoints: 99,
	}))

	errPayload := parseError(t, outsider.LastMessage())
	assert.Equal(t, protocol.ErrCodeNotAMember, errPayload.Code)
}

func TestHandlePlayerFinished_MissingPayload(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	client := testutil.NewSimpleClient("c1")

	// 缺失 payload 按房间号为空处理，报房间不存在而不是崩溃
	h.Handle(client, &protocol.Message{Type: protocol.MsgPlayerFinished})

	errPayload := parseError(t, client.LastMessage())
	assert.Equal(t, protocol.ErrCodeRoomNotFound, errPayload.Code)
}

func TestHandleRestartGame(t *testing.T) {
	t.Parallel()

	h, rm := newTestHandler()
	ann := testutil.NewSimpleClient("c1")
	bob := testutil.NewSimpleClient("c2")
	created, err := rm.CreateRoom(ann, 2, "Ann")
	require.NoError(t, err)
	_, err = rm.JoinRoom(bob, created.Code, "Bob")
	require.NoError(t, err)
	_, err = rm.StartGame(ann, created.Code)
	require.NoError(t, err)
	_, err = rm.ReportFinished(ann, created.Code, 10)
	require.NoError(t, err)
	_, err = rm.ReportFinished(bob, created.Code, 20)
	require.NoError(t, err)

	// 非房主从结算界面发起再来一局
	h.Handle(bob, protocol.MustNewMessage(protocol.MsgRestartGame, protocol.RestartGamePayload{
		RoomCode: created.Code,
	}))

	summary := created.Summary()
	assert.True(t, summary.Started)
	for _, p := range summary.Players {
		assert.False(t, p.Finished)
		assert.Equal(t, 0, p.Points)
	}
	assert.Empty(t, bob.SentOfType(protocol.MsgError))
}

func TestHandleRestartGame_NotFound(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	client := testutil.NewSimpleClient("c1")

	h.Handle(client, protocol.MustNewMessage(protocol.MsgRestartGame, protocol.RestartGamePayload{
		RoomCode: "ZZZZZZ",
	}))

	errPayload := parseError(t, client.LastMessage())
	assert.Equal(t, protocol.ErrCodeRoomNotFound, errPayload.Code)
}
