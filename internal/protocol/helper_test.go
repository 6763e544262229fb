package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_EncodeDecode(t *testing.T) {
	t.Parallel()

	msg := MustNewMessage(MsgJoinRoom, JoinRoomPayload{
		RoomCode: "ABC123",
		Name:     "Ann",
	})

	data, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MsgJoinRoom, decoded.Type)

	payload, err := ParsePayload[JoinRoomPayload](decoded)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", payload.RoomCode)
	assert.Equal(t, "Ann", payload.Name)
}

func TestDecode_InvalidJSON(t *testing.T) {
	t.Parallel()

	msg, err := Decode([]byte("{not json"))
	assert.Error(t, err)
	assert.Nil(t, msg)
}

func TestParsePayload_EmptyPayload(t *testing.T) {
	t.Parallel()

	// A bare message without payload must parse to the zero value,
	// missing fields are rejected by the handlers, not the codec
	msg := &Message{Type: MsgPlayerFinished}
	payload, err := ParsePayload[PlayerFinishedPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, "", payload.RoomCode)
	assert.Equal(t, 0, payload.TotalPoints)
}

func TestParsePayload_TypeMismatch(t *testing.T) {
	t.Parallel()

	msg := &Message{Type: MsgPlayerFinished, Payload: []byte(`{"total_points": "twenty"}`)}
	_, err := ParsePayload[PlayerFinishedPayload](msg)
	assert.Error(t, err)
}

func TestNewErrorMessage(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessage(ErrCodeRoomFull)
	require.Equal(t, MsgError, msg.Type)

	payload, err := ParsePayload[ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, ErrCodeRoomFull, payload.Code)
	assert.Equal(t, ErrorMessages[ErrCodeRoomFull], payload.Message)
}

func TestNewErrorMessageWithText(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessageWithText(ErrCodeUnknown, "boom")
	payload, err := ParsePayload[ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, ErrCodeUnknown, payload.Code)
	assert.Equal(t, "boom", payload.Message)
}
