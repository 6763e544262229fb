package server

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/tap-rush/internal/protocol"
)

func TestClient_SendMessage(t *testing.T) {
	t.Parallel()

	c := NewClient(nil, nil)
	c.SendMessage(protocol.MustNewMessage(protocol.MsgOnlineCount, protocol.OnlineCountPayload{Count: 1}))

	data := <-c.send
	msg, err := protocol.Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, protocol.MsgOnlineCount, msg.Type)
}

func TestClient_SendMessageAfterClose(t *testing.T) {
	t.Parallel()

	c := NewClient(nil, nil)
	c.Close()

	// 关闭后发送被静默丢弃，不能 panic
	c.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{}))
}

func TestClient_CloseIdempotent(t *testing.T) {
	t.Parallel()

	c := NewClient(nil, nil)
	c.Close()
	c.Close()
}

func TestClient_ConcurrentSendAndClose(t *testing.T) {
	t.Parallel()

	msg := protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{})

	for i := 0; i < 200; i++ {
		c := NewClient(nil, nil)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.SendMessage(msg)
		}()
		go func() {
			defer wg.Done()
			c.Close()
		}()
		wg.Wait()
	}
}
