//go:build !production

package testutil

import (
	"sync"

	"github.com/palemoky/tap-rush/internal/protocol"
)

// SimpleClient 实现 types.ClientInterface，记录收到的所有消息
type SimpleClient struct {
	ID       string
	Name     string
	RoomCode string
	Closed   bool

	mu   sync.Mutex
	sent []*protocol.Message
}

func NewSimpleClient(id string) *SimpleClient {
	return &SimpleClient{ID: id}
}

func (c *SimpleClient) GetID() string { return c.ID }

func (c *SimpleClient) GetName() string { return c.Name }

func (c *SimpleClient) SetName(name string) { c.Name = name }

func (c *SimpleClient) GetRoom() string { return c.RoomCode }

func (c *SimpleClient) SetRoom(roomCode string) { c.RoomCode = roomCode }

func (c *SimpleClient) SendMessage(msg *protocol.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, msg)
}

func (c *SimpleClient) Close() { c.Closed = true }

// Sent 返回已收到消息的副本
func (c *SimpleClient) Sent() []*protocol.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*protocol.Message(nil), c.sent...)
}

// SentOfType 返回指定类型的消息
func (c *SimpleClient) SentOfType(msgType protocol.MessageType) []*protocol.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	var msgs []*protocol.Message
	for _, m := range c.sent {
		if m.Type == msgType {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// LastMessage 返回最后一条收到的消息，没有则返回 nil
func (c *SimpleClient) LastMessage() *protocol.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sent) == 0 {
		return nil
	}
	return c.sent[len(c.sent)-1]
}

// Reset 清空已记录的消息
func (c *SimpleClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = nil
}
