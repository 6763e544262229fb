package core

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// MessageRateLimiter 单连接消息速率限制器
type MessageRateLimiter struct {
	clients map[string]*clientRate
	mu      sync.Mutex

	maxPerSecond int
}

// clientRate 连接的速率记录
type clientRate struct {
	count        int       // 当前秒消息数
	lastSecond   time.Time // 上次秒级计数时间
	warningCount int       // 超速警告次数
}

// NewMessageRateLimiter 创建消息速率限制器
func NewMessageRateLimiter(maxPerSecond int) *MessageRateLimiter {
	return &MessageRateLimiter{
		clients:      make(map[string]*clientRate),
		maxPerSecond: maxPerSecond,
	}
}

// AllowMessage 检查连接是否允许发送消息
// 返回 (是否允许, 是否接近限制需要警告)
func (ml *MessageRateLimiter) AllowMessage(clientID string) (allowed, warning bool) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	now := time.Now()
	rate, exists := ml.clients[clientID]
	if !exists {
		ml.clients[clientID] = &clientRate{count: 1, lastSecond: now}
		return true, false
	}

	if now.Sub(rate.lastSecond) >= time.Second {
		rate.count = 0
		rate.lastSecond = now
	}

	rate.count++

	if rate.count > ml.maxPerSecond {
		rate.warningCount++
		return false, false
	}

	// 达到八成水位时提醒客户端放慢速度
	return true, rate.count*10 >= ml.maxPerSecond*8
}

// GetWarningCount 获取连接的超速警告次数
func (ml *MessageRateLimiter) GetWarningCount(clientID string) int {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if rate, exists := ml.clients[clientID]; exists {
		return rate.warningCount
	}
	return 0
}

// RemoveClient 连接断开后清理记录
func (ml *MessageRateLimiter) RemoveClient(clientID string) {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	delete(ml.clients, clientID)
}

// GetClientIP 从请求中提取真实客户端 IP
func GetClientIP(r *http.Request) string {
	// 反向代理场景优先取 X-Forwarded-For 的第一项
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
