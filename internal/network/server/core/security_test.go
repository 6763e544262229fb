package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageRateLimiter_AllowsUnderLimit(t *testing.T) {
	t.Parallel()

	ml := NewMessageRateLimiter(10)

	for i := 0; i < 5; i++ {
		allowed, _ := ml.AllowMessage("c1")
		assert.True(t, allowed)
	}
	assert.Equal(t, 0, ml.GetWarningCount("c1"))
}

func TestMessageRateLimiter_BlocksOverLimit(t *testing.T) {
	t.Parallel()

	ml := NewMessageRateLimiter(3)

	for i := 0; i < 3; i++ {
		allowed, _ := ml.AllowMessage("c1")
		assert.True(t, allowed)
	}

	allowed, _ := ml.AllowMessage("c1")
	assert.False(t, allowed)
	assert.Equal(t, 1, ml.GetWarningCount("c1"))

	// 其他连接不受影响
	allowed, _ = ml.AllowMessage("c2")
	assert.True(t, allowed)
}

func TestMessageRateLimiter_RemoveClient(t *testing.T) {
	t.Parallel()

	ml := NewMessageRateLimiter(1)
	ml.AllowMessage("c1")
	ml.AllowMessage("c1")
	assert.Equal(t, 1, ml.GetWarningCount("c1"))

	ml.RemoveClient("c1")
	assert.Equal(t, 0, ml.GetWarningCount("c1"))
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "192.168.1.5:51234",
			want:       "192.168.1.5",
		},
		{
			name:       "x-forwarded-for wins",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"},
			want:       "203.0.113.9",
		},
		{
			name:       "x-real-ip fallback",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Real-IP": "203.0.113.7"},
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/ws", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, GetClientIP(r))
		})
	}
}
