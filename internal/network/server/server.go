package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/tap-rush/internal/config"
	"github.com/palemoky/tap-rush/internal/game/room"
	"github.com/palemoky/tap-rush/internal/network/server/core"
	"github.com/palemoky/tap-rush/internal/network/server/handlers"
	"github.com/palemoky/tap-rush/internal/network/server/storage"
	"github.com/palemoky/tap-rush/internal/protocol"
	"github.com/palemoky/tap-rush/internal/types"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
}

// Server WebSocket 服务器
type Server struct {
	config      *config.Config
	redis       *redis.Client               // 排行榜不可用时为 nil
	leaderboard *storage.LeaderboardManager // 同上
	roomManager *room.RoomManager
	clients     map[string]*Client
	clientsMu   sync.RWMutex
	handler     *handlers.Handler

	messageLimiter *core.MessageRateLimiter
	semaphore      chan struct{} // 信号量控制并发连接数

	httpServer *http.Server
}

// NewServer 创建服务器实例
// Redis 连不上时排行榜功能降级，房间协调不受影响
func NewServer(cfg *config.Config) (*Server, error) {
	s := &Server{
		config:         cfg,
		clients:        make(map[string]*Client),
		messageLimiter: core.NewMessageRateLimiter(cfg.Server.MsgPerSecond),
		semaphore:      make(chan struct{}, cfg.Server.MaxConnections),
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis 连接失败，排行榜功能不可用: %v", err)
		_ = rdb.Close()
	} else {
		s.redis = rdb
		s.leaderboard = storage.NewLeaderboardManager(rdb)
	}

	s.roomManager = room.NewRoomManager(s.GetLeaderboard(), cfg.Game.LobbyTimeoutDuration())
	s.handler = handlers.NewHandler(s, s.roomManager)

	return s, nil
}

// Start 启动服务器
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	log.Printf("🚀 服务器启动在 ws://%s/ws (最大连接数: %d)", addr, s.config.Server.MaxConnections)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
		IdleTimeout:       60 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown 优雅关闭
func (s *Server) Shutdown() {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
	}

	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	if s.redis != nil {
		_ = s.redis.Close()
	}
}

// handleWebSocket 处理 WebSocket 连接
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	clientIP := core.GetClientIP(r)

	// 连接数限制检查，连接断开时释放
	select {
	case s.semaphore <- struct{}{}:
	default:
		log.Printf("🚫 达到最大连接数限制 (%d), IP: %s", s.config.Server.MaxConnections, clientIP)
		http.Error(w, "Server Full", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		<-s.semaphore
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	client := NewClient(s, conn)
	client.IP = clientIP
	s.registerClient(client)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		PlayerID: client.ID,
	}))

	log.Printf("✅ 连接 %s (IP: %s) 已建立", client.ID, clientIP)

	go client.ReadPump()
	go client.WritePump()
}

// handleHealth 健康检查接口
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// registerClient 注册客户端
func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.ID] = client
}

// unregisterClient 注销客户端并释放连接配额
func (s *Server) unregisterClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[client.ID]; ok {
		delete(s.clients, client.ID)
		<-s.semaphore
		log.Printf("❌ 连接 %s 已断开", client.ID)
	}
}

// GetOnlineCount 获取在线人数
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// GetLeaderboard 获取排行榜，不可用时返回 nil
func (s *Server) GetLeaderboard() types.LeaderboardInterface {
	if s.leaderboard == nil {
		return nil
	}
	return s.leaderboard
}
