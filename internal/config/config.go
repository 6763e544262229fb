package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 默认值
const (
	defaultHost           = "0.0.0.0"
	defaultPort           = 3000
	defaultMaxConnections = 1024
	defaultRedisAddr      = "localhost:6379"
	defaultLobbyTimeout   = 10 // 分钟，0 表示不清理
	defaultMsgPerSecond   = 20
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"`
	MsgPerSecond   int    `yaml:"msg_per_second"` // 单连接每秒消息上限
}

// RedisConfig Redis 配置（排行榜，可选）
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	LobbyTimeout int `yaml:"lobby_timeout"` // 未开始房间的等待超时（分钟），负数表示永不清理
}

// LobbyTimeoutDuration 返回大厅等待超时时长，0 表示禁用清理
func (c *GameConfig) LobbyTimeoutDuration() time.Duration {
	if c.LobbyTimeout < 0 {
		return 0
	}
	return time.Duration(c.LobbyTimeout) * time.Minute
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

// applyDefaults 设置默认值
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = defaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.MaxConnections == 0 {
		c.Server.MaxConnections = defaultMaxConnections
	}
	if c.Server.MsgPerSecond == 0 {
		c.Server.MsgPerSecond = defaultMsgPerSecond
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = defaultRedisAddr
	}
	if c.Game.LobbyTimeout == 0 {
		c.Game.LobbyTimeout = defaultLobbyTimeout
	}
}

// applyEnv 应用环境变量覆盖（部署平台通过 PORT 指定监听端口）
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Redis.Addr = addr
	}
}
