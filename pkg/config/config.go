// Package config loads platform configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates all subsystem configuration.
type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Worker    WorkerConfig
	Sandbox   SandboxConfig
	Runner    RunnerConfig
	Wallet    WalletConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds HTTP/WebSocket server settings.
type ServerConfig struct {
	HTTPPort      string
	JWTSecret     string
	RunnerToken   string // SHA-256 hex of the accepted runner token
	WriteTimeout  time.Duration
	HeartbeatTick time.Duration
	PresenceTTL   time.Duration
}

// RedisConfig holds the event-bus connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// WorkerConfig holds chat-turn execution settings.
type WorkerConfig struct {
	TurnTimeout      time.Duration
	PartialFlushTick time.Duration
	AbortTTL         time.Duration
	QuestionTimeout  time.Duration
	ShutdownTimeout  time.Duration
}

// SandboxConfig holds sandbox manager settings.
type SandboxConfig struct {
	CloudURL       string
	BindingTTL     time.Duration
	LockTTL        time.Duration
	LockWait       time.Duration
	MaxPerUser     int
	RequestTimeout time.Duration
}

// RunnerConfig holds runner RPC settings.
type RunnerConfig struct {
	RequestTimeout time.Duration
	PtyTimeout     time.Duration
	PtyCloseWait   time.Duration
	PresenceTTL    time.Duration
	PtySessionTTL  time.Duration
}

// WalletConfig holds credit accounting settings.
type WalletConfig struct {
	WelcomeBonus      int64
	DeveloperShare    float64 // fraction of the actual deduction rewarded to the publisher
	CreditsPer1KToken int64
	CacheReadDiscount float64
	ToolCallRate      int64
}

// SchedulerConfig holds the scheduled-task loop settings.
type SchedulerConfig struct {
	PollInterval time.Duration
	Enabled      bool
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:      getEnv("HTTP_PORT", "8080"),
			JWTSecret:     os.Getenv("JWT_SECRET"),
			RunnerToken:   os.Getenv("RUNNER_TOKEN_HASH"),
			WriteTimeout:  getDuration("WS_WRITE_TIMEOUT", 10*time.Second),
			HeartbeatTick: getDuration("WS_HEARTBEAT_INTERVAL", 25*time.Second),
			PresenceTTL:   getDuration("WS_PRESENCE_TTL", 120*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
		},
		Worker: WorkerConfig{
			TurnTimeout:      getDuration("TURN_TIMEOUT", 15*time.Minute),
			PartialFlushTick: getDuration("PARTIAL_FLUSH_INTERVAL", 3*time.Second),
			AbortTTL:         getDuration("ABORT_TTL", 60*time.Second),
			QuestionTimeout:  getDuration("QUESTION_TIMEOUT", 300*time.Second),
			ShutdownTimeout:  getDuration("WORKER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Sandbox: SandboxConfig{
			CloudURL:       getEnv("SANDBOX_CLOUD_URL", "http://localhost:9000"),
			BindingTTL:     getDuration("SANDBOX_BINDING_TTL", time.Hour),
			LockTTL:        getDuration("SANDBOX_LOCK_TTL", 60*time.Second),
			LockWait:       getDuration("SANDBOX_LOCK_WAIT", 10*time.Second),
			MaxPerUser:     getInt("SANDBOX_MAX_PER_USER", 0),
			RequestTimeout: getDuration("SANDBOX_REQUEST_TIMEOUT", 120*time.Second),
		},
		Runner: RunnerConfig{
			RequestTimeout: getDuration("RUNNER_REQUEST_TIMEOUT", 120*time.Second),
			PtyTimeout:     getDuration("RUNNER_PTY_TIMEOUT", 30*time.Second),
			PtyCloseWait:   getDuration("RUNNER_PTY_CLOSE_WAIT", 5*time.Second),
			PresenceTTL:    getDuration("RUNNER_PRESENCE_TTL", 120*time.Second),
			PtySessionTTL:  getDuration("PTY_SESSION_TTL", 10*time.Minute),
		},
		Wallet: WalletConfig{
			WelcomeBonus:      getInt64("WALLET_WELCOME_BONUS", 200),
			DeveloperShare:    getFloat("DEVELOPER_REWARD_SHARE", 0.1),
			CreditsPer1KToken: getInt64("CREDITS_PER_1K_TOKENS", 1),
			CacheReadDiscount: getFloat("CACHE_READ_DISCOUNT", 0.5),
			ToolCallRate:      getInt64("TOOL_CALL_RATE", 2),
		},
		Scheduler: SchedulerConfig{
			PollInterval: getDuration("SCHEDULER_POLL_INTERVAL", 30*time.Second),
			Enabled:      getEnv("SCHEDULER_ENABLED", "true") == "true",
		},
	}

	if cfg.Server.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
