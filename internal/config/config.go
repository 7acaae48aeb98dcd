package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	SupervisorBackendSupervisord = "supervisord"
	SupervisorBackendKubernetes  = "kubernetes"
)

type Config struct {
	Server     ServerConfig
	Builds     BuildsConfig
	Health     HealthConfig
	Promotion  PromotionConfig
	Supervisor SupervisorConfig
	Kubernetes KubernetesConfig
	Database   DatabaseConfig
	Waitlist   WaitlistConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type BuildsConfig struct {
	Dir           string
	BinaryPath    string
	ServiceName   string
	RetentionKeep int
}

type HealthConfig struct {
	URL     string
	Timeout time.Duration
}

type PromotionConfig struct {
	PollAttempts int
	PollInterval time.Duration
	SettleDelay  time.Duration
}

type SupervisorConfig struct {
	Backend        string
	Socket         string
	RestartTimeout time.Duration
}

type KubernetesConfig struct {
	InCluster      bool
	KubeConfigPath string
	Namespace      string
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type WaitlistConfig struct {
	File string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 4860)
	v.SetDefault("BUILDS_DIR", "/usr/local/bin/app-builds")
	v.SetDefault("BINARY_PATH", "/usr/local/bin/app")
	v.SetDefault("SERVICE_NAME", "app")
	v.SetDefault("RETENTION_KEEP", 20)
	v.SetDefault("HEALTH_URL", "http://localhost:4850/health")
	v.SetDefault("HEALTH_TIMEOUT", "3s")
	v.SetDefault("HEALTH_POLL_ATTEMPTS", 15)
	v.SetDefault("HEALTH_POLL_INTERVAL", "1s")
	v.SetDefault("RESTART_SETTLE_DELAY", "2s")
	v.SetDefault("RESTART_TIMEOUT", "10s")
	v.SetDefault("SUPERVISOR_BACKEND", SupervisorBackendSupervisord)
	v.SetDefault("SUPERVISOR_SOCKET", "unix:///tmp/supervisor.sock")
	v.SetDefault("KUBE_IN_CLUSTER", false)
	v.SetDefault("KUBE_CONFIG_PATH", "")
	v.SetDefault("KUBE_NAMESPACE", "default")
	v.SetDefault("DATABASE_ENABLED", false)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "waitlist")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 4)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 1)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("WAITLIST_FILE", "/var/lib/app-admin/waitlist.txt")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Builds: BuildsConfig{
			Dir:           v.GetString("BUILDS_DIR"),
			BinaryPath:    v.GetString("BINARY_PATH"),
			ServiceName:   v.GetString("SERVICE_NAME"),
			RetentionKeep: v.GetInt("RETENTION_KEEP"),
		},
		Health: HealthConfig{
			URL:     v.GetString("HEALTH_URL"),
			Timeout: duration(v, "HEALTH_TIMEOUT", 3*time.Second),
		},
		Promotion: PromotionConfig{
			PollAttempts: v.GetInt("HEALTH_POLL_ATTEMPTS"),
			PollInterval: duration(v, "HEALTH_POLL_INTERVAL", time.Second),
			SettleDelay:  duration(v, "RESTART_SETTLE_DELAY", 2*time.Second),
		},
		Supervisor: SupervisorConfig{
			Backend:        v.GetString("SUPERVISOR_BACKEND"),
			Socket:         v.GetString("SUPERVISOR_SOCKET"),
			RestartTimeout: duration(v, "RESTART_TIMEOUT", 10*time.Second),
		},
		Kubernetes: KubernetesConfig{
			InCluster:      v.GetBool("KUBE_IN_CLUSTER"),
			KubeConfigPath: v.GetString("KUBE_CONFIG_PATH"),
			Namespace:      v.GetString("KUBE_NAMESPACE"),
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("DATABASE_ENABLED"),
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: duration(v, "DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Waitlist: WaitlistConfig{
			File: v.GetString("WAITLIST_FILE"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
