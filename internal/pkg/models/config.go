package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Redis      RedisConfig
	NATS       NATSConfig
	JWT        JWTConfig
	Authority  AuthorityConfig
	SuperAdmin SuperAdminConfig
	OTP        OTPConfig
	Reset      ResetConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains validation configuration for authority-issued tokens
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// AuthorityConfig points at the remote authority that owns credential and OTP truth
type AuthorityConfig struct {
	BaseURL string
	Timeout int // in seconds
}

// SuperAdminConfig holds the single privileged credential pair that bypasses
// the second factor. Email comparison is case-insensitive, password exact.
type SuperAdminConfig struct {
	Email    string
	Password string
}

// OTPConfig contains second-factor challenge configuration
type OTPConfig struct {
	CooldownSeconds int
	AdminMobile     string // fixed notification target for admin challenges
}

// ResetConfig contains password-reset flow configuration
type ResetConfig struct {
	Mobile  string // fixed, pre-registered notification target for reset OTPs
	Relaxed bool   // advance past unreachable-authority verification (test/debug only)
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
