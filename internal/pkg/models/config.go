package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Refresh  RefreshConfig
	Cleanup  CleanupConfig
	CORS     CORSConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// IsProduction reports whether the service runs in production mode.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
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

// JWTConfig contains token signing configuration. AccessSecret signs access
// tokens; RefreshSecret keys the HMAC under which refresh secrets are stored.
// The two must differ, which config loading validates at startup.
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
}

// OTPConfig contains OTP issuance and rate-limit configuration
type OTPConfig struct {
	ExpiryMinutes     int // code lifetime, default 10
	RequestLimitProd  int // per-window request ceiling in production
	RequestLimitDev   int // per-window request ceiling outside production
	RateWindowMinutes int // sliding window length, default 15
}

// RequestLimit returns the per-window OTP request ceiling for the
// environment the app is running in.
func (o OTPConfig) RequestLimit(app AppConfig) int {
	if app.IsProduction() {
		return o.RequestLimitProd
	}
	return o.RequestLimitDev
}

// RefreshConfig contains refresh token lifetime configuration
type RefreshConfig struct {
	ExpiryDays    int // token lifetime, default 7
	RetentionDays int // how long revoked rows are kept, default 30
}

// CleanupConfig contains credential cleanup worker configuration
type CleanupConfig struct {
	IntervalMinutes int
}

// CORSConfig contains allowed cross-origin caller configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
