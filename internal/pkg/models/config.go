package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Provider ProviderConfig
	Payment  PaymentConfig
	SMS      SMSConfig
	OTP      OTPConfig
	Logger   LoggerConfig
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

// NSQConfig contains NSQ producer configuration.
// An empty Address disables audit event publishing.
type NSQConfig struct {
	Address    string
	AuditTopic string
}

// ProviderConfig contains the upstream aggregator endpoints and credentials
type ProviderConfig struct {
	RechargeURL string
	StatusURL   string
	BBPSBaseURL string
	AuthKey     string
	AuthPass    string
	MemberID    string
	ServiceType string // default BBPS service type when no category maps
	TimeoutSecs int
}

// PaymentConfig contains payment-gateway callback verification credentials
type PaymentConfig struct {
	KeyID     string
	KeySecret string
}

// SMSConfig contains the SMS provider configuration.
// An empty Key switches OTP delivery to simulation mode: the generated code
// is returned in the API response instead of being sent. Simulation mode is
// for testing only and must never be enabled in production.
type SMSConfig struct {
	Key     string
	BaseURL string
}

// OTPConfig contains OTP issuance configuration
type OTPConfig struct {
	TTLSeconds int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}
