package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de persistencia soportados (DB_DRIVER).
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Proveedores de correo soportados (MAIL_PROVIDER).
const (
	MailProviderSMTP     = "smtp"
	MailProviderSendGrid = "sendgrid"
	MailProviderLog      = "log"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	Mongo   MongoConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Auth    AuthConfig
	Mail    MailConfig
	Redis   RedisConfig
	NATS    NATSConfig
	Swagger SwaggerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL y selección del driver.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver         string // mongo | postgres | memory
	DatabaseURL    string
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
	AutoMigrate    bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// MongoConfig conexión al document store.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig políticas de registro y recuperación de contraseña.
type AuthConfig struct {
	AllowAdminSignup bool          // permite que /auth/register acepte role=admin
	ResetTokenTTL    time.Duration // vigencia del token de recuperación
	ResetURLBase     string        // el token se concatena al final del enlace
}

// MailConfig proveedor de correo para la recuperación de contraseña.
type MailConfig struct {
	Provider       string // smtp | sendgrid | log
	From           string
	FromName       string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPassword   string
	SendGridAPIKey string
}

// RedisConfig caché opcional de productos. URL vacía = sin caché.
type RedisConfig struct {
	URL string
	TTL time.Duration
}

// NATSConfig publicación opcional de eventos de pedidos. URL vacía = sin eventos.
type NATSConfig struct {
	URL     string
	Subject string
}

// SwaggerConfig UI de documentación en /docs.
type SwaggerConfig struct {
	Enabled  bool
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_DRIVER, MONGO_URI, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ecommerce-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:         strings.ToLower(getString(v, "DB_DRIVER", DriverMongo)),
			DatabaseURL:    getString(v, "DATABASE_URL", ""),
			Host:           getString(v, "DB_HOST", "localhost"),
			Port:           getInt(v, "DB_PORT", 5432),
			User:           getString(v, "DB_USER", "postgres"),
			Password:       getString(v, "DB_PASSWORD", ""),
			DBName:         getString(v, "DB_NAME", "ecommerce"),
			SSLMode:        getString(v, "DB_SSLMODE", "disable"),
			MigrationsPath: getString(v, "MIGRATIONS_PATH", "./migrations"),
			AutoMigrate:    getBool(v, "DB_AUTO_MIGRATE", false),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database: getString(v, "MONGO_DATABASE", "ecommerce"),
			Timeout:  time.Duration(getInt(v, "MONGO_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "ecommerce-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 7001),
		},
		Auth: AuthConfig{
			AllowAdminSignup: getBool(v, "AUTH_ALLOW_ADMIN_SIGNUP", false),
			ResetTokenTTL:    time.Duration(getInt(v, "RESET_TOKEN_TTL_MINUTES", 60)) * time.Minute,
			ResetURLBase:     getString(v, "RESET_URL_BASE", "http://localhost:7001/reset-password/"),
		},
		Mail: MailConfig{
			Provider:       strings.ToLower(getString(v, "MAIL_PROVIDER", MailProviderLog)),
			From:           getString(v, "MAIL_FROM", ""),
			FromName:       getString(v, "MAIL_FROM_NAME", "E-commerce API"),
			SMTPHost:       getString(v, "SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:       getInt(v, "SMTP_PORT", 465),
			SMTPUser:       getString(v, "SMTP_USER", ""),
			SMTPPassword:   getString(v, "SMTP_PASSWORD", ""),
			SendGridAPIKey: getString(v, "SENDGRID_API_KEY", ""),
		},
		Redis: RedisConfig{
			URL: getString(v, "REDIS_URL", ""),
			TTL: time.Duration(getInt(v, "CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		NATS: NATSConfig{
			URL:     getString(v, "NATS_URL", ""),
			Subject: getString(v, "NATS_ORDER_SUBJECT", "orders.created"),
		},
		Swagger: SwaggerConfig{
			Enabled:  getBool(v, "SWAGGER_ENABLED", true),
			FilePath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("config: DB_DRIVER desconocido %q", c.DB.Driver)
	}
	switch c.Mail.Provider {
	case MailProviderSMTP, MailProviderSendGrid, MailProviderLog:
	default:
		return fmt.Errorf("config: MAIL_PROVIDER desconocido %q", c.Mail.Provider)
	}
	if c.App.Env == "production" && c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET es obligatorio en production")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
