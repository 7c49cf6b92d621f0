// Package config assembles the service configuration from built-in defaults,
// an optional JSON file, environment variables and command line flags, in
// increasing order of priority, and validates the result.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the service.
type Config struct {
	RunAddr                   string        `env:"SERVER_ADDRESS" validate:"hostname_port"`
	ContextPath               string        `env:"CONTEXT_PATH" validate:"contextpath"`
	GRPCAddr                  string        `env:"GRPC_ADDRESS" validate:"omitempty,hostname_port"`
	LogLevel                  string        `env:"LOG_LEVEL" validate:"loglevel"`
	DBFileName                string        `env:"FILE_STORAGE_PATH" validate:"omitempty,writablepath"`
	SQLitePath                string        `env:"SQLITE_PATH" validate:"omitempty,writablepath"`
	DatabaseDSN               string        `env:"DATABASE_DSN"`
	DBConnectionTimeout       time.Duration `env:"DB_CONNECTION_TIMEOUT" validate:"gt=0"`
	MigrationsDir             string        `env:"MIGRATIONS_DIR"`
	AuthTokenSigningSecretKey string        `env:"AUTH_TOKEN_SIGNING_SECRET_KEY" validate:"required,base64url"`
	AuthTokenTTL              time.Duration `env:"AUTH_TOKEN_TTL" validate:"gt=0"`
	AuthTokenPrefix           string        `env:"AUTH_TOKEN_PREFIX"`
	BcryptCost                int           `env:"BCRYPT_COST" validate:"min=4,max=31"`
	TrustedSubnet             string        `env:"TRUSTED_SUBNET" validate:"omitempty,cidr"`
	ConfigFile                string        `env:"CONFIG"`
}

// jsonConfig is the layout of the JSON configuration file. Durations are
// written the way time.ParseDuration reads them, e.g. "240h".
type jsonConfig struct {
	RunAddr                   string `json:"server_address"`
	ContextPath               string `json:"context_path"`
	GRPCAddr                  string `json:"grpc_address"`
	LogLevel                  string `json:"log_level"`
	DBFileName                string `json:"file_storage_path"`
	SQLitePath                string `json:"sqlite_path"`
	DatabaseDSN               string `json:"database_dsn"`
	DBConnectionTimeout       string `json:"db_connection_timeout"`
	MigrationsDir             string `json:"migrations_dir"`
	AuthTokenSigningSecretKey string `json:"auth_token_signing_secret_key"`
	AuthTokenTTL              string `json:"auth_token_ttl"`
	AuthTokenPrefix           string `json:"auth_token_prefix"`
	BcryptCost                int    `json:"bcrypt_cost"`
	TrustedSubnet             string `json:"trusted_subnet"`
}

// defaultConfig has no AuthTokenSigningSecretKey: it must come from the
// JSON file or the environment, otherwise New fails validation.
var defaultConfig = Config{
	RunAddr:                   ":8080",
	ContextPath:               "/mobile-app-ws",
	LogLevel:                  "info",
	DBConnectionTimeout:       10 * time.Second,
	MigrationsDir:             "cmd/usersvc/migrations",
	AuthTokenTTL:              240 * time.Hour,
	AuthTokenPrefix:           "Bearer ",
	BcryptCost:                10,
}

type InitOption func(*initOptions)

type initOptions struct {
	disableFlagsParsing bool
}

// WithDisableFlagsParsing makes New ignore os.Args. Tests use it.
func WithDisableFlagsParsing(disableFlagsParsing bool) InitOption {
	return func(options *initOptions) {
		options.disableFlagsParsing = disableFlagsParsing
	}
}

// New builds the configuration: defaults < JSON file < environment < flags.
func New(optionsProto ...InitOption) (*Config, error) {
	options := &initOptions{
		disableFlagsParsing: false,
	}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Unable to load .env file: %v", err)
	}

	var fromFlags Config
	if !options.disableFlagsParsing {
		var err error
		fromFlags, err = parseFlags(os.Args[1:])
		if err != nil {
			return nil, err
		}
	}

	var fromEnv Config
	if err := env.Parse(&fromEnv); err != nil {
		return nil, fmt.Errorf("in internal/config/config.go/New(): error while `env.Parse()` calling: %w", err)
	}

	values := &Config{}
	applyDefaults(values, defaultConfig)

	configFile := fromEnv.ConfigFile
	if fromFlags.ConfigFile != "" {
		configFile = fromFlags.ConfigFile
	}
	if configFile != "" {
		fromJSON, err := loadJSON(configFile)
		if err != nil {
			return nil, err
		}
		applyDefaults(values, fromJSON)
		values.ConfigFile = configFile
	}

	applyDefaults(values, fromEnv)
	applyDefaults(values, fromFlags)

	values.ContextPath = normalizeContextPath(values.ContextPath)

	if err := values.validate(); err != nil {
		return nil, err
	}

	return values, nil
}

// applyDefaults copies every non-zero field of source into target.
func applyDefaults(target *Config, source Config) {
	if source.RunAddr != "" {
		target.RunAddr = source.RunAddr
	}
	if source.ContextPath != "" {
		target.ContextPath = source.ContextPath
	}
	if source.GRPCAddr != "" {
		target.GRPCAddr = source.GRPCAddr
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
	}
	if source.DBFileName != "" {
		target.DBFileName = source.DBFileName
	}
	if source.SQLitePath != "" {
		target.SQLitePath = source.SQLitePath
	}
	if source.DatabaseDSN != "" {
		target.DatabaseDSN = source.DatabaseDSN
	}
	if source.DBConnectionTimeout != 0 {
		target.DBConnectionTimeout = source.DBConnectionTimeout
	}
	if source.MigrationsDir != "" {
		target.MigrationsDir = source.MigrationsDir
	}
	if source.AuthTokenSigningSecretKey != "" {
		target.AuthTokenSigningSecretKey = source.AuthTokenSigningSecretKey
	}
	if source.AuthTokenTTL != 0 {
		target.AuthTokenTTL = source.AuthTokenTTL
	}
	if source.AuthTokenPrefix != "" {
		target.AuthTokenPrefix = source.AuthTokenPrefix
	}
	if source.BcryptCost != 0 {
		target.BcryptCost = source.BcryptCost
	}
	if source.TrustedSubnet != "" {
		target.TrustedSubnet = source.TrustedSubnet
	}
	if source.ConfigFile != "" {
		target.ConfigFile = source.ConfigFile
	}
}

func parseFlags(args []string) (Config, error) {
	var values Config

	flagSet := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	flagSet.StringVar(&values.RunAddr, "a", "", "address and port to run the HTTP server")
	flagSet.StringVar(&values.ContextPath, "p", "", "context path all user routes are mounted under")
	flagSet.StringVar(&values.GRPCAddr, "g", "", "address and port to run the gRPC server, empty disables it")
	flagSet.StringVar(&values.LogLevel, "l", "", "logger level")
	flagSet.StringVar(&values.DBFileName, "f", "", "JSON file name with database")
	flagSet.StringVar(&values.SQLitePath, "s", "", "SQLite database file")
	flagSet.StringVar(&values.DatabaseDSN, "d", "", "PostgreSQL connection string")
	flagSet.StringVar(&values.TrustedSubnet, "t", "", "CIDR allowed to call internal endpoints")
	flagSet.StringVar(&values.ConfigFile, "c", "", "JSON configuration file")
	flagSet.DurationVar(&values.AuthTokenTTL, "ttl", 0, "lifetime of issued auth tokens")

	if err := flagSet.Parse(args); err != nil {
		return Config{}, fmt.Errorf("in internal/config/config.go/parseFlags(): error while `flagSet.Parse()` calling: %w", err)
	}

	return values, nil
}

func loadJSON(fileName string) (Config, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return Config{}, fmt.Errorf("in internal/config/config.go/loadJSON(): error while `os.ReadFile()` calling: %w", err)
	}

	var raw jsonConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("in internal/config/config.go/loadJSON(): error while `json.Unmarshal()` calling: %w", err)
	}

	result := Config{
		RunAddr:                   raw.RunAddr,
		ContextPath:               raw.ContextPath,
		GRPCAddr:                  raw.GRPCAddr,
		LogLevel:                  raw.LogLevel,
		DBFileName:                raw.DBFileName,
		SQLitePath:                raw.SQLitePath,
		DatabaseDSN:               raw.DatabaseDSN,
		MigrationsDir:             raw.MigrationsDir,
		AuthTokenSigningSecretKey: raw.AuthTokenSigningSecretKey,
		AuthTokenPrefix:           raw.AuthTokenPrefix,
		BcryptCost:                raw.BcryptCost,
		TrustedSubnet:             raw.TrustedSubnet,
	}

	if raw.DBConnectionTimeout != "" {
		result.DBConnectionTimeout, err = time.ParseDuration(raw.DBConnectionTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("in internal/config/config.go/loadJSON(): bad db_connection_timeout: %w", err)
		}
	}
	if raw.AuthTokenTTL != "" {
		result.AuthTokenTTL, err = time.ParseDuration(raw.AuthTokenTTL)
		if err != nil {
			return Config{}, fmt.Errorf("in internal/config/config.go/loadJSON(): bad auth_token_ttl: %w", err)
		}
	}

	return result, nil
}

func normalizeContextPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return strings.TrimRight(path, "/")
}

func validateWritablePath(fieldLevel validator.FieldLevel) bool {
	path := fieldLevel.Field().String()
	_, err := os.Stat(path)

	return err == nil || os.IsNotExist(err)
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	value := fieldLevel.Field().String()

	allowedLogLevels := map[string]bool{
		"debug":   true,
		"info":    true,
		"warning": true,
		"warn":    true,
		"error":   true,
		"fatal":   true,
	}

	return allowedLogLevels[value]
}

func validateContextPath(fieldLevel validator.FieldLevel) bool {
	value := fieldLevel.Field().String()

	return value == "" || (strings.HasPrefix(value, "/") && !strings.ContainsAny(value, " ?#{}"))
}

func (c *Config) validate() error {
	validate := validator.New()

	customValidations := map[string]validator.Func{
		"loglevel":     validateLogLevel,
		"writablepath": validateWritablePath,
		"contextpath":  validateContextPath,
	}
	for tag, fn := range customValidations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	return validate.Struct(c)
}
