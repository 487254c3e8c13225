package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-db-host metadata database host
//	-db-port metadata database port
//	-db-user metadata database user
//	-db-name metadata database name
//	-db-schema metadata database schema
//	-log-path log output directory
//	-c/-config json file path with configs
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-score-refresh-interval scorecard refresh interval (0 disables)
//
// Secrets (passwords, salt, JWT key) have no flags; they are accepted only
// from the environment or the JSON file.
func ParseFlags() *Config {
	var serverAddress string
	var dbHost, dbPort, dbUser, dbName, dbSchema string
	var logPath string
	var jsonConfigPath string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var scoreRefreshInterval time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&dbHost, "db-host", "", "Metadata database host")
	flag.StringVar(&dbPort, "db-port", "", "Metadata database port")
	flag.StringVar(&dbUser, "db-user", "", "Metadata database user")
	flag.StringVar(&dbName, "db-name", "", "Metadata database name")
	flag.StringVar(&dbSchema, "db-schema", "", "Metadata database schema")
	flag.StringVar(&logPath, "log-path", "", "Log output directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&scoreRefreshInterval, "score-refresh-interval", 0, "Scorecard refresh interval")

	flag.Parse()

	return &Config{
		DB: DBConfig{
			Host:   dbHost,
			Port:   dbPort,
			User:   dbUser,
			Name:   dbName,
			Schema: dbSchema,
		},
		Auth: AuthConfig{
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Log: LogConfig{
			FilePath: logPath,
		},
		Server: ServerConfig{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: WorkersConfig{
			ScoreRefreshInterval: scoreRefreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
