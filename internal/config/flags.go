package config

import (
	"flag"
	"time"
)

// parseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format host:port
//	-d database DSN
//	-c/-config JSON file path with configs
//	-secret-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session token duration (e.g., "87600h")
//	-history-limit per-user clipboard history bound
//	-poll-max-timeout upper bound for GET /api/poll's timeout parameter
//	-request-timeout request header read timeout
func parseFlags() *StructuredConfig {
	var serverAddress, databaseDSN, jsonConfigPath string
	var secretKey, tokenIssuer string
	var tokenDuration, requestTimeout, pollMaxTimeout time.Duration
	var historyLimit int

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&secretKey, "secret-key", "", "Session token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 87600h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request header read timeout (e.g., 30s)")
	flag.DurationVar(&pollMaxTimeout, "poll-max-timeout", 0, "Upper bound for the poll timeout parameter")
	flag.IntVar(&historyLimit, "history-limit", 0, "Per-user clipboard history bound")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  secretKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Clipboard: Clipboard{
			HistoryLimit:   historyLimit,
			PollMaxTimeout: pollMaxTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
