package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"secret_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Clipboard struct {
		HistoryLimit   int      `json:"history_limit"`
		PollMaxTimeout duration `json:"poll_max_timeout"`
	} `json:"clipboard,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	f, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}
	defer f.Close()

	var jc jsonConfig
	if err := json.NewDecoder(f).Decode(&jc); err != nil {
		return nil, fmt.Errorf("error decoding json config: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  jc.App.TokenSignKey,
			TokenIssuer:   jc.App.TokenIssuer,
			TokenDuration: time.Duration(jc.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{DSN: jc.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jc.Server.HTTPAddress,
			RequestTimeout: time.Duration(jc.Server.RequestTimeout),
		},
		Clipboard: Clipboard{
			HistoryLimit:   jc.Clipboard.HistoryLimit,
			PollMaxTimeout: time.Duration(jc.Clipboard.PollMaxTimeout),
		},
	}, nil
}

// duration unmarshals JSON durations given either as a Go duration string
// ("1h", "30s") or as a raw number of nanoseconds.
type duration time.Duration

func (d *duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = duration(parsed)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}
