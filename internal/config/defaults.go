package config

import "time"

// applyDefaults fills in zero-valued fields of cfg after all configured
// sources (env, flags, JSON) have been merged. Values explicitly set by
// any source always win; this only fills gaps.
func applyDefaults(cfg *StructuredConfig) {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "copypasta"
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = 10 * 365 * 24 * time.Hour // ~10 years
	}
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = "dev-secret-key-change-in-production"
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "./copypasta.db"
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}

	if cfg.Clipboard.HistoryLimit == 0 {
		cfg.Clipboard.HistoryLimit = 50
	}
	if cfg.Clipboard.PollMaxTimeout == 0 {
		cfg.Clipboard.PollMaxTimeout = 60 * time.Second
	}
}
