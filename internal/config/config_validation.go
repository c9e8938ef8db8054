// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the rest of the application relies on at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfig
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfig
	}

	if cfg.Clipboard.HistoryLimit <= 0 {
		return ErrInvalidClipboardConfig
	}

	if cfg.Clipboard.PollMaxTimeout <= 0 {
		return ErrInvalidClipboardConfig
	}

	return nil
}
