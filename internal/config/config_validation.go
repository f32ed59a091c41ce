// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Required fields (missing values are fatal, never deferred to request time):
//   - Storage.DB.DSN
//   - Auth.TokenSignKey
//   - Auth.PasswordSalt
//
// Optional fields receive defaults: HTTP address, token issuer, and token
// duration.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrMissingDatabaseDSN)
	}

	if cfg.Auth.TokenSignKey == "" {
		err = errors.Join(err, ErrMissingTokenSignKey)
	}

	if cfg.Auth.PasswordSalt == "" {
		err = errors.Join(err, ErrMissingPasswordSalt)
	}

	if err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}

	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}

	return nil
}
