// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The level is read once from an environment variable derived from the
// executable name: for "broom" it is BROOM_LOG_LEVEL, accepting DEBUG, INFO,
// WARN and ERROR. Anything else means WARN.
//
// Logs are written to stderr so that stdout only carries combinations.
package ctxlog
