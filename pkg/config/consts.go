/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package config

const (
	DefaultLogLevel          = "info"
	DefaultTypeCacheSize     = 1024
	DefaultTypeCacheProvider = "hashicorp"
)
