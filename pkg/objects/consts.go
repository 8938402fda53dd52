/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

const (
	// Initial value of hash combinations
	HashSeed int32 = 1

	// Multiplier of hash combinations: HashPrime*seed + value
	HashPrime int32 = 31
)

const (
	hashTrue  int32 = 1231
	hashFalse int32 = 1237

	canonicalNaN32 uint32 = 0x7fc00000
	canonicalNaN64 uint64 = 0x7ff8000000000000
)

// Rendered value of nil
const NullString = "null"

// Rendered value of a slice met again inside itself
const recursionString = "[...]"

const (
	DefaultFieldSeparator     = ", "
	DefaultNameValueSeparator = "="
	NewLine                   = "\n"
)
