/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package urls

// Schemes which require host
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"ws":    true,
	"wss":   true,
}
