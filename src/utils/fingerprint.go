package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// unknownComponent stands in for a missing user agent or client address so
// fingerprinting degrades instead of failing.
const unknownComponent = "unknown"

// DeviceHash derives the stable fingerprint used to enforce
// one-response-per-device. The form id is part of the input, so the same
// device produces different fingerprints on different forms and cannot be
// correlated across them.
func DeviceHash(userAgent, clientIP, formID string) string {
	if userAgent == "" {
		userAgent = unknownComponent
	}
	if clientIP == "" {
		clientIP = unknownComponent
	}

	sum := sha256.Sum256([]byte(userAgent + "|" + clientIP + "|" + formID))
	return hex.EncodeToString(sum[:])
}
