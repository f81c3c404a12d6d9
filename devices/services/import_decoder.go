package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// DecodeShiftJIS converts a raw upload buffer from Shift_JIS into UTF-8.
// Legacy inventory exports come out of Windows tooling in CP932, so the
// source encoding is assumed rather than detected. Any undecodable byte
// sequence fails the whole batch.
func DecodeShiftJIS(data []byte) (string, error) {
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode Shift_JIS input: %w", err)
	}

	// The decoder substitutes U+FFFD for malformed input instead of
	// returning an error, so treat any replacement rune as a decode failure.
	if strings.ContainsRune(string(decoded), utf8.RuneError) {
		return "", fmt.Errorf("input contains byte sequences that are not valid Shift_JIS")
	}

	return string(decoded), nil
}
