// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ids generates identifiers for surveys, questions, custom
demographics and chart edit sessions.

# ID Formats

	NewSurveyID()   → UUID v4 (36 chars)
	NewSessionID()  → 32 hex chars (16 random bytes)
	NewQuestionID() → 16 hex chars (8 random bytes)
	ShortID()       → base62, up to 11 chars (8 random bytes)

All randomness comes from crypto/rand.
*/
package ids
