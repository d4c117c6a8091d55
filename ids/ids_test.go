// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"testing"

	"github.com/google/uuid"
)

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}

func isBase62(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			if !isHex(id) {
				t.Errorf("GenerateID() = %q, not hex", id)
			}
		})
	}

	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestNewSurveyID(t *testing.T) {
	id, err := NewSurveyID()
	if err != nil {
		t.Fatalf("NewSurveyID() error = %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("NewSurveyID() = %q is not a UUID: %v", id, err)
	}
}

func TestSessionAndQuestionIDs(t *testing.T) {
	sid, err := NewSessionID()
	if err != nil {
		t.Fatal(err)
	}
	if len(sid) != 32 || !isHex(sid) {
		t.Errorf("NewSessionID() = %q", sid)
	}

	qid, err := NewQuestionID()
	if err != nil {
		t.Fatal(err)
	}
	if len(qid) != 16 || !isHex(qid) {
		t.Errorf("NewQuestionID() = %q", qid)
	}
}

func TestShortID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, err := ShortID()
		if err != nil {
			t.Fatal(err)
		}
		if id == "" || len(id) > 11 || !isBase62(id) {
			t.Errorf("ShortID() = %q", id)
		}
		if seen[id] {
			t.Errorf("ShortID() repeated %q", id)
		}
		seen[id] = true
	}
}

func TestBase62Encode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"zero bytes", []byte{0, 0, 0, 0}, "0"},
		{"one", []byte{0, 0, 0, 1}, "1"},
		{"sixty-two", []byte{0, 0, 0, 62}, "10"},
		{"large value", []byte{255, 255, 255, 255, 255, 255, 255, 255}, "lYGhA16ahyf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base62Encode(tt.input); got != tt.want {
				t.Errorf("base62Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}
