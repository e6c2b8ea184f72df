package id

import (
	"regexp"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_FormatAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		v := NewID32()
		if !reHex32.MatchString(v) {
			t.Fatalf("NewID32() = %q, want 32-char lowercase hex", v)
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("NewID32() produced duplicate %q", v)
		}
		seen[v] = struct{}{}
	}
}
