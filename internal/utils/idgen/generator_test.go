package idgen_test

import (
	"strings"
	"testing"

	"kbchat/internal/utils/idgen"
)

func TestNewID(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
		length int
	}{
		{name: "thread identifier", prefix: "thread", length: 24},
		{name: "message identifier", prefix: "msg", length: 24},
		{name: "short identifier", prefix: "evt", length: 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := idgen.NewID(tc.prefix, tc.length)
			if err != nil {
				t.Fatalf("NewID failed: %v", err)
			}
			if !strings.HasPrefix(id, tc.prefix+"_") {
				t.Errorf("id %q lacks prefix %q", id, tc.prefix+"_")
			}
			if want := len(tc.prefix) + 1 + tc.length; len(id) != want {
				t.Errorf("id length = %d, want %d", len(id), want)
			}
			for _, r := range id[len(tc.prefix)+1:] {
				if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
					t.Errorf("id %q contains character %q outside 0-9a-z", id, r)
				}
			}
		})
	}
}

func TestNewIDUniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id, err := idgen.NewID("thread", 24)
		if err != nil {
			t.Fatalf("NewID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s after %d draws", id, i)
		}
		seen[id] = true
	}
}
