package main

import (
	"backrooms/internal/config"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes truncated by byte limit", "日本語のテスト名前", "日本語のテ"},
		{"emoji truncated by byte limit", "🎮Player🎮Name🎮", "🎮Player🎮Na"},
		{"mixed printable and control", "a\x00b\x01c\x02d", "abcd"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
		{"invalid utf-8 dropped", "ab\xffcd", "abcd"},
		{"DEL stripped", "user\x7fname", "username"},
		{"ssh user@host kept", "ops@bastion", "ops@bastion"},
		{"C1 control stripped", "walk\u009berer", "walkerer"},
		{"control chars do not count toward limit", "\x1b\x1b1234567890123456", "1234567890123456"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		allowed bool
	}{
		{"xterm-256color", "xterm-256color", true},
		{"tmux", "tmux", true},
		{"linux", "linux", true},
		{"vt100", "vt100", true},
		{"screen", "screen", true},
		{"rxvt-unicode-256color", "rxvt-unicode-256color", true},
		{"unknown term", "evil-term", false},
		{"path traversal", "../../../etc/passwd", false},
		{"empty string", "", false},
		{"xterm-kitty", "xterm-kitty", false},
		{"tmux-256color", "tmux-256color", true},
		{"screen-256color", "screen-256color", true},
		{"vt220", "vt220", true},
		{"dumb", "dumb", false},
		{"default term allowed", defaultTerm, true},
		{"case sensitive", "XTERM", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := allowedTerms[tc.term]
			if got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
}

func TestSessionTerm(t *testing.T) {
	cases := []struct {
		name    string
		pty     string
		environ []string
		want    string
	}{
		{"pty term wins", "screen", []string{"TERM=linux"}, "screen"},
		{"env fallback", "", []string{"LANG=C", "TERM=tmux"}, "tmux"},
		{"disallowed pty, allowed env", "evil", []string{"TERM=vt100"}, "vt100"},
		{"nothing allowed", "evil", []string{"TERM=../../x"}, defaultTerm},
		{"nothing set", "", nil, defaultTerm},
		{"empty TERM in env", "", []string{"TERM="}, defaultTerm},
		{"disallowed pty and env fall back to xterm-256color", "dumb", []string{"TERM=dumb"}, "xterm-256color"},
		{"first allowed env entry wins", "", []string{"TERM=evil", "TERM=linux", "TERM=tmux"}, "linux"},
		{"TERM prefix must match exactly", "", []string{"XTERM=screen", "MYTERM=tmux"}, defaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sessionTerm(tc.pty, tc.environ); got != tc.want {
				t.Errorf("sessionTerm = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHubSessionCap(t *testing.T) {
	cfg := &config.Config{
		Generation: config.GenerationConfig{Width: 20, Height: 20, Mode: "backrooms"},
		SSH:        config.SSHConfig{Port: 2222, HostKeyPath: "k", MaxSessions: 2},
	}
	h := newHub(cfg)
	if !h.acquire() || !h.acquire() {
		t.Fatal("the first two sessions should fit")
	}
	if h.acquire() {
		t.Fatal("a third session should be refused")
	}
	h.release()
	if !h.acquire() {
		t.Error("a released slot should be reusable")
	}
	if h.opts.Width != 20 || h.opts.Mode.String() != "backrooms" {
		t.Errorf("viewer options %+v", h.opts)
	}
}

func TestLoadOrCreateHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := loadOrCreateHostKey(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("host key not persisted: %v", err)
	}
	second, err := loadOrCreateHostKey(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Error("reloading the persisted key gave a different public key")
	}
}

func TestLoadOrCreateHostKeyReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadOrCreateHostKey(path); err != nil {
		t.Fatalf("garbage key file should be replaced: %v", err)
	}
}
