// backrooms-server starts an SSH server that gives every connecting terminal
// its own backrooms viewer. Build:
//
//	go build -o backrooms-server ./cmd/server
//
// Usage:
//
//	./backrooms-server [--port 2222] [--key server_host_key]
//
// Settings also come from the environment or a .env file (see
// internal/config). Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"unicode"

	"backrooms/internal/config"
	"backrooms/internal/generate"
	internalssh "backrooms/internal/ssh"
	"backrooms/internal/viewer"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	port := flag.Int("port", cfg.SSH.Port, "SSH server port")
	keyFile := flag.String("key", cfg.SSH.HostKeyPath, "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()
	cfg.SSH.Port = *port
	cfg.SSH.HostKeyPath = *keyFile
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	signer, err := loadOrCreateHostKey(cfg.SSH.HostKeyPath)
	if err != nil {
		log.Fatal(err)
	}
	h := newHub(cfg)

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.SSH.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; the viewer exposes nothing private.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("backrooms SSH server listening on :%d (%s %dx%d, up to %d sessions)",
		cfg.SSH.Port, cfg.Generation.ParsedMode(), cfg.Generation.Width, cfg.Generation.Height, cfg.SSH.MaxSessions)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", cfg.SSH.Port)
	log.Fatal(srv.ListenAndServe())
}

// ─── sessions ───────────────────────────────────────────────────────────────

// hub hands every SSH session its own viewer. Viewers share nothing; the hub
// only bounds how many run at once.
type hub struct {
	opts  viewer.Options
	slots chan struct{}
}

func newHub(cfg *config.Config) *hub {
	return &hub{
		opts: viewer.Options{
			Width:  cfg.Generation.Width,
			Height: cfg.Generation.Height,
			Seed:   cfg.Generation.Seed,
			Mode:   cfg.Generation.ParsedMode(),
			Config: generate.DefaultConfig(),
			Theme:  cfg.Generation.Theme,
		},
		slots: make(chan struct{}, cfg.SSH.MaxSessions),
	}
}

// acquire reserves a session slot without blocking.
func (h *hub) acquire() bool {
	select {
	case h.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (h *hub) release() { <-h.slots }

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *hub) handleSession(s gossh.Session) {
	name := sanitizeName(s.User())
	if !h.acquire() {
		fmt.Fprintln(s, "The server is full. Try again later.")
		log.Printf("rejected %s from %s: session limit reached", name, s.RemoteAddr())
		return
	}
	defer h.release()

	tty, ok := internalssh.NewTty(s)
	if !ok {
		fmt.Fprintln(s, "The viewer requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	defer tty.Close()

	term := sessionTerm(tty.Term(), s.Environ())

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	log.Printf("session start: %s from %s (TERM=%s)", name, s.RemoteAddr(), term)
	opts := h.opts
	opts.OnReport = func(r generate.Report) {
		log.Printf("session %s generated %s", name, r)
	}
	viewer.New(screen, opts).Run()
	log.Printf("session end: %s", name)
}

// termMu protects os.Setenv("TERM") around screen creation, which happens
// concurrently across sessions.
var termMu sync.Mutex

// allowedTerms lists the terminal types a client may select. Anything else is
// replaced by xterm-256color so clients cannot steer terminfo lookups.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// sessionTerm picks the PTY's terminal type, then TERM from the session
// environment, and falls back to defaultTerm when neither is allowed.
func sessionTerm(ptyTerm string, environ []string) string {
	if allowedTerms[ptyTerm] {
		return ptyTerm
	}
	for _, env := range environ {
		if t, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[t] {
			return t
		}
	}
	return defaultTerm
}

// maxNameBytes bounds user names in logs.
const maxNameBytes = 16

// sanitizeName drops control characters from an SSH user name and truncates
// it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer, nil
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "backrooms server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600); err != nil {
			log.Printf("Warning: could not save host key: %v", err)
		}
	}
	return signer, nil
}
