// Package ssh adapts gliderlabs/ssh sessions to tcell so the viewer can run
// over a remote terminal.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty on top of one SSH session.
// Each connected client gets its own Tty and tcell.Screen pair.
type Tty struct {
	session gossh.Session
	term    string
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	cb     func() // resize callback registered by tcell
	once   sync.Once
	watch  sync.Once
	done   chan struct{}
}

// NewTty wraps s. It reports false when the client did not request a PTY.
func NewTty(s gossh.Session) (*Tty, bool) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, false
	}
	return &Tty{
		session: s,
		term:    pty.Term,
		winCh:   winCh,
		window:  pty.Window,
		done:    make(chan struct{}),
	}, true
}

// Term returns the terminal type the client asked for, possibly empty.
func (t *Tty) Term() string { return t.term }

// Read reads raw keyboard bytes from the session.
func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends rendered output to the session.
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close ends the resize watcher. The session itself is closed by the SSH
// handler returning.
func (t *Tty) Close() error {
	t.once.Do(func() { close(t.done) })
	return nil
}

// Start is a no-op; the channel is already open.
func (t *Tty) Start() error { return nil }

// Stop is a no-op; the handler goroutine owns the channel.
func (t *Tty) Stop() error { return nil }

// Drain is a no-op; SSH flushes writes immediately.
func (t *Tty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb, replacing any earlier callback. The first call
// starts watching window-change requests until the channel closes or the Tty
// is closed.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.watch.Do(func() { go t.watchResize() })
}

func (t *Tty) watchResize() {
	for {
		select {
		case <-t.done:
			return
		case win, ok := <-t.winCh:
			if !ok {
				return
			}
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}
}
