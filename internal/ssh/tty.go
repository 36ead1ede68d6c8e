package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty over an SSH channel. Each connected client
// gets its own SessionTty and tcell.Screen pair.
type SessionTty struct {
	rw    io.ReadWriteCloser
	winCh <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	cb     func() // resize callback registered by tcell

	stopOnce sync.Once
	stop     chan struct{}
	watching sync.WaitGroup
}

// NewSessionTty wraps an SSH channel as a tcell Tty. initial is the window
// from the PTY request; winCh delivers later resizes.
func NewSessionTty(rw io.ReadWriteCloser, initial gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		rw:     rw,
		window: initial,
		winCh:  winCh,
		stop:   make(chan struct{}),
	}
}

// Read reads raw key bytes from the client.
func (t *SessionTty) Read(b []byte) (int, error) { return t.rw.Read(b) }

// Write sends rendered output to the client.
func (t *SessionTty) Write(b []byte) (int, error) { return t.rw.Write(b) }

// Close stops resize tracking and closes the channel.
func (t *SessionTty) Close() error {
	t.Stop()
	return t.rw.Close()
}

// Start is a no-op; the SSH channel is already open.
func (t *SessionTty) Start() error { return nil }

// Stop ends resize tracking and waits for its goroutine.
func (t *SessionTty) Stop() error {
	t.stopOnce.Do(func() { close(t.stop) })
	t.watching.Wait()
	return nil
}

// Drain is a no-op; SSH flushes writes immediately.
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts following window changes until Stop.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	if t.winCh == nil {
		return
	}
	t.watching.Add(1)
	go func() {
		defer t.watching.Done()
		for {
			select {
			case <-t.stop:
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
	}()
}
