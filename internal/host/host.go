// Package host mounts sessions into containers: the local terminal or one
// SSH connection each. Mounting the same container twice reuses its session.
package host

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/valentine-arcade/internal/scene"
	"github.com/vovakirdan/valentine-arcade/internal/session"
)

// ErrNoContainer is returned by Mount for an unnamed container.
var ErrNoContainer = errors.New("host: container name required")

// Container is a place a session is shown in.
type Container struct {
	Name          string
	Width, Height int   // Playfield size in cells; zero uses the default
	Seed          int64 // Layout seed; zero uses the host's
}

// Handle refers to a mounted session.
type Handle struct {
	Container Container
	Session   *session.Session

	host *Host
}

// Options configures a host.
type Options struct {
	Session session.Options // Template for every mounted session
	First   scene.ID        // Scene each session starts in
	Logger  *log.Logger
}

// Host tracks mounted sessions. It is safe for concurrent use, and
// Unmount may run while the container's loop is still driving the session.
type Host struct {
	opts Options
	log  *log.Logger

	mu     sync.Mutex
	mounts map[string]*Handle
}

// New creates a host.
func New(opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Session.Logger == nil {
		opts.Session.Logger = logger
	}
	return &Host{
		opts:   opts,
		log:    logger,
		mounts: make(map[string]*Handle),
	}
}

// Mount creates and starts a session for c. If c is already mounted the
// existing handle is returned.
func (h *Host) Mount(c Container) (*Handle, error) {
	if c.Name == "" {
		return nil, ErrNoContainer
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.mounts[c.Name]; ok {
		return existing, nil
	}

	opts := h.opts.Session
	if c.Width > 0 && c.Height > 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = c.Width, c.Height
	}
	if c.Seed != 0 {
		opts.Runtime.Seed = c.Seed
	}
	s := session.New(opts)
	if err := s.Start(h.opts.First); err != nil {
		s.Teardown()
		return nil, fmt.Errorf("host: mount %s: %w", c.Name, err)
	}

	handle := &Handle{Container: c, Session: s, host: h}
	h.mounts[c.Name] = handle
	h.log.Info("mounted", "container", c.Name, "session", s.ID())
	return handle, nil
}

// Unmount tears the handle's session down and forgets its container.
// Safe on nil and on handles that were already unmounted.
func (h *Host) Unmount(handle *Handle) {
	if handle == nil || handle.host != h {
		return
	}

	h.mu.Lock()
	if current, ok := h.mounts[handle.Container.Name]; ok && current == handle {
		delete(h.mounts, handle.Container.Name)
	}
	h.mu.Unlock()

	if !handle.Session.Closed() {
		handle.Session.Teardown()
		h.log.Info("unmounted", "container", handle.Container.Name, "session", handle.Session.ID())
	}
}

// Lookup returns the handle mounted in the named container.
func (h *Host) Lookup(name string) (*Handle, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle, ok := h.mounts[name]
	return handle, ok
}

// Mounted returns the number of mounted containers.
func (h *Host) Mounted() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.mounts)
}

// UnmountAll tears down every mounted session.
func (h *Host) UnmountAll() {
	h.mu.Lock()
	handles := make([]*Handle, 0, len(h.mounts))
	for _, handle := range h.mounts {
		handles = append(handles, handle)
	}
	h.mu.Unlock()

	for _, handle := range handles {
		h.Unmount(handle)
	}
}
