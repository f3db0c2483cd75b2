package server

import (
	"errors"
	"fmt"

	"github.com/ironsheep/edge-ruler-mcp/internal/boundary"
	"github.com/ironsheep/edge-ruler-mcp/internal/imaging"
)

// ErrNoActivation is returned by tools that need an active capture.
var ErrNoActivation = errors.New("no active capture")

// activation is one overlay session: the capture being measured and the
// per-point scan state that goes with it.
type activation struct {
	capture *imaging.Capture
	session *boundary.Session
}

// ActivateResult describes a newly activated capture.
type ActivateResult struct {
	Path   string        `json:"path"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Scale  float64       `json:"scale"`
	Origin boundary.Rect `json:"origin"`

	// SessionReset is false when the capture matched the previous one for
	// this path and its skip counts were carried over.
	SessionReset bool `json:"session_reset"`
}

// activate builds a capture from path and installs it. A capture that is
// perceptually the same as the one it replaces keeps the existing Session.
func (s *Server) activate(path string, origin boundary.Rect, region *imaging.Region) (*ActivateResult, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	capture, err := imaging.NewCapture(img, origin, region)
	if err != nil {
		return nil, fmt.Errorf("failed to build capture: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := &activation{capture: capture, session: boundary.NewSession()}
	reset := true
	if prev, ok := s.activations[path]; ok && prev.capture.Similar(capture, s.cfg.HashDistance) {
		next.session = prev.session
		reset = false
	}
	s.activations[path] = next

	buf := capture.Buffer
	s.log.Info("capture activated",
		"path", path,
		"width", buf.Width(),
		"height", buf.Height(),
		"scale", buf.Scale(),
		"session_reset", reset)

	return &ActivateResult{
		Path:         path,
		Width:        buf.Width(),
		Height:       buf.Height(),
		Scale:        buf.Scale(),
		Origin:       buf.Origin(),
		SessionReset: reset,
	}, nil
}

// deactivate ends the activation for path and drops its cached image.
func (s *Server) deactivate(path string) bool {
	s.mu.Lock()
	_, ok := s.activations[path]
	delete(s.activations, path)
	s.mu.Unlock()

	s.cache.Evict(path)
	if ok {
		s.log.Info("capture deactivated", "path", path)
	}
	return ok
}

// withActivation runs fn with the activation for path while holding the
// server lock, so Session updates and the queries that read them stay paired.
func (s *Server) withActivation(path string, fn func(a *activation) (interface{}, error)) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activations[path]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoActivation, path)
	}
	return fn(a)
}
