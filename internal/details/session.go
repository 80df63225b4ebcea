// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package details

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/lookup"
)

// State is the lifecycle of a details Session.
type State string

const (
	StateIdle             State = "idle"
	StateDetailsRequested State = "details_requested"
)

// Event moves a Session between states.
type Event string

const (
	EventRequest Event = "request"
	EventRender  Event = "render"
	EventCancel  Event = "cancel"
)

type transition struct {
	from  State
	event Event
	to    State
}

var transitions = []transition{
	{from: StateIdle, event: EventRequest, to: StateDetailsRequested},
	{from: StateDetailsRequested, event: EventRender, to: StateIdle},
	{from: StateDetailsRequested, event: EventCancel, to: StateIdle},
}

// next returns the target state of event from s.
func next(s State, e Event) (State, bool) {
	for _, t := range transitions {
		if t.from == s && t.event == e {
			return t.to, true
		}
	}
	return s, false
}

var (
	// ErrInvalidTransition is returned for events not allowed in the
	// current state.
	ErrInvalidTransition = errors.New("invalid details transition")

	// ErrEmptyTitle is returned by Request for a blank title.
	ErrEmptyTitle = errors.New("title must not be empty")
)

// Panel is the rendered details view of one movie.
type Panel struct {
	Title   string         `json:"title"`
	Details lookup.Details `json:"details"`
	// Movie is the catalog row for Title, when the catalog has one.
	Movie *catalog.Movie `json:"movie,omitempty"`
	// Found is false when neither the metadata service nor the catalog
	// knows the title.
	Found bool `json:"found"`
}

// Session is the explicit details state machine. It is safe for concurrent
// use; Render holds no lock while the lookup runs.
type Session struct {
	cat      *catalog.Catalog
	resolver *lookup.Resolver

	mu    sync.Mutex
	state State
	title string
}

// NewSession creates an Idle session. cat may be nil.
func NewSession(cat *catalog.Catalog, resolver *lookup.Resolver) *Session {
	if resolver == nil {
		resolver = lookup.NewResolver(nil, "")
	}
	return &Session{cat: cat, resolver: resolver, state: StateIdle}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Title returns the requested title, or "" when Idle.
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// Request selects title for display.
func (s *Session) Request(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fire(EventRequest); err != nil {
		return err
	}
	s.title = title
	return nil
}

// Cancel drops a pending request.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fire(EventCancel); err != nil {
		return err
	}
	s.title = ""
	return nil
}

// Render resolves the requested title and returns the session to Idle.
func (s *Session) Render(ctx context.Context) (Panel, error) {
	s.mu.Lock()
	if _, ok := next(s.state, EventRender); !ok {
		state := s.state
		s.mu.Unlock()
		return Panel{}, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, EventRender, state)
	}
	title := s.title
	s.mu.Unlock()

	panel := s.build(ctx, title)

	s.mu.Lock()
	defer s.mu.Unlock()
	// A concurrent Cancel already returned the session to Idle.
	if s.state == StateDetailsRequested && s.title == title {
		_ = s.fire(EventRender)
		s.title = ""
	}
	return panel, nil
}

// fire must be called with mu held.
func (s *Session) fire(e Event) error {
	to, ok := next(s.state, e)
	if !ok {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, e, s.state)
	}
	s.state = to
	return nil
}

func (s *Session) build(ctx context.Context, title string) Panel {
	panel := Panel{Title: title, Details: s.resolver.Resolve(ctx, title)}
	panel.Found = !panel.Details.Placeholder

	if s.cat == nil {
		return panel
	}
	if i, ok := s.cat.IndexOf(title); ok {
		m := s.cat.At(i)
		panel.Movie = &m
		panel.Found = true
		if panel.Details.Placeholder {
			panel.Details.Overview = m.Overview
			panel.Details.ReleaseDate = m.ReleaseDate
			panel.Details.Rating = m.Rating
		}
	}
	return panel
}

// Show runs one Idle → DetailsRequested → Idle cycle for title.
func Show(ctx context.Context, cat *catalog.Catalog, resolver *lookup.Resolver, title string) (Panel, error) {
	s := NewSession(cat, resolver)
	if err := s.Request(title); err != nil {
		return Panel{}, err
	}
	return s.Render(ctx)
}
