// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventKind int

const (
	EventRunning EventKind = iota + 1
	EventCompleted
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventRunning:
		return "running"
	case EventCompleted:
		return "completed"
	case EventFailed:
		return "failed"
	}
	return "unknown"
}

// Event describes one step of a command invocation. All events of one
// invocation share ID.
type Event struct {
	ID       uuid.UUID
	Kind     EventKind
	Command  string
	Args     []string
	ExitCode int
	Err      error
	Time     time.Time
}

func (e Event) with(kind EventKind) Event {
	e.Kind = kind
	e.Time = time.Now()
	return e
}

// Observer receives command events. Notify must not block for long; the
// runner calls it synchronously.
type Observer interface {
	Notify(ctx context.Context, ev Event)
}

// Nop discards events.
type Nop struct{}

func (Nop) Notify(context.Context, Event) {}

// Observers fans events out to several observers in order.
type Observers []Observer

func (o Observers) Notify(ctx context.Context, ev Event) {
	for _, ob := range o {
		ob.Notify(ctx, ev)
	}
}

// LogObserver writes one log line per event.
type LogObserver struct {
	mu     sync.Mutex
	logger *log.Logger
}

// NewLogObserver returns an observer logging to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: log.New(w, "", log.LstdFlags|log.LUTC)}
}

func (l *LogObserver) Notify(_ context.Context, ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch ev.Kind {
	case EventRunning:
		l.logger.Printf("[%s] running %q args=%q", ev.ID, ev.Command, strings.Join(ev.Args, " "))
	case EventCompleted:
		l.logger.Printf("[%s] completed %q exit=%d", ev.ID, ev.Command, ev.ExitCode)
	case EventFailed:
		l.logger.Printf("[%s] failed %q exit=%d: %v", ev.ID, ev.Command, ev.ExitCode, ev.Err)
	}
}
