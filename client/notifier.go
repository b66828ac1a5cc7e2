package client

import (
	"context"
	"sync"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Toast is a transient user-facing message.
type Toast struct {
	Title       string
	Description string
	Variant     Variant
}

type Notifier interface {
	Notify(t Toast)
}

// Navigator is the front-end's location. The CLI and tests use StaticNavigator.
type Navigator interface {
	CurrentPath() string
	Redirect(target string)
}

// ErrorReporter receives failures that are not the user's fault.
type ErrorReporter interface {
	Report(ctx context.Context, err *Error)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Toast) {}

type nopReporter struct{}

func (nopReporter) Report(context.Context, *Error) {}

// StaticNavigator starts at a fixed location and records redirects.
type StaticNavigator struct {
	mu        sync.Mutex
	current   string
	redirects []string
}

var _ Navigator = (*StaticNavigator)(nil)

func NewStaticNavigator(current string) *StaticNavigator {
	return &StaticNavigator{current: current}
}

func (n *StaticNavigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *StaticNavigator) Redirect(target string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.redirects = append(n.redirects, target)
	n.current = target
}

func (n *StaticNavigator) Redirects() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.redirects...)
}
