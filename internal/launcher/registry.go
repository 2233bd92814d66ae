package launcher

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateMode is returned when a second controller claims a mode.
	ErrDuplicateMode = errors.New("mode already registered")
	// ErrDuplicatePrefix is returned when two controllers share a trigger.
	ErrDuplicatePrefix = errors.New("prefix already registered")
	// ErrLaunchController is returned when registering the default mode.
	ErrLaunchController = errors.New("launch mode has no controller")
)

// Registry maps modes to their controllers and resolves raw input text to the
// mode that should be active.
type Registry struct {
	controllers map[Mode]Controller
	prefixes    map[string]Mode
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		controllers: make(map[Mode]Controller),
		prefixes:    make(map[string]Mode),
	}
}

// Register adds a controller. Each mode and each prefix may only be claimed once.
func (r *Registry) Register(c Controller) error {
	mode := c.Mode()
	if mode == ModeLaunch {
		return ErrLaunchController
	}
	if _, ok := r.controllers[mode]; ok {
		return fmt.Errorf("%s: %w", mode, ErrDuplicateMode)
	}
	if prefix, ok := c.Prefix(); ok {
		if existing, taken := r.prefixes[prefix]; taken {
			return fmt.Errorf("%q claimed by %s: %w", prefix, existing, ErrDuplicatePrefix)
		}
		r.prefixes[prefix] = mode
	}
	r.controllers[mode] = c
	return nil
}

// Controller returns the controller for mode, if any.
func (r *Registry) Controller(mode Mode) (Controller, bool) {
	c, ok := r.controllers[mode]
	return c, ok
}

// Controllers returns the registered controllers in priority order.
func (r *Registry) Controllers() []Controller {
	out := make([]Controller, 0, len(r.controllers))
	for _, mode := range Modes() {
		if c, ok := r.controllers[mode]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Resolve returns the first mode, in priority order, whose controller is
// enabled and claims text. ModeLaunch is returned when none does.
func (r *Registry) Resolve(text string, enabled func(Mode) bool) Mode {
	for _, mode := range Modes() {
		c, ok := r.controllers[mode]
		if !ok {
			continue
		}
		if enabled != nil && !enabled(mode) {
			continue
		}
		if c.ShouldActivate(text) {
			return mode
		}
	}
	return ModeLaunch
}
