// Package backend picks the windowing subsystem the input services run on.
package backend

import (
	"errors"
	"fmt"

	"github.com/bnema/wlcinput/input"
	"github.com/bnema/wlcinput/internal/config"
	"github.com/bnema/wlcinput/internal/logger"
	"github.com/bnema/wlcinput/internal/sim"
	"github.com/bnema/wlcinput/internal/wlc"
	"github.com/bnema/wlcinput/internal/xwayland"
)

var (
	ErrNoBackend      = errors.New("no input backend available")
	ErrUnknownBackend = errors.New("unknown input backend")
)

// Backend is a subsystem that can be named and released
type Backend interface {
	input.Subsystem
	Name() string
	Close() error
}

type factory struct {
	name string
	open func(cfg config.BackendConfig) (Backend, error)
}

// factories in order of preference for "auto"
var factories = []factory{
	{config.BackendWlc, openWlc},
	{config.BackendXWayland, openXWayland},
	{config.BackendSim, openSim},
}

func openWlc(config.BackendConfig) (Backend, error) {
	s, err := wlc.New()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openXWayland(cfg config.BackendConfig) (Backend, error) {
	s, err := xwayland.New(cfg.Display)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openSim(config.BackendConfig) (Backend, error) {
	return sim.New(), nil
}

// Open creates the backend named in cfg. "auto" tries each backend in turn
// and settles on the first that opens.
func Open(cfg config.BackendConfig) (Backend, error) {
	name := cfg.Name
	if name == "" {
		name = config.BackendAuto
	}

	if name != config.BackendAuto {
		for _, f := range factories {
			if f.name != name {
				continue
			}
			b, err := f.open(cfg)
			if err != nil {
				return nil, fmt.Errorf("failed to open %s backend: %w", name, err)
			}
			logger.Debugf("backend.Open: using %s", b.Name())
			return b, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}

	var errs []error
	for i, f := range factories {
		logger.Debugf("backend.Open: trying backend %d: %s", i, f.name)
		b, err := f.open(cfg)
		if err == nil {
			logger.Debugf("backend.Open: using %s", b.Name())
			return b, nil
		}
		logger.Debugf("backend.Open: backend %s failed: %v", f.name, err)
		errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
	}

	return nil, fmt.Errorf("%w: %w", ErrNoBackend, errors.Join(errs...))
}

// Services bundles the input services built on one backend.
type Services struct {
	Backend  Backend
	Pointer  *input.Pointer
	Keyboard *input.Keyboard
}

// NewServices opens a backend and builds the pointer and keyboard services.
// With shared set the backend is serialized for use from several goroutines.
func NewServices(cfg config.BackendConfig, shared bool) (*Services, error) {
	b, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	var sub input.Subsystem = b
	if shared {
		sub = input.Serialized(b)
	}

	return &Services{
		Backend:  b,
		Pointer:  input.NewPointer(sub),
		Keyboard: input.NewKeyboard(sub),
	}, nil
}

// Close releases the backend.
func (s *Services) Close() error {
	return s.Backend.Close()
}
