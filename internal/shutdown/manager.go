package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"charfreq/internal/logger"
)

const component = "ShutdownManager"

// DefaultStepTimeout bounds how long a single component may take to stop
const DefaultStepTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable
type Func func()

func (f Func) Shutdown() {
	f()
}

type namedComponent struct {
	name      string
	component Shutdownable
}

// Manager stops registered components in reverse registration order, once
type Manager struct {
	components  []namedComponent
	logger      logger.Logger
	stepTimeout time.Duration
	mu          sync.Mutex
	done        chan struct{}
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewManager creates a manager with DefaultStepTimeout and no components
func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		components:  make([]namedComponent, 0),
		logger:      log,
		stepTimeout: DefaultStepTimeout,
		done:        make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// SetStepTimeout overrides DefaultStepTimeout
func (m *Manager) SetStepTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stepTimeout = timeout
}

// Register adds a component; later registrations stop first
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, namedComponent{name: name, component: component})
}

// Listen runs Shutdown when the process receives SIGINT or SIGTERM
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info(component, "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.ctx.Done():
		}
	}()
}

// Shutdown cancels Context, closes Done and stops every component. Calls
// after the first return immediately.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return // Already shutting down
	default:
		close(m.done)
	}

	m.logger.Info(component, "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		entry := m.components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			entry.component.Shutdown()
		}()

		select {
		case <-done:
			m.logger.Debug(component, "component stopped", map[string]interface{}{
				"component": entry.name,
			})
		case <-time.After(m.stepTimeout):
			m.logger.Warning(component, "component shutdown timeout", map[string]interface{}{
				"component": entry.name,
			})
		}
	}

	m.logger.Info(component, "shutdown sequence completed", nil)
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
