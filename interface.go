package j2534

import (
	"sync"

	"go.uber.org/zap"
)

// Interface owns a loaded PassThru module and is the root of the resource
// chain: Devices are opened from an Interface, Channels from a Device.
//
// Release order is enforced with counted references. Closing a parent
// before its children is allowed: the parent is marked closed and its
// native release is deferred until the last child closes, so the driver
// always observes disconnect before close before unload, and each native
// release runs exactly once. Operations on a closed resource return
// *ClosedError.
//
// The chain adds no synchronization around driver calls; the host is
// responsible for serializing use of a given Interface, Device or Channel.
type Interface struct {
	api API
	log *zap.Logger

	mu      sync.Mutex
	devices int
	closed  bool
}

// Option configures an Interface.
type Option func(*Interface)

// WithLogger attaches a logger for lifecycle events. The default discards
// everything.
func WithLogger(log *zap.Logger) Option {
	return func(i *Interface) {
		if log != nil {
			i.log = log
		}
	}
}

// New loads the PassThru module at the given absolute path.
//
// It fails with *NotFoundError when the module cannot be loaded or does not
// export the full PassThru entry-point set.
func New(path string, opts ...Option) (*Interface, error) {
	api, err := loadAPI(path)
	if err != nil {
		return nil, err
	}
	i := NewWithAPI(api, opts...)
	i.log.Debug("passthru module loaded", zap.String("path", path))
	return i, nil
}

// NewWithAPI wraps an already-constructed entry-point implementation, such
// as a device simulator. The Interface takes ownership: Unload is invoked
// on final release.
func NewWithAPI(api API, opts ...Option) *Interface {
	i := &Interface{api: api, log: zap.NewNop()}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Open asks the driver for a connection on the named port (driver-defined,
// e.g. a COM port; empty selects the driver default port name).
func (i *Interface) Open(port string) (*Device, error) {
	return i.open(cPort(port))
}

// OpenAny asks the driver to pick any available adapter.
func (i *Interface) OpenAny() (*Device, error) {
	return i.open(nil)
}

func (i *Interface) open(name *byte) (*Device, error) {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return nil, &ClosedError{Resource: "interface"}
	}
	i.mu.Unlock()

	var id uint32
	if s := i.api.PassThruOpen(name, &id); s != 0 {
		return nil, statusError(s)
	}

	i.mu.Lock()
	i.devices++
	i.mu.Unlock()

	i.log.Debug("device opened", zap.Uint32("device", id))
	return &Device{iface: i, id: id}, nil
}

// LastError returns the driver's text description of its most recent
// failure.
func (i *Interface) LastError() (string, error) {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return "", &ClosedError{Resource: "interface"}
	}
	i.mu.Unlock()

	var buf [versionBufferSize]byte
	if s := i.api.PassThruGetLastError(&buf[0]); s != 0 {
		return "", statusError(s)
	}
	return cString(buf[:])
}

// Close releases the Interface. The module is unloaded immediately when no
// Devices remain, otherwise when the last one closes. Close is a no-op
// after the first call.
func (i *Interface) Close() error {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return nil
	}
	i.closed = true
	deferRelease := i.devices > 0
	i.mu.Unlock()

	if deferRelease {
		return nil
	}
	return i.unload()
}

// deviceClosed is called once per Device, when the device has released its
// driver identifier.
func (i *Interface) deviceClosed() {
	i.mu.Lock()
	i.devices--
	release := i.closed && i.devices == 0
	i.mu.Unlock()

	if release {
		if err := i.unload(); err != nil {
			i.log.Warn("deferred module unload failed", zap.Error(err))
		}
	}
}

func (i *Interface) unload() error {
	i.log.Debug("passthru module unloaded")
	return i.api.Unload()
}
