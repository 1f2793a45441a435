package j2534

import (
	"sync"

	"go.uber.org/zap"
)

// Device is a logical connection to a physical adapter, opened through an
// Interface. It carries the integer identifier assigned by the driver and
// cannot outlive the Interface that created it: the Interface defers its
// module unload until every Device has closed.
type Device struct {
	iface *Interface
	id    uint32

	mu       sync.Mutex
	channels int
	closed   bool
}

// ID returns the driver-assigned device identifier.
func (d *Device) ID() uint32 {
	return d.id
}

// ConnectRaw opens a protocol channel using driver-level numeric codes.
func (d *Device) ConnectRaw(protocol, flags, baudrate uint32) (*Channel, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil, &ClosedError{Resource: "device"}
	}
	d.mu.Unlock()

	var id uint32
	if s := d.iface.api.PassThruConnect(d.id, protocol, flags, baudrate, &id); s != 0 {
		return nil, statusError(s)
	}

	d.mu.Lock()
	d.channels++
	d.mu.Unlock()

	d.iface.log.Debug("channel connected",
		zap.Uint32("device", d.id),
		zap.Uint32("channel", id),
		zap.Uint32("protocol", protocol),
		zap.Uint32("baudrate", baudrate),
	)
	return &Channel{dev: d, id: id}, nil
}

// Connect opens a protocol channel with typed protocol and flag values.
func (d *Device) Connect(protocol Protocol, flags ConnectFlags, baudrate uint32) (*Channel, error) {
	return d.ConnectRaw(uint32(protocol), uint32(flags), baudrate)
}

// ReadVersion reports the firmware, module and API version strings for
// this device. A driver string that is not valid bounded text yields
// *Utf8Error and no partial result.
func (d *Device) ReadVersion() (VersionInfo, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return VersionInfo{}, &ClosedError{Resource: "device"}
	}
	d.mu.Unlock()

	var firmware, dll, api [versionBufferSize]byte
	if s := d.iface.api.PassThruReadVersion(d.id, &firmware[0], &dll[0], &api[0]); s != 0 {
		return VersionInfo{}, statusError(s)
	}

	firmwareVersion, err := cString(firmware[:])
	if err != nil {
		return VersionInfo{}, err
	}
	dllVersion, err := cString(dll[:])
	if err != nil {
		return VersionInfo{}, err
	}
	apiVersion, err := cString(api[:])
	if err != nil {
		return VersionInfo{}, err
	}
	return VersionInfo{
		FirmwareVersion: firmwareVersion,
		DLLVersion:      dllVersion,
		APIVersion:      apiVersion,
	}, nil
}

// SetProgrammingVoltage applies a programming voltage (in millivolts) to
// the given pin. VoltageShortToGround and VoltageOff select the two
// special pin states.
func (d *Device) SetProgrammingVoltage(pinNumber, voltage uint32) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return &ClosedError{Resource: "device"}
	}
	d.mu.Unlock()

	return statusError(d.iface.api.PassThruSetProgrammingVoltage(d.id, pinNumber, voltage))
}

// Close releases the Device. The driver identifier is closed immediately
// when no Channels remain, otherwise when the last one disconnects; either
// way the owning Interface is then notified. Close is a no-op after the
// first call.
func (d *Device) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	deferRelease := d.channels > 0
	d.mu.Unlock()

	if deferRelease {
		return nil
	}
	return d.release()
}

// channelClosed is called once per Channel, after the channel has
// disconnected its driver identifier.
func (d *Device) channelClosed() {
	d.mu.Lock()
	d.channels--
	release := d.closed && d.channels == 0
	d.mu.Unlock()

	if release {
		if err := d.release(); err != nil {
			d.iface.log.Warn("deferred device close failed",
				zap.Uint32("device", d.id), zap.Error(err))
		}
	}
}

// release closes the device identifier and hands the reference back to the
// Interface. Runs exactly once per Device.
func (d *Device) release() error {
	s := d.iface.api.PassThruClose(d.id)
	d.iface.log.Debug("device closed", zap.Uint32("device", d.id))
	d.iface.deviceClosed()
	return statusError(s)
}
