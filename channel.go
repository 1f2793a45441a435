package j2534

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"
)

// Channel is a protocol-level connection opened on a Device. Its data-plane
// operations forward directly to the driver with the usual status
// translation; the layer adds no buffering, retries or timeouts of its own
// beyond the timeout values passed through.
type Channel struct {
	dev *Device
	id  uint32

	mu     sync.Mutex
	closed bool
}

// ID returns the driver-assigned channel identifier.
func (c *Channel) ID() uint32 {
	return c.id
}

func (c *Channel) guard() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return &ClosedError{Resource: "channel"}
	}
	return nil
}

// ReadMsgs reads up to len(msgs) messages into msgs, blocking for at most
// timeout milliseconds (0 returns immediately with whatever is queued).
// It returns the number of messages the driver filled in.
func (c *Channel) ReadMsgs(msgs []Msg, timeout uint32) (int, error) {
	if err := c.guard(); err != nil {
		return 0, err
	}
	if len(msgs) == 0 {
		return 0, nil
	}
	n := uint32(len(msgs))
	if s := c.dev.iface.api.PassThruReadMsgs(c.id, &msgs[0], &n, timeout); s != 0 {
		return 0, statusError(s)
	}
	return int(n), nil
}

// WriteMsgs transmits the given messages, blocking for at most timeout
// milliseconds. It returns the number of messages the driver accepted.
func (c *Channel) WriteMsgs(msgs []Msg, timeout uint32) (int, error) {
	if err := c.guard(); err != nil {
		return 0, err
	}
	if len(msgs) == 0 {
		return 0, nil
	}
	n := uint32(len(msgs))
	if s := c.dev.iface.api.PassThruWriteMsgs(c.id, &msgs[0], &n, timeout); s != 0 {
		return 0, statusError(s)
	}
	return int(n), nil
}

// StartPeriodicMsg schedules msg for repeated transmission every
// timeInterval milliseconds and returns the identifier used to stop it.
func (c *Channel) StartPeriodicMsg(msg *Msg, timeInterval uint32) (uint32, error) {
	if err := c.guard(); err != nil {
		return 0, err
	}
	var msgID uint32
	if s := c.dev.iface.api.PassThruStartPeriodicMsg(c.id, msg, &msgID, timeInterval); s != 0 {
		return 0, statusError(s)
	}
	return msgID, nil
}

// StopPeriodicMsg cancels a periodic message by its identifier.
func (c *Channel) StopPeriodicMsg(msgID uint32) error {
	if err := c.guard(); err != nil {
		return err
	}
	return statusError(c.dev.iface.api.PassThruStopPeriodicMsg(c.id, msgID))
}

// StartMsgFilter installs a message filter and returns its identifier.
// flowControl is only meaningful for FlowControlFilter and may be nil
// otherwise.
func (c *Channel) StartMsgFilter(filterType FilterType, mask, pattern, flowControl *Msg) (uint32, error) {
	if err := c.guard(); err != nil {
		return 0, err
	}
	var filterID uint32
	s := c.dev.iface.api.PassThruStartMsgFilter(c.id, uint32(filterType), mask, pattern, flowControl, &filterID)
	if s != 0 {
		return 0, statusError(s)
	}
	return filterID, nil
}

// StopMsgFilter removes a message filter by its identifier.
func (c *Channel) StopMsgFilter(filterID uint32) error {
	if err := c.guard(); err != nil {
		return err
	}
	return statusError(c.dev.iface.api.PassThruStopMsgFilter(c.id, filterID))
}

// Ioctl forwards a generic ioctl with raw input and output buffers. The
// buffer layouts are ioctl-specific and defined by the PassThru
// specification.
func (c *Channel) Ioctl(ioctlID uint32, input, output unsafe.Pointer) error {
	if err := c.guard(); err != nil {
		return err
	}
	return statusError(c.dev.iface.api.PassThruIoctl(c.id, ioctlID, input, output))
}

// Close disconnects the channel and hands the reference back to the owning
// Device. Close is a no-op after the first call.
func (c *Channel) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	s := c.dev.iface.api.PassThruDisconnect(c.id)
	c.dev.iface.log.Debug("channel disconnected", zap.Uint32("channel", c.id))
	c.dev.channelClosed()
	return statusError(s)
}
