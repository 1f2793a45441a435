package j2534

import (
	"bytes"
	"unicode/utf8"
	"unsafe"
)

// versionBufferSize is the size of each text buffer handed to the driver
// for version strings and last-error descriptions.
const versionBufferSize = 80

// API is the set of PassThru entry points exported by a vendor module.
//
// Every method maps 1:1 onto an exported function and returns the raw
// 32-bit status (0 means success). Output parameters are only valid when
// the status is zero. The ownership chain drives all calls through this
// interface, so a simulator or an instrumented fake can stand in for a
// real DLL.
type API interface {
	PassThruOpen(name *byte, deviceID *uint32) int32
	PassThruClose(deviceID uint32) int32
	PassThruConnect(deviceID, protocolID, flags, baudrate uint32, channelID *uint32) int32
	PassThruDisconnect(channelID uint32) int32
	PassThruReadMsgs(channelID uint32, msgs *Msg, numMsgs *uint32, timeout uint32) int32
	PassThruWriteMsgs(channelID uint32, msgs *Msg, numMsgs *uint32, timeout uint32) int32
	PassThruStartPeriodicMsg(channelID uint32, msg *Msg, msgID *uint32, timeInterval uint32) int32
	PassThruStopPeriodicMsg(channelID, msgID uint32) int32
	PassThruStartMsgFilter(channelID, filterType uint32, maskMsg, patternMsg, flowControlMsg *Msg, filterID *uint32) int32
	PassThruStopMsgFilter(channelID, filterID uint32) int32
	PassThruSetProgrammingVoltage(deviceID, pinNumber, voltage uint32) int32
	PassThruReadVersion(deviceID uint32, firmwareVersion, dllVersion, apiVersion *byte) int32
	PassThruGetLastError(errorDescription *byte) int32
	PassThruIoctl(handleID, ioctlID uint32, input, output unsafe.Pointer) int32

	// Unload releases the native module. Called exactly once, by the
	// Interface that owns the module, after all derived resources are gone.
	Unload() error
}

// cString bounds a driver-filled buffer at its NUL terminator and decodes
// it as UTF-8. A buffer without a terminator cannot be bounded and is
// rejected the same way as invalid text.
func cString(buf []byte) (string, error) {
	i := bytes.IndexByte(buf, 0)
	if i < 0 {
		return "", &Utf8Error{msg: "missing string terminator"}
	}
	if !utf8.Valid(buf[:i]) {
		return "", &Utf8Error{}
	}
	return string(buf[:i]), nil
}

// cPort converts a port name into the NUL-terminated buffer PassThruOpen
// expects. OpenAny passes nil instead to let the driver pick an adapter.
func cPort(port string) *byte {
	buf := append([]byte(port), 0)
	return &buf[0]
}
