package j2534

import (
	"unsafe"
)

// mockAPI is an instrumented in-memory driver. It hands out sequential
// device and channel identifiers, records every entry-point call in order
// and can be forced to fail any entry point with a chosen status.
type mockAPI struct {
	calls  []string
	status map[string]int32

	nextDeviceID  uint32
	nextChannelID uint32
	nextMsgID     uint32
	nextFilterID  uint32

	// openedAny records, per PassThruOpen call, whether the port name was
	// the null any-adapter indicator.
	openedAny []bool

	lastConnect struct {
		deviceID, protocol, flags, baudrate uint32
	}
	lastVoltage struct {
		deviceID, pin, voltage uint32
	}
	lastFilterType uint32

	// Buffer contents for PassThruReadVersion, terminator included.
	firmware []byte
	dllVer   []byte
	apiVer   []byte

	lastError string

	queued  []Msg // returned by PassThruReadMsgs
	written []Msg // collected by PassThruWriteMsgs
}

func newMockAPI() *mockAPI {
	return &mockAPI{
		status:   map[string]int32{},
		firmware: []byte("1.16\x00"),
		dllVer:   []byte("04.04 build 7\x00"),
		apiVer:   []byte("04.04\x00"),
	}
}

func (m *mockAPI) record(name string) int32 {
	m.calls = append(m.calls, name)
	return m.status[name]
}

func (m *mockAPI) count(name string) int {
	n := 0
	for _, c := range m.calls {
		if c == name {
			n++
		}
	}
	return n
}

// callIndex returns the position of the first occurrence of name, or -1.
func (m *mockAPI) callIndex(name string) int {
	for i, c := range m.calls {
		if c == name {
			return i
		}
	}
	return -1
}

func fillBuffer(dst *byte, src []byte) {
	copy(unsafe.Slice(dst, versionBufferSize), src)
}

func (m *mockAPI) PassThruOpen(name *byte, deviceID *uint32) int32 {
	if s := m.record("PassThruOpen"); s != 0 {
		return s
	}
	m.openedAny = append(m.openedAny, name == nil)
	m.nextDeviceID++
	*deviceID = m.nextDeviceID
	return 0
}

func (m *mockAPI) PassThruClose(deviceID uint32) int32 {
	return m.record("PassThruClose")
}

func (m *mockAPI) PassThruConnect(deviceID, protocolID, flags, baudrate uint32, channelID *uint32) int32 {
	if s := m.record("PassThruConnect"); s != 0 {
		return s
	}
	m.lastConnect.deviceID = deviceID
	m.lastConnect.protocol = protocolID
	m.lastConnect.flags = flags
	m.lastConnect.baudrate = baudrate
	m.nextChannelID++
	*channelID = m.nextChannelID
	return 0
}

func (m *mockAPI) PassThruDisconnect(channelID uint32) int32 {
	return m.record("PassThruDisconnect")
}

func (m *mockAPI) PassThruReadMsgs(channelID uint32, msgs *Msg, numMsgs *uint32, timeout uint32) int32 {
	if s := m.record("PassThruReadMsgs"); s != 0 {
		return s
	}
	out := unsafe.Slice(msgs, *numMsgs)
	n := copy(out, m.queued)
	*numMsgs = uint32(n)
	return 0
}

func (m *mockAPI) PassThruWriteMsgs(channelID uint32, msgs *Msg, numMsgs *uint32, timeout uint32) int32 {
	if s := m.record("PassThruWriteMsgs"); s != 0 {
		return s
	}
	m.written = append(m.written, unsafe.Slice(msgs, *numMsgs)...)
	return 0
}

func (m *mockAPI) PassThruStartPeriodicMsg(channelID uint32, msg *Msg, msgID *uint32, timeInterval uint32) int32 {
	if s := m.record("PassThruStartPeriodicMsg"); s != 0 {
		return s
	}
	m.nextMsgID++
	*msgID = m.nextMsgID
	return 0
}

func (m *mockAPI) PassThruStopPeriodicMsg(channelID, msgID uint32) int32 {
	return m.record("PassThruStopPeriodicMsg")
}

func (m *mockAPI) PassThruStartMsgFilter(channelID, filterType uint32, maskMsg, patternMsg, flowControlMsg *Msg, filterID *uint32) int32 {
	if s := m.record("PassThruStartMsgFilter"); s != 0 {
		return s
	}
	m.lastFilterType = filterType
	m.nextFilterID++
	*filterID = m.nextFilterID
	return 0
}

func (m *mockAPI) PassThruStopMsgFilter(channelID, filterID uint32) int32 {
	return m.record("PassThruStopMsgFilter")
}

func (m *mockAPI) PassThruSetProgrammingVoltage(deviceID, pinNumber, voltage uint32) int32 {
	if s := m.record("PassThruSetProgrammingVoltage"); s != 0 {
		return s
	}
	m.lastVoltage.deviceID = deviceID
	m.lastVoltage.pin = pinNumber
	m.lastVoltage.voltage = voltage
	return 0
}

func (m *mockAPI) PassThruReadVersion(deviceID uint32, firmwareVersion, dllVersion, apiVersion *byte) int32 {
	if s := m.record("PassThruReadVersion"); s != 0 {
		return s
	}
	fillBuffer(firmwareVersion, m.firmware)
	fillBuffer(dllVersion, m.dllVer)
	fillBuffer(apiVersion, m.apiVer)
	return 0
}

func (m *mockAPI) PassThruGetLastError(errorDescription *byte) int32 {
	if s := m.record("PassThruGetLastError"); s != 0 {
		return s
	}
	fillBuffer(errorDescription, append([]byte(m.lastError), 0))
	return 0
}

func (m *mockAPI) PassThruIoctl(handleID, ioctlID uint32, input, output unsafe.Pointer) int32 {
	return m.record("PassThruIoctl")
}

func (m *mockAPI) Unload() error {
	m.record("Unload")
	return nil
}
