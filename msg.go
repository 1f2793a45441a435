package j2534

// MsgDataCapacity is the fixed payload capacity of a PassThru message.
const MsgDataCapacity = 4128

// Msg mirrors the PASSTHRU_MSG structure passed by reference to the driver
// for read, write, filter and periodic operations. Field order and sizes are
// fixed by the PassThru specification and must not change.
type Msg struct {
	ProtocolID     uint32
	RxStatus       uint32
	TxFlags        uint32
	Timestamp      uint32
	DataSize       uint32
	ExtraDataIndex uint32
	Data           [MsgDataCapacity]byte
}

// NewMsg returns a message tagged with the given protocol.
func NewMsg(protocol Protocol) *Msg {
	return &Msg{ProtocolID: uint32(protocol)}
}

// Bytes returns the valid portion of the payload, bounded by DataSize.
func (m *Msg) Bytes() []byte {
	n := m.DataSize
	if n > MsgDataCapacity {
		n = MsgDataCapacity
	}
	return m.Data[:n]
}

// SetData copies data into the payload buffer and updates DataSize.
// Data longer than the fixed capacity is truncated.
func (m *Msg) SetData(data []byte) {
	n := copy(m.Data[:], data)
	m.DataSize = uint32(n)
}

// FilterType selects the kind of message filter installed on a channel.
type FilterType uint32

const (
	// PassFilter lets matching messages through to the receive queue.
	PassFilter FilterType = 1

	// BlockFilter drops matching messages.
	BlockFilter FilterType = 2

	// FlowControlFilter installs an ISO 15765 flow control filter.
	FlowControlFilter FilterType = 3
)

// Special programming voltage values for Device.SetProgrammingVoltage.
const (
	// VoltageShortToGround shorts the pin to ground.
	VoltageShortToGround uint32 = 0xFFFFFFFE

	// VoltageOff removes voltage from the pin.
	VoltageOff uint32 = 0xFFFFFFFF
)
