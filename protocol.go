package j2534

// Protocol identifies the wire protocol requested from the driver when
// connecting a channel.
type Protocol uint32

const (
	// ProtocolJ1850VPW selects SAE J1850 VPW (GM class 2).
	ProtocolJ1850VPW Protocol = 1

	// ProtocolJ1850PWM selects SAE J1850 PWM (Ford SCP).
	ProtocolJ1850PWM Protocol = 2

	// ProtocolISO9141 selects ISO 9141 (K-line).
	ProtocolISO9141 Protocol = 3

	// ProtocolISO14230 selects ISO 14230 (KWP2000 over K-line).
	ProtocolISO14230 Protocol = 4

	// ProtocolCAN selects raw CAN.
	ProtocolCAN Protocol = 5

	// ProtocolISO15765 selects ISO 15765 (ISO-TP over CAN).
	ProtocolISO15765 Protocol = 6

	// ProtocolSCIAEngine selects SCI A, engine bus (Chrysler).
	ProtocolSCIAEngine Protocol = 7

	// ProtocolSCIATrans selects SCI A, transmission bus.
	ProtocolSCIATrans Protocol = 8

	// ProtocolSCIBEngine selects SCI B, engine bus.
	ProtocolSCIBEngine Protocol = 9

	// ProtocolSCIBTrans selects SCI B, transmission bus.
	ProtocolSCIBTrans Protocol = 10
)

// ConnectFlags is a bitmask of independent connect options, combined with
// bitwise OR before being handed to the driver.
type ConnectFlags uint32

const (
	// FlagNone requests default behavior.
	FlagNone ConnectFlags = 0x0

	// FlagCAN29BitID enables 29-bit CAN addressing.
	FlagCAN29BitID ConnectFlags = 0x100

	// FlagISO9141NoChecksum disables checksum handling on ISO 9141.
	FlagISO9141NoChecksum ConnectFlags = 0x200

	// FlagCANIDBoth matches both 11-bit and 29-bit CAN identifiers.
	FlagCANIDBoth ConnectFlags = 0x800

	// FlagISO9141KLineOnly restricts ISO 9141 to the K line.
	FlagISO9141KLineOnly ConnectFlags = 0x1000
)

// VersionInfo is the set of version strings a device reports.
type VersionInfo struct {
	FirmwareVersion string
	DLLVersion      string
	APIVersion      string
}
