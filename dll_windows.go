//go:build windows

package j2534

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// dllAPI implements API on top of a vendor DLL. Procedure addresses are
// resolved once at load time; a module missing any entry point is rejected.
type dllAPI struct {
	dll *windows.DLL

	open                  *windows.Proc
	close                 *windows.Proc
	connect               *windows.Proc
	disconnect            *windows.Proc
	readMsgs              *windows.Proc
	writeMsgs             *windows.Proc
	startPeriodicMsg      *windows.Proc
	stopPeriodicMsg       *windows.Proc
	startMsgFilter        *windows.Proc
	stopMsgFilter         *windows.Proc
	setProgrammingVoltage *windows.Proc
	readVersion           *windows.Proc
	getLastError          *windows.Proc
	ioctl                 *windows.Proc
}

// loadAPI loads the PassThru module at path and resolves its entry points.
func loadAPI(path string) (API, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, &NotFoundError{}
	}

	d := &dllAPI{dll: dll}
	procs := []struct {
		name string
		proc **windows.Proc
	}{
		{"PassThruOpen", &d.open},
		{"PassThruClose", &d.close},
		{"PassThruConnect", &d.connect},
		{"PassThruDisconnect", &d.disconnect},
		{"PassThruReadMsgs", &d.readMsgs},
		{"PassThruWriteMsgs", &d.writeMsgs},
		{"PassThruStartPeriodicMsg", &d.startPeriodicMsg},
		{"PassThruStopPeriodicMsg", &d.stopPeriodicMsg},
		{"PassThruStartMsgFilter", &d.startMsgFilter},
		{"PassThruStopMsgFilter", &d.stopMsgFilter},
		{"PassThruSetProgrammingVoltage", &d.setProgrammingVoltage},
		{"PassThruReadVersion", &d.readVersion},
		{"PassThruGetLastError", &d.getLastError},
		{"PassThruIoctl", &d.ioctl},
	}
	for _, p := range procs {
		proc, err := dll.FindProc(p.name)
		if err != nil {
			dll.Release()
			return nil, &NotFoundError{msg: "entry point " + p.name + " not found"}
		}
		*p.proc = proc
	}
	return d, nil
}

func status(r uintptr) int32 {
	return int32(uint32(r))
}

func (d *dllAPI) PassThruOpen(name *byte, deviceID *uint32) int32 {
	r, _, _ := d.open.Call(
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(deviceID)),
	)
	return status(r)
}

func (d *dllAPI) PassThruClose(deviceID uint32) int32 {
	r, _, _ := d.close.Call(uintptr(deviceID))
	return status(r)
}

func (d *dllAPI) PassThruConnect(deviceID, protocolID, flags, baudrate uint32, channelID *uint32) int32 {
	r, _, _ := d.connect.Call(
		uintptr(deviceID),
		uintptr(protocolID),
		uintptr(flags),
		uintptr(baudrate),
		uintptr(unsafe.Pointer(channelID)),
	)
	return status(r)
}

func (d *dllAPI) PassThruDisconnect(channelID uint32) int32 {
	r, _, _ := d.disconnect.Call(uintptr(channelID))
	return status(r)
}

func (d *dllAPI) PassThruReadMsgs(channelID uint32, msgs *Msg, numMsgs *uint32, timeout uint32) int32 {
	r, _, _ := d.readMsgs.Call(
		uintptr(channelID),
		uintptr(unsafe.Pointer(msgs)),
		uintptr(unsafe.Pointer(numMsgs)),
		uintptr(timeout),
	)
	return status(r)
}

func (d *dllAPI) PassThruWriteMsgs(channelID uint32, msgs *Msg, numMsgs *uint32, timeout uint32) int32 {
	r, _, _ := d.writeMsgs.Call(
		uintptr(channelID),
		uintptr(unsafe.Pointer(msgs)),
		uintptr(unsafe.Pointer(numMsgs)),
		uintptr(timeout),
	)
	return status(r)
}

func (d *dllAPI) PassThruStartPeriodicMsg(channelID uint32, msg *Msg, msgID *uint32, timeInterval uint32) int32 {
	r, _, _ := d.startPeriodicMsg.Call(
		uintptr(channelID),
		uintptr(unsafe.Pointer(msg)),
		uintptr(unsafe.Pointer(msgID)),
		uintptr(timeInterval),
	)
	return status(r)
}

func (d *dllAPI) PassThruStopPeriodicMsg(channelID, msgID uint32) int32 {
	r, _, _ := d.stopPeriodicMsg.Call(uintptr(channelID), uintptr(msgID))
	return status(r)
}

func (d *dllAPI) PassThruStartMsgFilter(channelID, filterType uint32, maskMsg, patternMsg, flowControlMsg *Msg, filterID *uint32) int32 {
	r, _, _ := d.startMsgFilter.Call(
		uintptr(channelID),
		uintptr(filterType),
		uintptr(unsafe.Pointer(maskMsg)),
		uintptr(unsafe.Pointer(patternMsg)),
		uintptr(unsafe.Pointer(flowControlMsg)),
		uintptr(unsafe.Pointer(filterID)),
	)
	return status(r)
}

func (d *dllAPI) PassThruStopMsgFilter(channelID, filterID uint32) int32 {
	r, _, _ := d.stopMsgFilter.Call(uintptr(channelID), uintptr(filterID))
	return status(r)
}

func (d *dllAPI) PassThruSetProgrammingVoltage(deviceID, pinNumber, voltage uint32) int32 {
	r, _, _ := d.setProgrammingVoltage.Call(
		uintptr(deviceID),
		uintptr(pinNumber),
		uintptr(voltage),
	)
	return status(r)
}

func (d *dllAPI) PassThruReadVersion(deviceID uint32, firmwareVersion, dllVersion, apiVersion *byte) int32 {
	r, _, _ := d.readVersion.Call(
		uintptr(deviceID),
		uintptr(unsafe.Pointer(firmwareVersion)),
		uintptr(unsafe.Pointer(dllVersion)),
		uintptr(unsafe.Pointer(apiVersion)),
	)
	return status(r)
}

func (d *dllAPI) PassThruGetLastError(errorDescription *byte) int32 {
	r, _, _ := d.getLastError.Call(uintptr(unsafe.Pointer(errorDescription)))
	return status(r)
}

func (d *dllAPI) PassThruIoctl(handleID, ioctlID uint32, input, output unsafe.Pointer) int32 {
	r, _, _ := d.ioctl.Call(
		uintptr(handleID),
		uintptr(ioctlID),
		uintptr(input),
		uintptr(output),
	)
	return status(r)
}

func (d *dllAPI) Unload() error {
	return d.dll.Release()
}
