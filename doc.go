// Package j2534 is a safe access layer over vendor-supplied PassThru
// (SAE J2534) diagnostic driver modules.
//
// It discovers installed drivers through the platform registry (List),
// loads a driver DLL (New) and models the strict resource hierarchy the
// PassThru API implies: an Interface owns the loaded module, Devices are
// opened from an Interface, Channels are connected on a Device. Releases
// run in reverse acquisition order exactly once, even when the caller
// closes parents first; use after Close fails with a typed error instead
// of reaching the driver.
//
// The package does not reimplement any protocol logic. Every operation is
// a direct, blocking call into the driver; nonzero status codes surface
// as *CodeError with the raw value preserved.
package j2534
