//go:build windows

package j2534

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

func systemStore() Store {
	return winStore{}
}

// winStore reads driver listings from the registry under
// HKEY_LOCAL_MACHINE.
type winStore struct{}

func (winStore) Open(path string) (StoreKey, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.READ)
	if errors.Is(err, registry.ErrNotExist) {
		return nil, ErrKeyNotExist
	}
	if err != nil {
		return nil, err
	}
	return winKey{k}, nil
}

type winKey struct {
	k registry.Key
}

func (w winKey) SubKeyNames() ([]string, error) {
	return w.k.ReadSubKeyNames(-1)
}

func (w winKey) StringValue(name string) (string, error) {
	s, _, err := w.k.GetStringValue(name)
	return s, err
}

func (w winKey) Close() error {
	return w.k.Close()
}
