//go:build !windows

package j2534

func systemStore() Store {
	return emptyStore{}
}

// emptyStore stands in for the registry on platforms without one: no
// drivers are ever registered, so every key is absent.
type emptyStore struct{}

func (emptyStore) Open(path string) (StoreKey, error) {
	return nil, ErrKeyNotExist
}
