package j2534

import (
	"errors"
	"fmt"
)

// passThruKey is the vendor-support key installed PassThru drivers register
// under, relative to the local-machine root.
const passThruKey = `SOFTWARE\PassThruSupport.04.04`

// Listing describes one installed PassThru driver discovered in the
// platform configuration store.
type Listing struct {
	// Name is the driver's display name.
	Name string

	// Vendor is the adapter vendor.
	Vendor string

	// Path is the filesystem path of the driver module, suitable for New.
	Path string
}

// ErrKeyNotExist is returned by Store.Open when the requested key is
// absent from the store.
var ErrKeyNotExist = errors.New("key does not exist")

// Store is read-only access to the platform configuration store used for
// driver discovery. The Windows implementation walks the registry under
// HKEY_LOCAL_MACHINE; tests substitute an in-memory store.
type Store interface {
	// Open opens the key at the given backslash-separated path, or fails
	// with ErrKeyNotExist when it is absent.
	Open(path string) (StoreKey, error)
}

// StoreKey is one open key of a Store.
type StoreKey interface {
	// SubKeyNames lists child key names in store enumeration order.
	SubKeyNames() ([]string, error)

	// StringValue reads a named string value of this key.
	StringValue(name string) (string, error)

	Close() error
}

// List enumerates the PassThru drivers installed on this machine. An
// absent vendor-support key means no drivers are registered and yields an
// empty result, not an error.
func List() ([]Listing, error) {
	return ListFrom(systemStore())
}

// ListFrom enumerates installed drivers from the given store. Every child
// key of the vendor-support key must carry the Name, Vendor and
// FunctionLibrary values; a missing value aborts the whole listing.
func ListFrom(store Store) ([]Listing, error) {
	key, err := store.Open(passThruKey)
	if errors.Is(err, ErrKeyNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer key.Close()

	names, err := key.SubKeyNames()
	if err != nil {
		return nil, err
	}

	var listings []Listing
	for _, name := range names {
		listing, err := readListing(store, name)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func readListing(store Store, name string) (Listing, error) {
	key, err := store.Open(passThruKey + `\` + name)
	if err != nil {
		return Listing{}, fmt.Errorf("driver entry %q: %w", name, err)
	}
	defer key.Close()

	var listing Listing
	for _, v := range []struct {
		value string
		dst   *string
	}{
		{"Name", &listing.Name},
		{"Vendor", &listing.Vendor},
		{"FunctionLibrary", &listing.Path},
	} {
		s, err := key.StringValue(v.value)
		if err != nil {
			return Listing{}, fmt.Errorf("driver entry %q: value %s: %w", name, v.value, err)
		}
		*v.dst = s
	}
	return listing, nil
}
