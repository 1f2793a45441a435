//go:build !windows

package j2534

// PassThru modules are Windows DLLs; on other platforms loading always
// reports not found so the package still compiles and mocks remain usable.
func loadAPI(path string) (API, error) {
	return nil, &NotFoundError{}
}
