//go:build !windows
// +build !windows

package terminal

// enableVT is a no-op where terminals interpret escape sequences
// natively.
func enableVT(_ Pipe) error {
	return nil
}
