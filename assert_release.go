//go:build !vecdebug

package vector

// assertf is a no-op without the vecdebug build tag.
func assertf(bool, string, int, int) {}
