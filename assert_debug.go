//go:build vecdebug

package vector

import (
	"fmt"

	"github.com/go-kit/log/level"
)

// assertf traps a violated precondition. The violation is logged before the
// panic so it is visible even when a caller recovers.
func assertf(ok bool, op string, index, size int) {
	if ok {
		return
	}
	level.Error(logger).Log("msg", "precondition violated", "op", op, "index", index, "size", size)
	panic(fmt.Sprintf("vector: %s: precondition violated (index %d, size %d)", op, index, size))
}
