package vector

import "github.com/go-kit/log"

var logger log.Logger = log.NewNopLogger()

// SetLogger installs the logger used to report precondition violations in
// builds with the vecdebug tag. A nil logger restores the default no-op logger.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	logger = l
}
