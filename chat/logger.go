package chat

import (
	"io"
	stdlog "log"
)

var logger *stdlog.Logger

// SetLogger changes the logger used for logging inside the package. Delivery
// failures and registry changes are logged here.
func SetLogger(w io.Writer) {
	flags := stdlog.Flags() | stdlog.Lmicroseconds
	prefix := "[chat] "
	logger = stdlog.New(w, prefix, flags)
}

func init() {
	SetLogger(io.Discard)
}
