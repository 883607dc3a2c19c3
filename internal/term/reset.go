package term

import (
	"io"
	"os"
)

var resetSequence = []byte("" +
	"\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l" + // mouse tracking off
	"\x1b[?25h" + // cursor on
	"\x1b[?1049l" + // leave alternate screen
	"\x1b[0m" +
	"\x1b[?7h") // auto wrap on

// EmergencyReset puts the terminal back into a usable state after a crash
// that may have skipped Fini.
func EmergencyReset(w io.Writer) {
	w.Write(resetSequence)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
