package writers

import "io"

// ForkWriteSeeker is an io.WriteSeeker that can be forked.
type ForkWriteSeeker interface {
	io.WriteSeeker

	// Fork returns a copy of the writer, using the same underlying writer, but
	// with its own state, which should be initialized to a copy of its
	// parent's state.
	Fork() ForkWriteSeeker
}
