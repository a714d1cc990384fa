package testdata

// ErrReader is an io.Reader which always fails with Err.
type ErrReader struct {
	Err error
}

func (e *ErrReader) Read(_ []byte) (int, error) {
	return 0, e.Err
}

// ErrWriter is an io.Writer which accepts the first N bytes written to it and then fails with Err.
type ErrWriter struct {
	Err error
	N   int
}

func (e *ErrWriter) Write(p []byte) (int, error) {
	if len(p) > e.N {
		n := e.N
		e.N = 0
		return n, e.Err
	}
	e.N -= len(p)
	return len(p), nil
}
