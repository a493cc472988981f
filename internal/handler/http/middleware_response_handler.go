package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] so middleware can observe
// the status code and body size after the downstream handler returns, without
// buffering the response.
//
// WriteHeader is forwarded to the underlying writer exactly once; later calls
// are ignored, per the [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	// status is recorded on the first WriteHeader call (explicit or implicit).
	status int

	wroteHeader bool

	// size accumulates bytes successfully written across all Write calls.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly sending a 200 header
// first when none has been written, and adds the written byte count to size.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
