package middleware

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// captureWriter buffers a handler's response in memory so it can be
// inspected before anything reaches the client. Header, status and body
// stay private until flush copies them to the wrapped writer.
type captureWriter struct {
	gin.ResponseWriter

	header    http.Header
	body      bytes.Buffer
	status    int
	statusSet bool
	written   bool
}

func newCaptureWriter(w gin.ResponseWriter) *captureWriter {
	return &captureWriter{
		ResponseWriter: w,
		header:         make(http.Header),
		status:         http.StatusOK,
	}
}

func (w *captureWriter) Header() http.Header {
	return w.header
}

func (w *captureWriter) WriteHeader(code int) {
	if code > 0 && !w.written {
		w.status = code
		w.statusSet = true
	}
}

func (w *captureWriter) WriteHeaderNow() {
	w.written = true
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.body.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.written = true
	return w.body.WriteString(s)
}

func (w *captureWriter) Status() int {
	return w.status
}

func (w *captureWriter) Size() int {
	if !w.written {
		return -1
	}
	return w.body.Len()
}

func (w *captureWriter) Written() bool {
	return w.written
}

// Flush is a no-op: nothing may leave the buffer before the handler returns.
func (w *captureWriter) Flush() {}

func (w *captureWriter) Pusher() http.Pusher {
	return nil
}

// produced reports whether the handler set a status or wrote anything.
func (w *captureWriter) produced() bool {
	return w.written || w.statusSet
}

func (w *captureWriter) succeeded() bool {
	return w.status >= 200 && w.status < 300
}

// flush copies the buffered response to dst.
func (w *captureWriter) flush(dst gin.ResponseWriter) {
	h := dst.Header()
	for k, v := range w.header {
		h[k] = append([]string(nil), v...)
	}
	dst.WriteHeader(w.status)
	if w.body.Len() == 0 {
		dst.WriteHeaderNow()
		return
	}
	_, _ = dst.Write(w.body.Bytes())
}

// snapshotHeaders flattens captured headers, joining repeated values with a
// comma and leaving out hop-by-hop Transfer-* headers.
func (w *captureWriter) snapshotHeaders() map[string]string {
	out := make(map[string]string, len(w.header))
	for k, v := range w.header {
		if len(k) >= len("Transfer-") && strings.EqualFold(k[:len("Transfer-")], "Transfer-") {
			continue
		}
		out[k] = strings.Join(v, ",")
	}
	return out
}
