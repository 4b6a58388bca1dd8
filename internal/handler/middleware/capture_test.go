//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCapture(t *testing.T) (*captureWriter, *gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	return newCaptureWriter(c.Writer), c, rec
}

func TestCaptureWriter_Buffers(t *testing.T) {
	w, c, rec := newTestCapture(t)

	w.Header().Set("X-Handler", "yes")
	w.WriteHeader(http.StatusAccepted)
	n, err := w.WriteString("hello")
	require.NoError(t, err)

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusAccepted, w.Status())
	assert.Equal(t, 5, w.Size())
	assert.True(t, w.Written())
	assert.False(t, c.Writer.Written(), "nothing may reach the client before flush")
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Handler"))

	w.flush(c.Writer)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Equal(t, "yes", rec.Header().Get("X-Handler"))
}

func TestCaptureWriter_StatusAfterWriteIsIgnored(t *testing.T) {
	w, _, _ := newTestCapture(t)

	_, _ = w.Write([]byte("x"))
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, w.Status())
	assert.True(t, w.succeeded())
}

func TestCaptureWriter_Produced(t *testing.T) {
	t.Run("untouched writer produced nothing", func(t *testing.T) {
		w, _, _ := newTestCapture(t)
		assert.False(t, w.produced())
		assert.Equal(t, -1, w.Size())
	})

	t.Run("status alone counts as output", func(t *testing.T) {
		w, _, _ := newTestCapture(t)
		w.WriteHeader(http.StatusNoContent)
		assert.True(t, w.produced())
		assert.True(t, w.succeeded())
	})

	t.Run("error status is not a success", func(t *testing.T) {
		w, _, _ := newTestCapture(t)
		w.WriteHeader(http.StatusConflict)
		assert.False(t, w.succeeded())
	})
}

func TestCaptureWriter_SnapshotHeaders(t *testing.T) {
	w, _, _ := newTestCapture(t)
	h := w.Header()
	h.Set("Location", "/api/students/1")
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Transfer-Encoding", "chunked")
	h["transfer-extra"] = []string{"lowercase is excluded too"}
	h.Add("Vary", "Origin")
	h.Add("Vary", "Accept")

	want := map[string]string{
		"Location":     "/api/students/1",
		"Content-Type": "application/json; charset=utf-8",
		"Vary":         "Origin,Accept",
	}
	if diff := cmp.Diff(want, w.snapshotHeaders()); diff != "" {
		t.Errorf("snapshotHeaders() mismatch (-want +got):\n%s", diff)
	}
}
