package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponse(t *testing.T) {
	w := httptest.NewRecorder()

	WriteResponse(w, ContentType.JSON, `{"status":"parsed"}`, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, ContentType.JSON, w.Header().Get("Content-Type"))
	assert.Equal(t, `{"status":"parsed"}`, w.Body.String())
}

func TestWriteResponseBytes(t *testing.T) {
	w := httptest.NewRecorder()

	WriteResponseBytes(w, ContentType.JSON, []byte(`{"exercises":[]}`), http.StatusOK)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentType.JSON, w.Header().Get("Content-Type"))
	assert.Equal(t, `{"exercises":[]}`, w.Body.String())
}

func TestWriteResponseBytes_NoContentType(t *testing.T) {
	w := httptest.NewRecorder()

	WriteResponseBytes(w, "", []byte("whatever"), http.StatusAccepted)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Empty(t, w.Header().Get("Content-Type"))
	assert.Equal(t, "whatever", w.Body.String())
}

func TestWriteResponseBytesOK(t *testing.T) {
	w := httptest.NewRecorder()

	WriteResponseBytesOK(w, ContentType.JSON, []byte(`{"feeling":"great"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentType.JSON, w.Header().Get("Content-Type"))
	assert.Equal(t, `{"feeling":"great"}`, w.Body.String())
}

func TestWriteTextResponseOK(t *testing.T) {
	w := httptest.NewRecorder()

	WriteTextResponseOK(w, "I'm OK, thanks ;)")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentType.Text, w.Header().Get("Content-Type"))
	assert.Equal(t, "I'm OK, thanks ;)", w.Body.String())
}

func TestWriteJSONResponseOK(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSONResponseOK(w, `{"rpe":8}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentType.JSON, w.Header().Get("Content-Type"))
	assert.Equal(t, `{"rpe":8}`, w.Body.String())
}
