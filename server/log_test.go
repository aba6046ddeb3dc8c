// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/coreos/pkg/capnslog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLine(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/index.html?x=1", nil)
	r.RemoteAddr = "192.0.2.7:51234"
	when := time.Date(2024, time.March, 5, 14, 3, 9, 0, time.UTC)

	assert.Equal(t,
		`192.0.2.7 - - [05/Mar/2024 14:03:09] "GET /index.html?x=1 HTTP/1.1" 200 11`,
		accessLine(r, http.StatusOK, 11, when))
	assert.Equal(t,
		`192.0.2.7 - - [05/Mar/2024 14:03:09] "GET /index.html?x=1 HTTP/1.1" 404 -`,
		accessLine(r, http.StatusNotFound, 0, when))
}

func TestLogRequests(t *testing.T) {
	var buf bytes.Buffer
	capnslog.SetFormatter(capnslog.NewStringFormatter(&buf))
	defer capnslog.SetFormatter(capnslog.NewDefaultFormatter(os.Stderr))

	h := LogRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pot", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())

	assert.Contains(t, buf.String(), `"GET /pot HTTP/1.1" 418 15`)
}

func TestLogRequestsImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	capnslog.SetFormatter(capnslog.NewStringFormatter(&buf))
	defer capnslog.SetFormatter(capnslog.NewDefaultFormatter(os.Stderr))

	h := LogRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodHead, "/", nil))

	assert.Contains(t, buf.String(), `"HEAD / HTTP/1.1" 200 -`)
}

// readerFromRecorder records whether the response body arrived through
// io.ReaderFrom.
type readerFromRecorder struct {
	*httptest.ResponseRecorder
	readFrom bool
}

func (r *readerFromRecorder) ReadFrom(src io.Reader) (int64, error) {
	r.readFrom = true
	return io.Copy(r.ResponseRecorder.Body, src)
}

func TestLogRequestsForwardsReadFrom(t *testing.T) {
	var buf bytes.Buffer
	capnslog.SetFormatter(capnslog.NewStringFormatter(&buf))
	defer capnslog.SetFormatter(capnslog.NewDefaultFormatter(os.Stderr))

	h := LogRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := w.(io.ReaderFrom)
		require.True(t, ok, "wrapped writer hides io.ReaderFrom")
		// LimitReader hides strings.Reader.WriteTo from io.Copy.
		io.Copy(w, io.LimitReader(strings.NewReader("sent through ReadFrom"), 64))
	}))

	rec := &readerFromRecorder{ResponseRecorder: httptest.NewRecorder()}
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/big.bin", nil))

	assert.True(t, rec.readFrom)
	assert.Equal(t, "sent through ReadFrom", rec.Body.String())
	assert.Contains(t, buf.String(), `"GET /big.bin HTTP/1.1" 200 21`)
}

func TestServeContentUsesReadFrom(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"big.bin": strings.Repeat("x", 4096)})

	rec := &readerFromRecorder{ResponseRecorder: httptest.NewRecorder()}
	LogRequests(NewFileHandler(root)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/big.bin", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, rec.readFrom)
	assert.Equal(t, 4096, rec.Body.Len())
}
