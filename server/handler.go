// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// indexFiles are served in place of a listing, first match wins.
var indexFiles = []string{"index.html", "index.htm"}

// FileHandler maps request paths onto files below a root directory.
type FileHandler struct {
	root http.FileSystem
}

// NewFileHandler returns a handler serving the tree rooted at dir.
// Paths are cleaned by http.Dir so requests cannot escape dir.
func NewFileHandler(dir string) *FileHandler {
	return &FileHandler{root: http.Dir(dir)}
}

func (h *FileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusNotImplemented, "Unsupported method ('"+r.Method+"')")
		return
	}

	// Leading slashes are collapsed so a redirect for "//host" can never
	// become a protocol relative Location.
	upath := "/" + strings.TrimLeft(r.URL.Path, "/")
	if strings.ContainsRune(upath, 0) {
		writeError(w, http.StatusBadRequest, "Bad request path")
		return
	}

	f, err := h.root.Open(upath)
	if err != nil {
		writeFSError(w, err, "Permission denied")
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		writeFSError(w, err, "Permission denied")
		return
	}

	if fi.IsDir() {
		h.serveDir(w, r, upath, f)
		return
	}

	if strings.HasSuffix(upath, "/") {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}

	w.Header().Set("Content-Type", ContentType(fi.Name()))
	http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
}

func (h *FileHandler) serveDir(w http.ResponseWriter, r *http.Request, upath string, dir http.File) {
	if !strings.HasSuffix(upath, "/") {
		target := "/" + strings.TrimLeft(r.URL.EscapedPath(), "/") + "/"
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}

	for _, name := range indexFiles {
		index := path.Join(upath, name)
		f, err := h.root.Open(index)
		if err != nil {
			continue
		}
		fi, err := f.Stat()
		if err != nil || fi.IsDir() {
			f.Close()
			continue
		}
		w.Header().Set("Content-Type", ContentType(fi.Name()))
		http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
		f.Close()
		return
	}

	entries, err := dir.Readdir(-1)
	if err != nil {
		writeFSError(w, err, "No permission to list directory")
		return
	}
	writeListing(w, upath, h.listDir(upath, entries))
}

// writeFSError turns a filesystem error into the matching error page.
// Permission problems are reported with denied as the message.
func writeFSError(w http.ResponseWriter, err error, denied string) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		writeError(w, http.StatusNotFound, "File not found")
	case errors.Is(err, fs.ErrPermission):
		writeError(w, http.StatusForbidden, denied)
	default:
		plog.Errorf("Serving request: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
