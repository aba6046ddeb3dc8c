// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/flatcar/fileserve/lang/natsort"
)

var listingTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE HTML>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Directory listing for {{.Path}}</title>
</head>
<body>
<h1>Directory listing for {{.Path}}</h1>
<hr>
<ul>
{{- range .Entries}}
<li><a href="{{.Href}}">{{.Display}}</a></li>
{{- end}}
</ul>
<hr>
</body>
</html>
`))

// listingEntry is one line of a generated directory listing.
type listingEntry struct {
	Href    string
	Display string
}

// listDir builds the listing entries for the directory at upath.
// Directories, including symlinks to directories, get a trailing slash
// on both link and text; symlinks are shown with a trailing @.
func (h *FileHandler) listDir(upath string, infos []fs.FileInfo) []listingEntry {
	natsort.SortFold(infos, fs.FileInfo.Name)

	entries := make([]listingEntry, 0, len(infos))
	for _, fi := range infos {
		name := fi.Name()
		link, display := name, name

		isDir := fi.IsDir()
		if fi.Mode()&fs.ModeSymlink != 0 {
			isDir = h.isDir(path.Join(upath, name))
		}
		if isDir {
			link += "/"
			display += "/"
		}
		if fi.Mode()&fs.ModeSymlink != 0 {
			display = name + "@"
		}

		entries = append(entries, listingEntry{
			Href:    (&url.URL{Path: link}).String(),
			Display: display,
		})
	}
	return entries
}

func (h *FileHandler) isDir(name string) bool {
	f, err := h.root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	fi, err := f.Stat()
	return err == nil && fi.IsDir()
}

// writeListing renders the listing before writing any headers so a
// template failure can still be reported as an error page.
func writeListing(w http.ResponseWriter, upath string, entries []listingEntry) {
	var buf bytes.Buffer
	err := listingTemplate.Execute(&buf, struct {
		Path    string
		Entries []listingEntry
	}{upath, entries})
	if err != nil {
		plog.Errorf("Rendering listing of %s: %v", upath, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
