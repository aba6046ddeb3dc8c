// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
)

var errorTemplate = template.Must(template.New("error").Parse(`<!DOCTYPE HTML>
<html lang="en">
    <head>
        <meta charset="utf-8">
        <title>Error response</title>
    </head>
    <body>
        <h1>Error response</h1>
        <p>Error code: {{.Code}}</p>
        <p>Message: {{.Message}}.</p>
        <p>Error code explanation: {{.Code}} - {{.Explain}}.</p>
    </body>
</html>
`))

// writeError answers with an HTML error page and closes the connection.
func writeError(w http.ResponseWriter, code int, message string) {
	var buf bytes.Buffer
	err := errorTemplate.Execute(&buf, struct {
		Code    int
		Message string
		Explain string
	}{code, message, http.StatusText(code)})
	if err != nil {
		plog.Errorf("Rendering error page: %v", err)
		buf.Reset()
	}

	h := w.Header()
	h.Del("Last-Modified")
	h.Del("Etag")
	h.Set("Content-Type", "text/html;charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	h.Set("Connection", "close")
	w.WriteHeader(code)
	buf.WriteTo(w)
}
