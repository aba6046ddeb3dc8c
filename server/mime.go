// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"mime"
	"path/filepath"
	"strings"
)

// DefaultContentType is sent for files whose type cannot be inferred.
const DefaultContentType = "application/octet-stream"

// compressedTypes take precedence over the system MIME table so that
// compressed files are never labelled with their content's type.
var compressedTypes = map[string]string{
	".gz":  "application/gzip",
	".Z":   "application/octet-stream",
	".bz2": "application/x-bzip2",
	".xz":  "application/x-xz",
}

// ContentType infers the Content-Type of a file from its extension.
func ContentType(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return DefaultContentType
	}
	if t, ok := compressedTypes[ext]; ok {
		return t
	}
	if t, ok := compressedTypes[strings.ToLower(ext)]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return DefaultContentType
}
