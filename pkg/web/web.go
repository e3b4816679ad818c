// Package web serves the browser page for the checker and the generator.
package web

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"net/http"
	"strconv"
)

//go:embed static/index.html
var index []byte

var etag = func() string {
	sum := sha256.Sum256(index)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}()

func Page(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(index)))
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(index)
}
