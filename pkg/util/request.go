package util

import (
	"io"
	"net/http"
)

// HttpBody reads at most limit bytes of the request body, or nil if the
// body could not be read.
func HttpBody(r *http.Request, limit int64) []byte {
	body := r.Body
	defer body.Close()

	bodyb, err := io.ReadAll(io.LimitReader(body, limit))
	if err != nil {
		return nil
	}

	return bodyb
}
