// Package request decodes JSON request bodies.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes bounds every request body. The largest legitimate body is a
// three-field SIM record.
const maxBodyBytes = 1 << 20

// ErrInvalidBody is returned for bodies that are not a JSON object.
var ErrInvalidBody = errors.New("invalid request body")

// DecodeJSON decodes the body of r into v.
//
// An empty body leaves v at its zero value and returns nil, so a missing
// body is reported by the caller's required-field check rather than as a
// decode failure.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return errors.Join(ErrInvalidBody, err)
	}
	return nil
}
