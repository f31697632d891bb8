package httpc

import (
	json "github.com/goccy/go-json"
)

// JSON decodes the response body into v and closes the body. It is a
// convenience for the common read-decode-close sequence; callers that need
// the raw bytes read r.Body themselves.
func (r *Response) JSON(v interface{}) error {
	if r.Body == nil {
		return ErrNoBody
	}
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
