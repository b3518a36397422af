package helixbridge

import (
	"encoding/json"
	"net/url"
)

// RequestSpec describes a single call against the Helix API. It is built by
// the per-resource methods and treated as immutable once issued; a Cursor
// clones it before mutating the paging keys.
type RequestSpec struct {
	Method   string
	Path     string     // relative to the versioned base URL unless BaseURL is set
	BaseURL  string     // overrides the client base URL (auth endpoints)
	Params   url.Values // list values are repeated as same-named parameters
	Body     interface{}
	PageSize int
	AuthCall bool // token acquisition/validation calls never carry a bearer header
	Headers  map[string]string
}

// Clone returns a deep copy the caller may mutate freely.
func (s *RequestSpec) Clone() *RequestSpec {
	out := *s
	out.Params = make(url.Values, len(s.Params))
	for k, v := range s.Params {
		out.Params[k] = append([]string(nil), v...)
	}
	if s.Headers != nil {
		out.Headers = make(map[string]string, len(s.Headers))
		for k, v := range s.Headers {
			out.Headers[k] = v
		}
	}
	return &out
}

// Pagination is the pagination block of a response envelope. Its presence,
// even with an empty cursor, marks the endpoint as paginated.
type Pagination struct {
	Cursor string `json:"cursor"`
}

// PageEnvelope is the raw Helix response shape.
type PageEnvelope struct {
	Data       []json.RawMessage `json:"data"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Total      *int              `json:"total,omitempty"`
	Message    string            `json:"message,omitempty"`
}

// Paginated reports whether the endpoint returned pagination metadata.
func (e *PageEnvelope) Paginated() bool {
	return e.Pagination != nil
}
