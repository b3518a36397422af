// endpoints.go
// ------------
// Shared plumbing for the per-resource methods: one generic
// build-spec/execute/decode path, declarative parameter constraint tables,
// and the per-endpoint list-encoding override table. Every endpoint method
// is a thin caller of these helpers.
package helixbridge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// joinedListParams names the endpoints whose documented convention joins a
// list value with a delimiter instead of repeating the parameter. This is a
// provider quirk preserved per endpoint, not a general rule.
var joinedListParams = map[string]map[string]string{
	"tags/streams": {"tag_id": "&"},
}

// ruleSet is the declarative validation table for one endpoint. Rules run
// against the built parameters before any network call.
type ruleSet struct {
	// MaxLen caps the number of values per list parameter.
	MaxLen map[string]int
	// OneOf requires at least one of the named parameters.
	OneOf []string
	// Exclusive forbids supplying more than one of a parameter group.
	Exclusive [][]string
	// Enum restricts a parameter to a fixed value set.
	Enum map[string][]string
}

func (rs ruleSet) validate(params url.Values) error {
	for name, max := range rs.MaxLen {
		if n := len(params[name]); n > max {
			return &ValidationError{Message: fmt.Sprintf("a maximum of %d %q values may be provided, got %d", max, name, n)}
		}
	}
	if len(rs.OneOf) > 0 {
		found := false
		for _, name := range rs.OneOf {
			if params.Has(name) {
				found = true
				break
			}
		}
		if !found {
			return &ValidationError{Message: fmt.Sprintf("must provide at least one of %s", strings.Join(rs.OneOf, ", "))}
		}
	}
	for _, group := range rs.Exclusive {
		var present []string
		for _, name := range group {
			if params.Has(name) {
				present = append(present, name)
			}
		}
		if len(present) > 1 {
			return &ValidationError{Message: fmt.Sprintf("parameters %s are mutually exclusive", strings.Join(present, " and "))}
		}
	}
	for name, allowed := range rs.Enum {
		v := params.Get(name)
		if v == "" {
			continue
		}
		ok := false
		for _, a := range allowed {
			if v == a {
				ok = true
				break
			}
		}
		if !ok {
			return &ValidationError{Message: fmt.Sprintf("value of %q must be one of %s", name, strings.Join(allowed, ", "))}
		}
	}
	return nil
}

// setList stores a multi-valued parameter, honoring the per-endpoint joined
// encoding override when one exists for this path.
func setList(path string, params url.Values, name string, values []string) {
	if len(values) == 0 {
		return
	}
	if delim, ok := joinedListParams[path][name]; ok {
		params.Set(name, strings.Join(values, delim))
		return
	}
	params[name] = append([]string(nil), values...)
}

// newSpec builds a GET RequestSpec for path. A positive pageSize is recorded
// as the first parameter.
func (c *Client) newSpec(path string, params url.Values, pageSize int) *RequestSpec {
	if params == nil {
		params = url.Values{}
	}
	if pageSize > 0 {
		params.Set("first", strconv.Itoa(pageSize))
	}
	return &RequestSpec{
		Method:   http.MethodGet,
		Path:     path,
		Params:   params,
		PageSize: pageSize,
	}
}

// Fetch executes spec and honors the envelope's own signal: a response with
// pagination metadata yields a live Cursor, anything else a finite list of
// typed records. The per-resource methods are wrappers over this contract;
// callers hitting endpoints this library does not wrap can use it directly
// with their own record type.
func Fetch[T any](ctx context.Context, c *Client, spec *RequestSpec, codec Codec[T]) ([]T, *Cursor[T], error) {
	env, err := c.executor.Execute(ctx, spec)
	if err != nil {
		return nil, nil, err
	}

	if env.Paginated() {
		cur, err := newCursor(ctx, c, spec, codec)
		if err != nil {
			return nil, nil, err
		}
		return nil, cur, nil
	}

	items, err := decodeAll(env, codec)
	if err != nil {
		return nil, nil, err
	}
	return items, nil, nil
}

// fetchList executes spec and decodes the data array, ignoring pagination
// metadata. Used by endpoints documented to return a bounded list.
func fetchList[T any](ctx context.Context, c *Client, spec *RequestSpec, codec Codec[T]) ([]T, error) {
	env, err := c.executor.Execute(ctx, spec)
	if err != nil {
		return nil, err
	}
	return decodeAll(env, codec)
}

// fetchCursor constructs a cursor directly for endpoints documented as
// always paginated; the cursor's construction performs the first fetch.
func fetchCursor[T any](ctx context.Context, c *Client, spec *RequestSpec, codec Codec[T]) (*Cursor[T], error) {
	return newCursor(ctx, c, spec, codec)
}

func decodeAll[T any](env *PageEnvelope, codec Codec[T]) ([]T, error) {
	items := make([]T, 0, len(env.Data))
	for _, raw := range env.Data {
		rec, err := codec(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, nil
}
