// cursor.go
// ---------
// A Cursor presents a paginated endpoint as a restartable, buffered lazy
// sequence. It buffers at most one page of undelivered records; fetching a
// page replaces, never appends. Draining the buffer does not fetch the next
// page automatically: advancing is an explicit NextPage/PreviousPage call.
package helixbridge

import "context"

// CursorState is the lifecycle state of a Cursor.
type CursorState int

const (
	// CursorFilling is the transient state during a fetch.
	CursorFilling CursorState = iota
	// CursorReady means the buffer holds undelivered records.
	CursorReady
	// CursorExhausted means the last fetch returned no records.
	CursorExhausted
)

func (s CursorState) String() string {
	switch s {
	case CursorFilling:
		return "filling"
	case CursorReady:
		return "ready"
	case CursorExhausted:
		return "exhausted"
	}
	return "unknown"
}

type Cursor[T any] struct {
	client *Client
	spec   *RequestSpec
	codec  Codec[T]

	cursor string
	queue  []T
	total  *int
	state  CursorState
}

// newCursor constructs a cursor over spec and immediately fetches the first
// page.
func newCursor[T any](ctx context.Context, c *Client, spec *RequestSpec, codec Codec[T]) (*Cursor[T], error) {
	cu := &Cursor[T]{
		client: c,
		spec:   spec.Clone(),
		codec:  codec,
		state:  CursorFilling,
	}
	if err := cu.NextPage(ctx); err != nil {
		return nil, err
	}
	return cu, nil
}

// NextPage advances forward: the last-seen cursor token becomes the after
// key, any before key is dropped, and the buffer is replaced with the new
// page. A fetch error leaves the cursor unchanged.
func (cu *Cursor[T]) NextPage(ctx context.Context) error {
	cu.spec.Params.Del("before")
	if cu.cursor == "" {
		cu.spec.Params.Del("after")
	} else {
		cu.spec.Params.Set("after", cu.cursor)
	}
	return cu.fetch(ctx)
}

// PreviousPage pages backward, symmetric to NextPage.
func (cu *Cursor[T]) PreviousPage(ctx context.Context) error {
	cu.spec.Params.Del("after")
	if cu.cursor == "" {
		cu.spec.Params.Del("before")
	} else {
		cu.spec.Params.Set("before", cu.cursor)
	}
	return cu.fetch(ctx)
}

func (cu *Cursor[T]) fetch(ctx context.Context) error {
	cu.state = CursorFilling
	env, err := cu.client.executor.Execute(ctx, cu.spec)
	if err != nil {
		// No partial results: the old buffer stays but the cursor is not
		// advanced, so the caller may retry the same page.
		cu.state = CursorReady
		return err
	}

	records := make([]T, 0, len(env.Data))
	for _, raw := range env.Data {
		rec, err := cu.codec(raw)
		if err != nil {
			cu.state = CursorReady
			return err
		}
		records = append(records, rec)
	}
	cu.queue = records

	if env.Pagination != nil {
		// An absent cursor token means no further page in this direction.
		cu.cursor = env.Pagination.Cursor
	}
	if env.Total != nil {
		total := *env.Total
		cu.total = &total
	}

	if len(cu.queue) == 0 {
		cu.state = CursorExhausted
	} else {
		cu.state = CursorReady
	}
	return nil
}

// Next pops the next buffered record. ok is false once the current page is
// drained; call NextPage to advance.
func (cu *Cursor[T]) Next() (rec T, ok bool) {
	if len(cu.queue) == 0 {
		return rec, false
	}
	rec = cu.queue[0]
	cu.queue = cu.queue[1:]
	return rec, true
}

// Records returns the remaining buffered records without consuming them.
func (cu *Cursor[T]) Records() []T {
	return append([]T(nil), cu.queue...)
}

// Len reports how many undelivered records remain in the buffer.
func (cu *Cursor[T]) Len() int {
	return len(cu.queue)
}

// Cursor returns the last-seen pagination token; empty when the server
// signalled no further forward page.
func (cu *Cursor[T]) Cursor() string {
	return cu.cursor
}

// State reports the cursor's lifecycle state.
func (cu *Cursor[T]) State() CursorState {
	return cu.state
}

// Total returns the total-count hint. It fails with *NotProvidedError until
// the server has supplied one for this endpoint.
func (cu *Cursor[T]) Total() (int, error) {
	if cu.total == nil {
		return 0, &NotProvidedError{Field: "total"}
	}
	return *cu.total, nil
}
