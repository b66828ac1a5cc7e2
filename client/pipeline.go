package client

import "context"

// Handler sends a request through the rest of the pipeline.
type Handler func(ctx context.Context, req *Request) (*Response, error)

// Middleware wraps a Handler. Request-side work runs before calling next,
// response-side work after it returns.
type Middleware func(next Handler) Handler

// Chain wraps h so that mw[0] is the outermost layer.
func Chain(h Handler, mw ...Middleware) Handler {
	chained := h
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chained = mw[i](chained)
	}
	return chained
}
