package termination

import "context"

// Context is the chain's only cancellation channel: it wraps a
// context.Context and terminates as soon as that context is done.
// Search engines never take a context.Context parameter directly; a
// caller that wants to cancel a
// running search composes a Context node into the chain instead.
type Context struct {
	link
	ctx context.Context
}

// NewContext wraps ctx. A nil ctx is treated as context.Background,
// i.e. a node that never fires on its own.
func NewContext(ctx context.Context) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{ctx: ctx}
}

// Test terminates the chain if the wrapped context is done.
func (c *Context) Test(s Solution) bool {
	if c.ctx.Err() != nil {
		return true
	}
	return c.delegateTest(s)
}

// Reset resets the rest of the chain; the wrapped context itself
// cannot be un-cancelled.
func (c *Context) Reset() { c.delegateReset() }

// Err returns the wrapped context's error, or nil if it is not done.
func (c *Context) Err() error { return c.ctx.Err() }
