package credentials

import "context"

type holderContextKey struct{}

// WithHolder attaches a credential holder to the context.
func WithHolder(ctx context.Context, h *Holder) context.Context {
	return context.WithValue(ctx, holderContextKey{}, h)
}

// HolderFromContext extracts the credential holder from the context.
func HolderFromContext(ctx context.Context) (*Holder, bool) {
	if ctx == nil {
		return nil, false
	}
	h, ok := ctx.Value(holderContextKey{}).(*Holder)
	if !ok || h == nil {
		return nil, false
	}
	return h, true
}
