package client

import (
	"context"
	"errors"

	"tenauth/pkg/credentials"
)

// Invoker runs remote calls with one-shot credential recovery. When a
// call fails with ErrCredentialExpired the invoker refreshes the
// credential and retries the call exactly once. A second expiry, or a
// failed refresh, is returned to the caller.
type Invoker struct {
	holder    *credentials.Holder
	refresher Refresher
}

// NewInvoker creates an invoker over the given holder and refresher.
func NewInvoker(holder *credentials.Holder, refresher Refresher) *Invoker {
	return &Invoker{holder: holder, refresher: refresher}
}

// Holder returns the credential holder backing this invoker.
func (i *Invoker) Holder() *credentials.Holder {
	return i.holder
}

// Invoke runs fn, applying the refresh-and-retry-once protocol.
func Invoke[T any](ctx context.Context, i *Invoker, fn func(ctx context.Context, accessToken string) (T, error)) (T, error) {
	var zero T
	cred, ok := i.holder.Get()
	if !ok {
		return zero, ErrNoCurrentUser
	}

	out, err := fn(ctx, cred.AccessToken)
	if !errors.Is(err, ErrCredentialExpired) {
		return out, err
	}

	if err := refresh(ctx, i.holder, i.refresher); err != nil {
		return zero, err
	}
	cred, _ = i.holder.Get()
	return fn(ctx, cred.AccessToken)
}

// Invoke1 is Invoke for calls taking one argument.
func Invoke1[A, T any](ctx context.Context, i *Invoker, a A, fn func(ctx context.Context, accessToken string, a A) (T, error)) (T, error) {
	return Invoke(ctx, i, func(ctx context.Context, accessToken string) (T, error) {
		return fn(ctx, accessToken, a)
	})
}

// Invoke2 is Invoke for calls taking two arguments.
func Invoke2[A, B, T any](ctx context.Context, i *Invoker, a A, b B, fn func(ctx context.Context, accessToken string, a A, b B) (T, error)) (T, error) {
	return Invoke(ctx, i, func(ctx context.Context, accessToken string) (T, error) {
		return fn(ctx, accessToken, a, b)
	})
}
