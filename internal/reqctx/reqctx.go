// internal/reqctx/reqctx.go
package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keyLocale
	keyAdmin
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, keyLocale, locale)
}

func GetLocale(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyLocale).(string)
	return v, ok
}

func WithAdmin(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, keyAdmin, subject)
}

func GetAdmin(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyAdmin).(string)
	return v, ok
}
