package mocks

import (
	"context"

	"hotel/infras/otel"
)

// noopOtel hands out noopScope and has nothing to flush.
type noopOtel struct{}

func NewOtel() otel.Otel {
	return noopOtel{}
}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (noopOtel) Shutdown(context.Context) error {
	return nil
}
