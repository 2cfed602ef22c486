package ctxutil

import (
	"context"
	"testing"
)

func TestWithActor_And_ActorFromCtx(t *testing.T) {
	t.Parallel()

	want := Actor{Role: "analyst", Name: "Bob"}
	ctx := WithActor(context.Background(), want)

	got, ok := ActorFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for stored actor")
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestActorFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := ActorFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != (Actor{}) {
		t.Fatalf("expected zero actor, got %+v", got)
	}
}

func TestActorFromCtx_NoRole(t *testing.T) {
	t.Parallel()

	ctx := WithActor(context.Background(), Actor{Name: "Bob"})

	if _, ok := ActorFromCtx(ctx); ok {
		t.Fatal("expected ok=false for actor without role")
	}
}

func TestActorFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("actor"), "analyst")

	if _, ok := ActorFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := RequestIDFromCtx(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 12345)

	got := RequestIDFromCtx(ctx)
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}
