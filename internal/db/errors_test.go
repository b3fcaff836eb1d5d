package db

import (
	"context"
	"errors"
	"testing"
)

func TestError(t *testing.T) {
	err := error(&Error{Op: OpGet, Err: context.DeadlineExceeded})

	if err.Error() != "GET: context deadline exceeded" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected cause to unwrap")
	}

	var dbErr *Error
	if !errors.As(err, &dbErr) || dbErr.Op != OpGet {
		t.Errorf("expected *Error with op GET, got %v", err)
	}
}
