package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the span of ctx to err so a reported error can be matched with its log records.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanOf(ctx)
	if span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
