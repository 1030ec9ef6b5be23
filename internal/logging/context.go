package logging

import (
	"context"
	"log/slog"
)

// Standard record keys.
const (
	FieldComponent = "component"
	// FieldSessionID identifies one CLI process.
	FieldSessionID = "session_id"
	// FieldRunID identifies one organize, sweep or clean invocation.
	FieldRunID     = "run_id"
	FieldOperation = "operation"
	// FieldEventType classifies warnings and errors for log filtering.
	FieldEventType = "event_type"
	FieldErrorHint = "error_hint"
	// FieldImpact says what happened to the file a warning is about.
	FieldImpact = "impact"
)

type runKey struct{}

type runInfo struct {
	id        string
	operation string
}

func runFrom(ctx context.Context) runInfo {
	if ctx == nil {
		return runInfo{}
	}
	info, _ := ctx.Value(runKey{}).(runInfo)
	return info
}

// WithRunID tags ctx with the identifier of the current run.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	info := runFrom(ctx)
	info.id = id
	return context.WithValue(ctx, runKey{}, info)
}

// RunIDFromContext returns the run identifier stored by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id := runFrom(ctx).id
	return id, id != ""
}

// WithOperation tags ctx with the operation name (organize, sweep, clean).
func WithOperation(ctx context.Context, op string) context.Context {
	if op == "" {
		return ctx
	}
	info := runFrom(ctx)
	info.operation = op
	return context.WithValue(ctx, runKey{}, info)
}

// OperationFromContext returns the operation stored by WithOperation.
func OperationFromContext(ctx context.Context) (string, bool) {
	op := runFrom(ctx).operation
	return op, op != ""
}

// WithContext returns logger tagged with the run fields carried by ctx, or
// logger itself when ctx carries none.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	info := runFrom(ctx)
	var args []any
	if info.id != "" {
		args = append(args, String(FieldRunID, info.id))
	}
	if info.operation != "" {
		args = append(args, String(FieldOperation, info.operation))
	}
	if len(args) == 0 {
		return logger
	}
	return logger.With(args...)
}
