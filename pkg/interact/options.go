package interact

import (
	"context"

	"go.uber.org/zap"
)

type OptionKey string

const (
	LoggerOptionKey   OptionKey = "logger_options"
	ObserverOptionKey OptionKey = "observer_options"
)

type LoggerOptions struct {
	Logger *zap.Logger
}

type ObserverOptions struct {
	Observers Observers
}

// WithLogger attaches the logger used by every engine frame below ctx.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// WithObservers appends observers to those already attached to ctx.
func WithObservers(ctx context.Context, observers ...Observer) context.Context {
	all := append(GetObservers(ctx), observers...)
	return context.WithValue(ctx, ObserverOptionKey, ObserverOptions{Observers: all})
}

func GetLogger(ctx context.Context) *zap.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return zap.NewNop()
}

func GetObservers(ctx context.Context) Observers {
	options, ok := ctx.Value(ObserverOptionKey).(ObserverOptions)
	if ok {
		return append(Observers(nil), options.Observers...)
	}
	return nil
}
