package app

import "context"

type contextKey struct{}

var appContextKey = contextKey{}

// GetAppFromContext returns the App stored by the root command, or nil.
func GetAppFromContext(ctx context.Context) *App {
	app, ok := ctx.Value(appContextKey).(*App)
	if !ok {
		return nil
	}
	return app
}

// SetAppInContext stores the App for subcommands.
func SetAppInContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appContextKey, app)
}
