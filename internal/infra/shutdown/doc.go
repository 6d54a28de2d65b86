// Package shutdown provides graceful shutdown for the watch daemon.
//
// This package handles process termination signals:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Timeout-based forced shutdown
//   - Cleanup callback registration
//
// Usage:
//
//	handler := shutdown.NewHandler(5 * time.Second)
//	handler.OnShutdown(func(ctx context.Context) error { return watcher.Stop() })
//	return handler.Wait()
package shutdown
