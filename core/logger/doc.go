// Package logger provides a structured logging facility based on Zap.
//
// New builds a development configuration at debug level and a production one
// otherwise, with console or json encoding. Loggers are passed explicitly to
// every component; nothing in the crawler reads a global logger.
//
// In HTTP handlers, WithRayID attaches the request id set by the rayid
// middleware so all logs of one request can be correlated.
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
