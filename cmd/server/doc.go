// Package main is the entry point for the file storage backend server.
//
// This application exposes a per-user virtual filesystem over a flat
// object store, with accounts in Postgres, sessions in Redis, and
// objects in an S3-compatible bucket.
//
// The server provides:
//   - REST API for account and resource management
//   - Streamed file and zip archive downloads
//   - Prometheus metrics and health checks
//   - Rate limiting and structured request logging
//
// Configuration:
//   - Environment variables (12-factor)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	PORT=8000 DATABASE_DSN="host=db ..." ./server
//
//	# Development mode (colored logs, debug level)
//	LOG_DEV=true LOG_LEVEL=debug ./server
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
