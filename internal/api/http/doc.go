// Package http provides HTTP handlers and routing for the file storage
// REST API.
//
// This package implements all HTTP endpoints using the Gin framework:
// account registration and session login, and the per-user resource
// operations (get, list, search, upload, download, move, delete,
// create directory).
//
// Endpoints:
//   - Auth: /api/sign-up, /api/sign-in, /api/sign-out
//   - Resources: /api/resource, /api/resource/download,
//     /api/resource/move, /api/resource/search
//   - Directories: /api/directory
//   - Health: /health
//
// Authenticated endpoints read the session cookie and resolve it to a
// user through the session gateway; failures map to 401.
package http
