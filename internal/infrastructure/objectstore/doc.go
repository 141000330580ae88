// Package objectstore implements the flat object storage gateway.
//
// Two implementations are provided: Minio talks to an S3-compatible
// server and is the production backend; Memory keeps objects in a map
// and backs tests and local development.
//
// Keys are plain strings. A key ending in "/" is a zero-byte directory
// marker; everything else is a file object. Directory deletes and moves
// operate on the whole key prefix.
package objectstore
