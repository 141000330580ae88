// Package usecase contains one interactor per user-facing operation:
// register, login, logout, and the resource operations (get, list,
// search, create directory, upload, delete, move, download).
//
// Every resource interactor follows the same resolution order: look up
// the user, parse the caller-supplied path, join it under the user's
// namespace root, then check existence against the object storage
// gateway before mutating. Existence checks are exact-storage-key
// checks. The exists-then-act sequence is not atomic against the
// backing store; concurrent operations on overlapping keys can race.
//
// Gateways are capability interfaces defined here and implemented under
// internal/infrastructure; interactors receive them by construction.
package usecase
