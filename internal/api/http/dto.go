package http

import (
	"github.com/skystore/skystore/internal/domain"
)

// CredentialsRequest carries a login/password pair for sign-up and
// sign-in.
type CredentialsRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MoveRequest names the source and destination of a move.
type MoveRequest struct {
	FromPath string `json:"from_path" binding:"required"`
	ToPath   string `json:"to_path" binding:"required"`
}

// CreateDirectoryRequest names the directory to create.
type CreateDirectoryRequest struct {
	Path string `json:"path" binding:"required"`
}

// ResourceResponse is the JSON shape of a file or directory.
type ResourceResponse struct {
	Path        string `json:"path"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Size        *int64 `json:"size,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

func toResourceResponse(r domain.Resource) ResourceResponse {
	return ResourceResponse{
		Path:        r.Path.String(),
		Name:        r.Name(),
		Type:        string(r.Type),
		Size:        r.Size,
		ContentType: r.ContentType,
	}
}

func toResourceResponses(resources []domain.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, toResourceResponse(r))
	}
	return out
}
