package http

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skystore/skystore/internal/infrastructure/database"
	"github.com/skystore/skystore/internal/infrastructure/logging"
	"github.com/skystore/skystore/internal/infrastructure/monitoring"
	"github.com/skystore/skystore/internal/usecase"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	store      *database.Store
	sessions   usecase.SessionGateway
	storage    usecase.ObjectStorage
	archiver   usecase.ArchiveBuilder
	hasher     usecase.Hasher
	metrics    *monitoring.Metrics
	logger     *logging.Logger
	cookieName string
	cookieTTL  time.Duration
}

// Config carries the session cookie settings.
type Config struct {
	CookieName string
	CookieTTL  time.Duration
}

// NewHandlers creates a new handler set
func NewHandlers(
	store *database.Store,
	sessions usecase.SessionGateway,
	storage usecase.ObjectStorage,
	archiver usecase.ArchiveBuilder,
	hasher usecase.Hasher,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
	cfg Config,
) *Handlers {
	return &Handlers{
		store:      store,
		sessions:   sessions,
		storage:    storage,
		archiver:   archiver,
		hasher:     hasher,
		metrics:    metrics,
		logger:     logger,
		cookieName: cfg.CookieName,
		cookieTTL:  cfg.CookieTTL,
	}
}

// Health handles health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "skystore",
	})
}

// SignUp registers a new account
func (h *Handlers) SignUp(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "login and password are required"})
		return
	}

	tx, err := h.store.Begin(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer tx.Rollback()

	register := usecase.NewRegisterUser(tx.Users(), h.hasher, tx)
	if err := register.Execute(c.Request.Context(), req.Login, req.Password); err != nil {
		h.respondError(c, err)
		return
	}

	h.metrics.IncUsersRegistered()
	h.logger.Info("user registered", zap.String("login", req.Login))
	c.JSON(http.StatusCreated, gin.H{"message": "user created"})
}

// SignIn authenticates and sets the session cookie
func (h *Handlers) SignIn(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "login and password are required"})
		return
	}

	login := usecase.NewLoginUser(h.store.Users(), h.hasher, h.sessions)
	session, err := login.Execute(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		h.metrics.RecordLogin("failure")
		h.respondError(c, err)
		return
	}

	h.metrics.RecordLogin("success")
	h.metrics.IncSessionsIssued()
	c.SetCookie(h.cookieName, session.ID, int(h.cookieTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "signed in"})
}

// SignOut deletes the session and clears the cookie
func (h *Handlers) SignOut(c *gin.Context) {
	token, err := c.Cookie(h.cookieName)
	if err == nil && token != "" {
		logout := usecase.NewLogoutUser(h.sessions)
		if err := logout.Execute(c.Request.Context(), token); err != nil {
			h.respondError(c, err)
			return
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetResource returns a single file or directory
func (h *Handlers) GetResource(c *gin.Context) {
	get := usecase.NewGetResource(h.store.Users(), h.storage)
	resource, err := get.Execute(c.Request.Context(), currentUserID(c), c.Query("path"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResourceResponse(resource))
}

// DeleteResource removes a file or a directory subtree
func (h *Handlers) DeleteResource(c *gin.Context) {
	del := usecase.NewDeleteResource(h.store.Users(), h.storage)
	if err := del.Execute(c.Request.Context(), currentUserID(c), c.Query("path")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadFile stores an uploaded file at the requested path
func (h *Handlers) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	path := c.Query("path")
	// A directory destination takes the name of the uploaded file.
	if path == "" || strings.HasSuffix(path, "/") {
		path += fileHeader.Filename
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.respondError(c, err)
		return
	}

	upload := usecase.NewUploadFile(h.store.Users(), h.storage)
	resource, err := upload.Execute(c.Request.Context(), currentUserID(c), path, content)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.metrics.AddBytesUploaded(int64(len(content)))
	c.JSON(http.StatusCreated, toResourceResponse(resource))
}

// DownloadResource streams a file, or a directory as a zip archive
func (h *Handlers) DownloadResource(c *gin.Context) {
	download := usecase.NewDownloadResource(h.store.Users(), h.storage, h.archiver)
	result, err := download.Execute(c.Request.Context(), currentUserID(c), c.Query("path"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer result.Content.Close()

	if result.Resource.IsDirectory() {
		name := result.Resource.Name()
		if name == "" {
			name = "files"
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`.zip"`)
		c.Header("Content-Type", "application/zip")
		written, err := io.Copy(c.Writer, result.Content)
		if err != nil {
			h.logger.Warn("archive stream interrupted", zap.Error(err))
		}
		h.metrics.AddBytesDownloaded(written)
		return
	}

	c.DataFromReader(
		http.StatusOK,
		*result.Resource.Size,
		"application/octet-stream",
		result.Content,
		map[string]string{
			"Content-Disposition": `attachment; filename="` + result.Resource.Name() + `"`,
		},
	)
	h.metrics.AddBytesDownloaded(*result.Resource.Size)
}

// MoveResource relocates a file or directory
func (h *Handlers) MoveResource(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from_path and to_path are required"})
		return
	}

	move := usecase.NewMoveResource(h.store.Users(), h.storage)
	resource, err := move.Execute(c.Request.Context(), currentUserID(c), req.FromPath, req.ToPath)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResourceResponse(resource))
}

// SearchResources finds resources by exact name
func (h *Handlers) SearchResources(c *gin.Context) {
	search := usecase.NewSearchResources(h.store.Users(), h.storage)
	resources, err := search.Execute(c.Request.Context(), currentUserID(c), c.Query("query"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": toResourceResponses(resources)})
}

// CreateDirectory creates an empty directory
func (h *Handlers) CreateDirectory(c *gin.Context) {
	var req CreateDirectoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}

	create := usecase.NewCreateDirectory(h.store.Users(), h.storage)
	resource, err := create.Execute(c.Request.Context(), currentUserID(c), req.Path)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResourceResponse(resource))
}

// ListDirectory returns the immediate children of a directory
func (h *Handlers) ListDirectory(c *gin.Context) {
	list := usecase.NewListDirectory(h.store.Users(), h.storage)
	resources, err := list.Execute(c.Request.Context(), currentUserID(c), c.Query("path"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": toResourceResponses(resources)})
}
