package errors

import "github.com/analysisdata/graph-backend/internal/platform/apierr"

// Sentinels for the graph read path. Access denial is deliberately folded
// into the not-found sentinels everywhere except relationship expansion,
// where ErrNodeNotAccessible is surfaced on its own. Each sentinel carries
// its HTTP mapping; handlers read it back with errors.As.
var (
	ErrNodeNotFound      = apierr.NotFound("node_not_found", "node not found")
	ErrEdgeNotFound      = apierr.NotFound("edge_not_found", "edge not found")
	ErrNodeHasNoEdges    = apierr.NotFound("node_has_no_edges", "node has no edges")
	ErrNodeNotAccessible = apierr.Forbidden("node_not_accessible", "node not accessible for this user")
)

var (
	ErrCategoryNotFound = apierr.NotFound("category_not_found", "category not found")
	ErrCategoryExists   = apierr.Conflict("category_exists", "category already exists")
	ErrFileNotFound     = apierr.NotFound("file_not_found", "file not found")
	ErrUserNotFound     = apierr.NotFound("user_not_found", "user not found")
	ErrInvalidUserID    = apierr.BadRequest("invalid_user_id", "user id is not a valid uuid")
	ErrNoFileUploaded   = apierr.BadRequest("no_file_uploaded", "no file uploaded")
	ErrInvalidPassword  = apierr.Unauthorized("invalid_credentials", "invalid username or password")
	ErrUnauthorized     = apierr.Unauthorized("unauthorized", "unauthorized")
)
