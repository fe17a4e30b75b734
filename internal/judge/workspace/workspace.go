// Package workspace manages per-request scratch directories.
//
// Every execution attempt owns exactly one scratch directory. It is created
// before any subprocess starts and removed on every exit path; no source
// file or compiled artifact outlives its request.
package workspace

import (
	"context"
	"os"
	"path/filepath"

	"minijudge/pkg/utils/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Workspace is one scratch directory with the materialized source inside.
type Workspace struct {
	ID         string
	Dir        string
	SourcePath string
}

// New creates a unique scratch directory under root and writes the source
// file into it. The directory name is never reused across requests.
func New(root, sourceFile, source string) (*Workspace, error) {
	id := uuid.NewString()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	sourcePath := filepath.Join(dir, sourceFile)
	if err := os.WriteFile(sourcePath, []byte(source), 0644); err != nil {
		_ = os.RemoveAll(dir)
		return nil, err
	}
	return &Workspace{ID: id, Dir: dir, SourcePath: sourcePath}, nil
}

// ArtifactPath resolves a file name inside the scratch directory.
func (w *Workspace) ArtifactPath(name string) string {
	return filepath.Join(w.Dir, name)
}

// Release removes the scratch directory and everything in it. A failed
// removal is logged but never surfaced: cleanup must not mask the primary
// result of the request.
func (w *Workspace) Release(ctx context.Context) {
	if err := os.RemoveAll(w.Dir); err != nil {
		logger.Warn(ctx, "release workspace failed",
			zap.String("workspace", w.Dir),
			zap.Error(err),
		)
	}
}
