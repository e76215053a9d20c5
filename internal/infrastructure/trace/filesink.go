package trace

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"BiasDetector/internal/ports"
)

// FileSink writes one JSON audit document per run into an append-only
// directory. Writes are whole-file, so concurrent runs cannot interleave.
type FileSink struct {
	dir string
}

var _ ports.AuditSink = (*FileSink)(nil)

// NewFileSink points the sink at its output directory; an empty dir makes
// the sink a no-op.
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// Write persists the record under a second-resolution timestamp plus the
// run id. Purely diagnostic: callers swallow the returned error.
func (s *FileSink) Write(ctx context.Context, record ports.TraceRecord) error {
	if s.dir == "" {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create trace dir: %w", err)
	}

	raw, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal trace: %w", err)
	}

	name := fmt.Sprintf("response_%d_%s.json", time.Now().Unix(), record.RunID)
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}

	return nil
}
