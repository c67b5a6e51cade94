// Package output writes generated contents and reels as JSON lines for the
// publication layer.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/ports"
)

// Record kinds.
const (
	KindContent = "content"
	KindReel    = "reel"
)

type record struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

// JSONLSink implements ports.OutputSink. Writes are serialized.
type JSONLSink struct {
	mu     sync.Mutex
	enc    *json.Encoder
	closer io.Closer
}

var _ ports.OutputSink = (*JSONLSink)(nil)

// NewJSONLSink writes to w.
func NewJSONLSink(w io.Writer) *JSONLSink {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLSink{enc: enc}
}

// Open appends to the file at path, or writes to stdout when path is empty or "-".
func Open(path string) (*JSONLSink, error) {
	if path == "" || path == "-" {
		return NewJSONLSink(os.Stdout), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	sink := NewJSONLSink(f)
	sink.closer = f
	return sink, nil
}

// WriteContent appends one content record.
func (s *JSONLSink) WriteContent(ctx context.Context, content domain.ModifiedContent) error {
	return s.write(ctx, record{Kind: KindContent, Data: content})
}

// WriteReel appends one reel record.
func (s *JSONLSink) WriteReel(ctx context.Context, reel domain.GeneratedReel) error {
	return s.write(ctx, record{Kind: KindReel, Data: reel})
}

// Close closes the underlying file, if the sink opened one.
func (s *JSONLSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *JSONLSink) write(ctx context.Context, rec record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(rec); err != nil {
		return fmt.Errorf("write %s record: %w", rec.Kind, err)
	}
	return nil
}
