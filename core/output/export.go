package output

import (
	"bytes"
	"context"
	"encoding/json"
	"path"
	"strings"

	"go.uber.org/zap"

	"focusgen/core/batch"
	"focusgen/internal/errors"
	"focusgen/internal/logging"
)

// ManifestName is the manifest file written next to trend batches
const ManifestName = "manifest.json"

// Sink receives rendered files
type Sink interface {
	Put(ctx context.Context, name string, data []byte) error
}

// ExportResult lists what was written
type ExportResult struct {
	Files   []string      `json:"files"`
	Bytes   int64         `json:"bytes"`
	Summary batch.Summary `json:"summary"`
}

// Export renders every file of the batch into the sink, plus a manifest for
// trend batches
func Export(ctx context.Context, sink Sink, f Formatter, b *batch.Batch) (*ExportResult, error) {
	logger := logging.Named("output")
	result := &ExportResult{Summary: b.Summary()}

	for _, file := range b.Files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.TypeInternal, "export cancelled", err)
		}

		var buf bytes.Buffer
		if err := f.Render(&buf, file.Dataset.Table); err != nil {
			return nil, errors.Wrapf(errors.TypeInternal, err, "failed to render %s", file.Name)
		}
		name := withExtension(file.Name, f.Extension())
		if err := sink.Put(ctx, name, buf.Bytes()); err != nil {
			return nil, errors.Wrapf(errors.TypeInternal, err, "failed to write %s", name)
		}
		result.Files = append(result.Files, name)
		result.Bytes += int64(buf.Len())
		logger.Debug("file written", zap.String("file", name), zap.Int("rows", file.Rows()))
	}

	if manifest, ok := b.Manifest(); ok {
		manifest.Files = result.Files
		data, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return nil, errors.Internal("failed to marshal manifest", err)
		}
		if err := sink.Put(ctx, ManifestName, data); err != nil {
			return nil, errors.Wrapf(errors.TypeInternal, err, "failed to write %s", ManifestName)
		}
		result.Files = append(result.Files, ManifestName)
		result.Bytes += int64(len(data))
	}

	logger.Info("batch exported",
		zap.String("format", string(f.Format())),
		zap.Int("files", len(result.Files)),
		zap.Int64("bytes", result.Bytes),
	)
	return result, nil
}

func withExtension(name, ext string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + ext
}
