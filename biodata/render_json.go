package biodata

import (
	"context"
	"encoding/json"
	"io"
)

// JSONRenderer renders the ordered record document as JSON.
type JSONRenderer struct{}

// Render writes the record with key order preserved.
func (r JSONRenderer) Render(ctx context.Context, doc Document, w io.Writer, opts RenderOptions) (RenderStats, error) {
	if err := ctx.Err(); err != nil {
		return RenderStats{}, err
	}

	cw := &countingWriter{w: w}
	encoder := json.NewEncoder(cw)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc.Record); err != nil {
		return RenderStats{}, err
	}

	return RenderStats{Items: int64(len(doc.Items)), Bytes: cw.count}, nil
}
