package split

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"sheetmerge/core/split"
	"sheetmerge/core/storage"
	"sheetmerge/core/table"
	"sheetmerge/core/tablecache"
	"sheetmerge/core/xlsx"
)

const zipContentType = "application/zip"

// Service partitions inline or storage-hosted tables by composite key.
type Service struct {
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewService creates a new split service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, cacheTTL time.Duration) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// Split partitions an inline table and returns the partitions in first-seen
// key order.
func (s *Service) Split(req *Request) (*Response, error) {
	t := table.New(req.Headers, req.Rows)

	parts, err := s.run(t, req.Key, req.Options, req.Sort)
	if err != nil {
		return nil, err
	}

	resp := &Response{Parts: make([]Part, 0, len(parts))}
	for _, p := range parts {
		resp.Parts = append(resp.Parts, Part{
			KeyValue: p.KeyValue,
			Table: TablePayload{
				Headers: p.Table.Headers,
				Rows:    p.Table.RowValues(),
			},
		})
	}
	return resp, nil
}

// SplitObjects partitions a stored workbook and writes a zip archive with one
// workbook per partition back to the bucket under OutputObject.
func (s *Service) SplitObjects(ctx context.Context, req *ObjectsRequest) (*ObjectsResponse, error) {
	if req.Object == "" {
		return nil, fmt.Errorf("object is required")
	}
	if req.OutputObject == "" {
		return nil, fmt.Errorf("output_object is required")
	}

	t, err := tablecache.Fetch(ctx, s.client, s.bucket, req.Object, req.Sheet, s.cacheTTL)
	if err != nil {
		return nil, err
	}

	parts, err := s.run(t, req.Key, req.Options, req.Sort)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := xlsx.Archive(&buf, parts); err != nil {
		return nil, fmt.Errorf("failed to render partition archive: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, req.OutputObject, &buf, int64(buf.Len()),
		minio.PutObjectOptions{ContentType: zipContentType})
	if err != nil {
		return nil, fmt.Errorf("failed to store partition archive: %w", err)
	}

	resp := &ObjectsResponse{
		Parts:        make([]PartSummary, 0, len(parts)),
		OutputObject: req.OutputObject,
	}
	for _, p := range parts {
		resp.Parts = append(resp.Parts, PartSummary{
			KeyValue: p.KeyValue,
			Rows:     len(p.Table.Rows),
		})
	}
	return resp, nil
}

// run is the shared partition pipeline: key resolution, grouping, user sort.
func (s *Service) run(t *table.Table, key string, opts *Options, sortCols []SortColumn) ([]split.Partition, error) {
	keyNames := table.SplitKeyList(key)
	if len(keyNames) == 0 {
		return nil, table.ErrNoKeyColumns
	}
	keyCols, err := t.KeyIndices(keyNames)
	if err != nil {
		return nil, err
	}

	keyOpts := table.DefaultSplitOptions()
	if opts != nil {
		keyOpts = table.KeyOptions{Trim: opts.Trim, CaseInsensitive: opts.CaseInsensitive}
	}

	parts, err := split.Split(t, keyCols, keyOpts)
	if err != nil {
		return nil, err
	}
	if len(sortCols) > 0 {
		specs := sortSpecs(sortCols)
		for i := range parts {
			parts[i].Table = table.Sort(parts[i].Table, specs)
		}
	}

	s.logger.Info("split complete",
		zap.Int("rows", len(t.Rows)),
		zap.Int("partitions", len(parts)),
	)
	return parts, nil
}

// sortSpecs converts wire sort columns to the core sort spec.
func sortSpecs(cols []SortColumn) []table.SortSpec {
	specs := make([]table.SortSpec, len(cols))
	for i, c := range cols {
		specs[i] = table.SortSpec{Column: c.Column, Direction: table.Direction(c.Direction)}
	}
	return specs
}
