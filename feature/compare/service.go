package compare

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sheetmerge/core/database"
	"sheetmerge/core/reconcile"
	"sheetmerge/core/storage"
	"sheetmerge/core/table"
	"sheetmerge/core/tablecache"
	"sheetmerge/core/xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Service runs reconciliations over inline, storage-hosted, or
// database-backed tables.
type Service struct {
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	db       *gorm.DB
	cacheTTL time.Duration
}

// NewService creates a new compare service. db may be nil when no database
// is configured; database-backed sides then fail with a clear error.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cacheTTL time.Duration) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		logger:   logger,
		db:       db,
		cacheTTL: cacheTTL,
	}
}

// Compare reconciles two inline tables and returns the unified result plus
// the classification buckets.
func (s *Service) Compare(req *Request) (*Response, error) {
	left := table.New(req.LeftHeaders, req.LeftRows)
	right := table.New(req.RightHeaders, req.RightRows)

	buckets, result, err := s.run(left, right, req.Key, req.Options, req.DiffCols, req.Sort)
	if err != nil {
		return nil, err
	}

	return &Response{
		Result:     payload(result),
		LeftOnly:   payload(buckets.LeftOnly),
		RightOnly:  payload(buckets.RightOnly),
		Duplicates: payload(buckets.Duplicates),
		Mismatches: buckets.Mismatches,
		Log:        logPairs(buckets.Log),
	}, nil
}

// CompareObjects reconciles two stored datasets and writes the result
// workbook (result, left_only, right_only, duplicates sheets) back to the
// bucket under OutputObject.
func (s *Service) CompareObjects(ctx context.Context, req *ObjectsRequest) (*ObjectsResponse, error) {
	if req.OutputObject == "" {
		return nil, fmt.Errorf("output_object is required")
	}

	left, err := s.resolveSide(ctx, req.LeftObject, req.LeftTable, req.LeftSheet)
	if err != nil {
		return nil, fmt.Errorf("left side: %w", err)
	}
	right, err := s.resolveSide(ctx, req.RightObject, req.RightTable, req.RightSheet)
	if err != nil {
		return nil, fmt.Errorf("right side: %w", err)
	}

	buckets, result, err := s.run(left, right, req.Key, req.Options, req.DiffCols, req.Sort)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	sheets := []xlsx.Sheet{
		{Name: "result", Table: result},
		{Name: "left_only", Table: buckets.LeftOnly},
		{Name: "right_only", Table: buckets.RightOnly},
		{Name: "duplicates", Table: buckets.Duplicates},
	}
	if err := xlsx.WriteTo(&buf, sheets); err != nil {
		return nil, fmt.Errorf("failed to render result workbook: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, req.OutputObject, &buf, int64(buf.Len()),
		minio.PutObjectOptions{ContentType: xlsxContentType})
	if err != nil {
		return nil, fmt.Errorf("failed to store result workbook: %w", err)
	}

	return &ObjectsResponse{
		Matched:      len(buckets.Matched.Rows),
		LeftOnly:     len(buckets.LeftOnly.Rows),
		RightOnly:    len(buckets.RightOnly.Rows),
		Duplicates:   len(buckets.Duplicates.Rows),
		Mismatched:   len(buckets.Mismatches),
		OutputObject: req.OutputObject,
		Log:          logPairs(buckets.Log),
	}, nil
}

// run is the shared reconciliation pipeline: key resolution, classification,
// unification, user sort.
func (s *Service) run(left, right *table.Table, key string, opts Options, diffCols []DiffColumn, sortCols []SortColumn) (*reconcile.Buckets, *table.Table, error) {
	keyNames := table.SplitKeyList(key)
	if len(keyNames) == 0 {
		return nil, nil, table.ErrNoKeyColumns
	}
	leftKeys, err := left.KeyIndices(keyNames)
	if err != nil {
		return nil, nil, fmt.Errorf("left table: %w", err)
	}
	rightKeys, err := right.KeyIndices(keyNames)
	if err != nil {
		return nil, nil, fmt.Errorf("right table: %w", err)
	}

	keyOpts := table.KeyOptions{Trim: opts.Trim, CaseInsensitive: opts.CaseInsensitive}
	buckets, err := reconcile.Reconcile(left, right, leftKeys, rightKeys, keyOpts)
	if err != nil {
		return nil, nil, err
	}

	result, err := reconcile.Unify(buckets, keyNames, diffSpecs(diffCols))
	if err != nil {
		return nil, nil, err
	}
	if len(sortCols) > 0 {
		result = table.Sort(result, sortSpecs(sortCols))
	}

	s.logger.Info("reconciliation complete",
		zap.Int("matched", len(buckets.Matched.Rows)),
		zap.Int("left_only", len(buckets.LeftOnly.Rows)),
		zap.Int("right_only", len(buckets.RightOnly.Rows)),
		zap.Int("duplicates", len(buckets.Duplicates.Rows)),
		zap.Int("mismatched_pairs", len(buckets.Mismatches)),
	)
	return buckets, result, nil
}

// resolveSide loads one reconciliation side from storage or the database.
func (s *Service) resolveSide(ctx context.Context, object, dbTable, sheet string) (*table.Table, error) {
	switch {
	case object != "" && dbTable != "":
		return nil, fmt.Errorf("specify either an object or a database table, not both")
	case object != "":
		return tablecache.Fetch(ctx, s.client, s.bucket, object, sheet, s.cacheTTL)
	case dbTable != "":
		return database.LoadTable(ctx, s.db, dbTable)
	default:
		return nil, fmt.Errorf("no input source specified")
	}
}
