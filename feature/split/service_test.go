package split

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sheetmerge/core/storage/mocks"
	"sheetmerge/core/table"
	"sheetmerge/core/xlsx"
)

func newTestService(client *mocks.Client) *Service {
	return NewService(client, "test-bucket", zap.NewNop(), 0)
}

func renderWorkbook(t *testing.T, headers []string, rows [][]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	src := table.New(headers, rows)
	require.NoError(t, xlsx.WriteTo(&buf, []xlsx.Sheet{{Name: "data", Table: src}}))
	return buf.Bytes()
}

func TestService_Split(t *testing.T) {
	svc := newTestService(new(mocks.Client))

	resp, err := svc.Split(&Request{
		Headers: []string{"region", "amount"},
		Rows:    [][]string{{"a", "1"}, {"b", "2"}, {"a", "3"}},
		Key:     "region",
	})
	require.NoError(t, err)

	require.Len(t, resp.Parts, 2)
	assert.Equal(t, "a", resp.Parts[0].KeyValue)
	assert.Equal(t, [][]string{{"a", "1"}, {"a", "3"}}, resp.Parts[0].Table.Rows)
	assert.Equal(t, "b", resp.Parts[1].KeyValue)
}

func TestService_Split_DefaultOptionsTrim(t *testing.T) {
	svc := newTestService(new(mocks.Client))

	resp, err := svc.Split(&Request{
		Headers: []string{"region"},
		Rows:    [][]string{{" a "}, {"a"}},
		Key:     "region",
	})
	require.NoError(t, err)

	// Options omitted: keys are trimmed, so both rows group together.
	require.Len(t, resp.Parts, 1)
	assert.Equal(t, "a", resp.Parts[0].KeyValue)
}

func TestService_Split_ExplicitOptionsOverrideDefault(t *testing.T) {
	svc := newTestService(new(mocks.Client))

	resp, err := svc.Split(&Request{
		Headers: []string{"region"},
		Rows:    [][]string{{" a "}, {"a"}},
		Key:     "region",
		Options: &Options{Trim: false},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Parts, 2)
}

func TestService_Split_SortedPartitions(t *testing.T) {
	svc := newTestService(new(mocks.Client))

	resp, err := svc.Split(&Request{
		Headers: []string{"region", "amount"},
		Rows:    [][]string{{"a", "10"}, {"a", "2"}},
		Key:     "region",
		Sort:    []SortColumn{{Column: "amount", Direction: "asc"}},
	})
	require.NoError(t, err)

	require.Len(t, resp.Parts, 1)
	assert.Equal(t, [][]string{{"a", "2"}, {"a", "10"}}, resp.Parts[0].Table.Rows)
}

func TestService_Split_UnknownKeyColumn(t *testing.T) {
	svc := newTestService(new(mocks.Client))

	_, err := svc.Split(&Request{
		Headers: []string{"region"},
		Key:     "missing",
	})
	assert.ErrorIs(t, err, table.ErrUnknownColumn)
}

func TestService_SplitObjects(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := newTestService(mockClient)

	data := renderWorkbook(t, []string{"region", "amount"}, [][]string{
		{"east", "1"},
		{"west", "2"},
	})

	mockClient.On("GetObject", mock.Anything, "test-bucket", "in.xlsx", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(data)), nil)

	var stored bytes.Buffer
	mockClient.On("PutObject", mock.Anything, "test-bucket", "parts.zip", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			_, err := stored.ReadFrom(args.Get(3).(io.Reader))
			require.NoError(t, err)
		}).
		Return(minio.UploadInfo{}, nil)

	resp, err := svc.SplitObjects(context.Background(), &ObjectsRequest{
		Object:       "in.xlsx",
		Key:          "region",
		OutputObject: "parts.zip",
	})
	require.NoError(t, err)

	assert.Equal(t, "parts.zip", resp.OutputObject)
	require.Len(t, resp.Parts, 2)
	assert.Equal(t, PartSummary{KeyValue: "east", Rows: 1}, resp.Parts[0])
	assert.Equal(t, PartSummary{KeyValue: "west", Rows: 1}, resp.Parts[1])

	zr, err := zip.NewReader(bytes.NewReader(stored.Bytes()), int64(stored.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "east.xlsx", zr.File[0].Name)
	assert.Equal(t, "west.xlsx", zr.File[1].Name)
}

func TestService_SplitObjects_Validation(t *testing.T) {
	svc := newTestService(new(mocks.Client))

	t.Run("MissingObject", func(t *testing.T) {
		_, err := svc.SplitObjects(context.Background(), &ObjectsRequest{
			Key:          "region",
			OutputObject: "parts.zip",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "object is required")
	})

	t.Run("MissingOutput", func(t *testing.T) {
		_, err := svc.SplitObjects(context.Background(), &ObjectsRequest{
			Object: "in.xlsx",
			Key:    "region",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output_object is required")
	})
}
