package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestArchiveYears(t *testing.T) {
	now := time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, []int{2022, 2023}, ArchiveYears(2022, now))
	assert.Equal(t, []int{2023}, ArchiveYears(2023, now))
	assert.Empty(t, ArchiveYears(2024, now))
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "2025-10-22.json", LatestFileName(time.Date(2025, 10, 22, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "archive/2023.json", ArchiveFileName(2023))
}

func TestSnapshotLoader_LoadCombined(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "archive/2023.json", `{
		"year": 2023,
		"archived_at": "2024-01-05T00:00:00",
		"total_records": 2,
		"sales_data": [
			{"date": "2023-06-01", "booking_no": "A-1", "amount": 100},
			{"date": "2023-06-02", "booking_no": "A-2", "amount": 200}
		]
	}`)
	writeFile(t, dir, "2025-10-22.json", `{
		"generated_at": "2025-10-22T06:00:00",
		"total_records": 1,
		"sales_data": [
			{"date": "2025-10-21", "booking_no": "L-1", "amount": 300}
		]
	}`)

	loader := NewLoader(config.Snapshot{ArchiveStartYear: 2022}, NewFileSource(dir))
	now := time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC)

	data, err := loader.LoadCombined(context.Background(), "2025-10-22.json", now)
	require.NoError(t, err)

	assert.Equal(t, "2025-10-22T06:00:00", data.GeneratedAt)
	assert.Equal(t, 3, data.TotalRecords)
	assert.Equal(t, []domain.SalesRecord{
		{Date: "2023-06-01", BookingNo: "A-1", Amount: 100},
		{Date: "2023-06-02", BookingNo: "A-2", Amount: 200},
		{Date: "2025-10-21", BookingNo: "L-1", Amount: 300},
	}, data.SalesData)
}

func TestSnapshotLoader_LoadCombined_SkipsBrokenArchive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "archive/2023.json", `{"year": 2023, "sales_data": [`)
	writeFile(t, dir, "2025-01-02.json", `{"generated_at": "x", "sales_data": [{"date": "2025-01-01", "booking_no": "1", "amount": 5}]}`)

	loader := NewLoader(config.Snapshot{ArchiveStartYear: 2023}, NewFileSource(dir))

	data, err := loader.LoadCombined(context.Background(), "2025-01-02.json", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, data.TotalRecords)
}

func TestSnapshotLoader_LoadCombined_MissingLatest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "archive/2023.json", `{"year": 2023, "sales_data": []}`)

	loader := NewLoader(config.Snapshot{ArchiveStartYear: 2023}, NewFileSource(dir))

	data, err := loader.LoadCombined(context.Background(), "2025-10-22.json", time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource(t.TempDir()).Open(ctx, "2025-10-22.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountMalformedDates(t *testing.T) {
	records := []domain.SalesRecord{
		{Date: "2025-10-21"},
		{Date: "2025/10/21"},
		{Date: "2025-02-30"},
		{Date: ""},
	}

	assert.Equal(t, 3, countMalformedDates(records))
}
