package checks

import (
	"context"
	"fmt"
	"regexp"

	"deviceinfocompare/core/storage"

	"github.com/minio/minio-go/v7"
)

// documentKey matches the object keys written by the archive feature.
var documentKey = regexp.MustCompile(`^dumps/\d+\.json$`)

// ArchiveReport is the result of an archive check.
type ArchiveReport struct {
	Bucket       string   `json:"bucket"`
	BucketExists bool     `json:"bucket_exists"`
	Documents    int      `json:"documents"`
	Unexpected   []string `json:"unexpected"`
	Empty        []string `json:"empty"`
}

// CheckArchive lists the archive prefix and reports objects that are not
// dump documents or hold no data. A missing bucket is not an error: it is
// created on the first export.
func CheckArchive(ctx context.Context, client storage.Client, bucket, prefix string) (*ArchiveReport, error) {
	report := &ArchiveReport{
		Bucket:     bucket,
		Unexpected: []string{},
		Empty:      []string{},
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		return report, nil
	}

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		switch {
		case !documentKey.MatchString(obj.Key):
			report.Unexpected = append(report.Unexpected, obj.Key)
		case obj.Size == 0:
			report.Empty = append(report.Empty, obj.Key)
		default:
			report.Documents++
		}
	}

	return report, nil
}

// Healthy reports whether the archive holds only valid documents.
func (r *ArchiveReport) Healthy() bool {
	return len(r.Unexpected) == 0 && len(r.Empty) == 0
}
