package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"deviceinfocompare/core/reconcile"
	"deviceinfocompare/core/storage"
	"deviceinfocompare/core/utils"
	"deviceinfocompare/feature/dumps"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Prefix is the object key prefix of archived dumps.
const Prefix = "dumps/"

var (
	// ErrArchiveNotFound is returned when the requested document does not exist.
	ErrArchiveNotFound = errors.New("archived dump not found")
	// ErrUnsupportedVersion is returned for documents written by a newer release.
	ErrUnsupportedVersion = errors.New("unsupported archive document version")
)

// Key returns the object key for a dump id.
func Key(id uint) string {
	return fmt.Sprintf("%s%d.json", Prefix, id)
}

// ResolveKey accepts either a dump id ("3", "#3") or a full object key.
func ResolveKey(ref string) string {
	ref = strings.TrimSpace(ref)
	if id, err := utils.ParseID(ref); err == nil {
		return Key(id)
	}
	return ref
}

// Service exports and restores dumps through object storage.
type Service struct {
	client storage.Client
	bucket string
	dumps  *dumps.Service
	logger *zap.Logger
}

// NewService creates a new archive service.
func NewService(client storage.Client, bucket string, dumpsSvc *dumps.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: bucket,
		dumps:  dumpsSvc,
		logger: logger,
	}
}

// ensureBucket creates the bucket on first use.
func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Bucket created", zap.String("bucket", s.bucket))
	return nil
}

// Export uploads a stored dump and returns its object key.
// Dump #0 is captured live and archived under key dumps/0.json.
func (s *Service) Export(ctx context.Context, id uint) (string, error) {
	doc := Document{
		Version:     documentVersion,
		DumpID:      id,
		Datetime:    time.Now().UTC(),
		Description: "Current devices",
	}

	if id != dumps.CurrentDumpID {
		dump, err := s.dumps.Get(ctx, id)
		if err != nil {
			return "", err
		}
		doc.Datetime = dump.Datetime
		doc.Description = dump.Description
	}

	devices, err := s.dumps.Snapshot(ctx, id)
	if err != nil {
		return "", err
	}
	doc.Devices = devices
	if doc.Devices == nil {
		doc.Devices = []reconcile.DeviceRecord{}
	}

	return s.Put(ctx, doc)
}

// Put uploads doc under the key derived from its dump id.
func (s *Service) Put(ctx context.Context, doc Document) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode archive document: %w", err)
	}

	key := Key(doc.DumpID)
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.logger.Info("Dump archived",
		zap.Uint("dump_id", doc.DumpID),
		zap.String("key", key),
		zap.Int("devices", len(doc.Devices)),
	)
	return key, nil
}

// Fetch downloads and decodes an archived document.
func (s *Service) Fetch(ctx context.Context, ref string) (*Document, error) {
	key := ResolveKey(ref)

	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrArchiveNotFound, key)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", key, err)
	}
	defer obj.Close()

	var doc Document
	if err := json.NewDecoder(obj).Decode(&doc); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrArchiveNotFound, key)
		}
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if doc.Version > documentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return &doc, nil
}

// Restore downloads an archived document and stores it as a new local dump.
func (s *Service) Restore(ctx context.Context, ref string) (*dumps.Dump, error) {
	doc, err := s.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}

	description := doc.Description
	if description == "" {
		description = dumps.DefaultDescription
	}
	dump, err := s.dumps.Import(ctx, description, doc.Datetime, doc.Devices)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Dump restored",
		zap.String("key", ResolveKey(ref)),
		zap.Uint("archived_id", doc.DumpID),
		zap.Uint("dump_id", dump.ID),
	)
	return dump, nil
}

// List returns the archived documents in the bucket.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	entries := []Entry{}
	if !exists {
		return entries, nil
	}

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: Prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archive: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		entries = append(entries, Entry{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return entries, nil
}

// Delete removes an archived document.
func (s *Service) Delete(ctx context.Context, ref string) error {
	key := ResolveKey(ref)
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return fmt.Errorf("%w: %s", ErrArchiveNotFound, key)
		}
		return fmt.Errorf("failed to stat %s: %w", key, err)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
