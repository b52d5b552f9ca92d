package icons

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"icon-data/core/storage"
	"icon-data/feature/icons/catalog"
	"icon-data/feature/icons/enrich"
	"icon-data/feature/icons/models"
	"icon-data/feature/icons/output"
	"icon-data/feature/icons/snapshot"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Report summarizes one combine run.
type Report struct {
	Output           string        `json:"output"`
	Written          bool          `json:"written"`
	Icons            int           `json:"icons"`
	Versions         int           `json:"versions"`
	Latest           string        `json:"latest"`
	Deprecated       int           `json:"deprecated"`
	New              int           `json:"new"`
	Matched          int           `json:"matched"`
	WithAlternatives int           `json:"with_alternatives"`
	DuplicateGroups  int           `json:"duplicate_groups"`
	Tags             int           `json:"tags"`
	Categories       int           `json:"categories"`
	ExecutionTime    time.Duration `json:"execution_time"`
}

// CombineOptions controls a combine run.
type CombineOptions struct {
	// DryRun computes the document without writing it.
	DryRun bool
}

// Service runs the combine and publish jobs.
type Service struct {
	fs     afero.Fs
	cfg    Config
	logger *zap.Logger
	client storage.Client
	bucket string
	object string
}

// NewService creates a new icons service. client may be nil when publishing
// is not configured.
func NewService(fs afero.Fs, cfg Config, logger *zap.Logger, client storage.Client, storageCfg storage.Config) *Service {
	return &Service{
		fs:     fs,
		cfg:    cfg,
		logger: logger,
		client: client,
		bucket: storageCfg.Bucket,
		object: storageCfg.Object,
	}
}

// Combine loads the catalog, merges every snapshot, enriches the records and
// writes the consolidated document. Nothing is written unless every stage succeeds.
func (s *Service) Combine(ctx context.Context, opts CombineOptions) (*Report, error) {
	start := time.Now()

	cat, err := catalog.Load(s.fs, s.cfg.CatalogPath())
	if err != nil {
		return nil, err
	}
	manual, err := catalog.LoadAlternatives(s.fs, s.cfg.AlternativesPath())
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Catalog loaded",
		zap.Int("entries", cat.Len()),
		zap.Int("aliases", len(cat.Aliases())),
		zap.Int("manual_alternatives", len(manual)),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged, err := snapshot.MergeDir(s.fs, s.cfg.Dir)
	if err != nil {
		return nil, err
	}
	if len(merged.Versions) == 0 {
		s.logger.Warn("No snapshots found", zap.String("dir", s.cfg.Dir))
	}
	s.logger.Debug("Snapshots merged",
		zap.Strings("versions", merged.Versions),
		zap.Int("icons", len(merged.Icons)),
	)

	stats := enrich.Apply(merged, cat, manual, enrich.Options{
		SourcePrefix: s.cfg.SourcePrefix,
		NewVersion:   s.cfg.NewVersion,
	})
	doc := output.Build(merged)

	report := &Report{
		Output:           s.cfg.OutputPath(),
		Icons:            len(doc.Icons),
		Versions:         len(doc.Versions),
		Latest:           merged.Latest(),
		Matched:          stats.Matched,
		WithAlternatives: stats.WithAlternatives,
		DuplicateGroups:  stats.DuplicateGroups,
		Tags:             len(doc.Tags),
		Categories:       len(doc.Categories),
	}
	for _, icon := range doc.Icons {
		if icon.Deprecated {
			report.Deprecated++
		}
		if icon.IsNew {
			report.New++
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !opts.DryRun {
		if err := output.Write(s.fs, report.Output, doc); err != nil {
			return nil, err
		}
		report.Written = true
	}
	report.ExecutionTime = time.Since(start)

	return report, nil
}

// Publish uploads the written document to the configured bucket, creating
// the bucket if needed.
func (s *Service) Publish(ctx context.Context) (minio.UploadInfo, error) {
	if s.client == nil {
		return minio.UploadInfo{}, storage.ErrNotConfigured
	}

	path := s.cfg.OutputPath()
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return minio.UploadInfo{}, &models.FilesystemError{Op: "read", Path: path, Err: err}
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		s.logger.Info("Creating bucket", zap.String("bucket", s.bucket))
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return minio.UploadInfo{}, fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	info, err := s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload %s: %w", s.object, err)
	}

	return info, nil
}
