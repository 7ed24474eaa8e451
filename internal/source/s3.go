package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/chainscan/configs"
	"github.com/thirdweb-dev/chainscan/internal/archive"
	"github.com/thirdweb-dev/chainscan/internal/libs"
	"github.com/thirdweb-dev/chainscan/internal/metrics"
)

const defaultMaxConcurrentDownloads = 3

type S3API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source mirrors the segment files under a bucket prefix. Segments are write-once, so a
// file already present locally is never fetched again.
type S3Source struct {
	client                 S3API
	bucket                 string
	prefix                 string
	maxConcurrentDownloads int
}

func NewS3Source(ctx context.Context, cfg *config.S3Config) (*S3Source, error) {
	client, err := libs.NewS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewS3SourceWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

func NewS3SourceWithClient(client S3API, bucket, prefix string) *S3Source {
	return &S3Source{
		client:                 client,
		bucket:                 bucket,
		prefix:                 prefix,
		maxConcurrentDownloads: defaultMaxConcurrentDownloads,
	}
}

// ListSegments returns the object keys under the prefix that carry segment file names.
func (s *S3Source) ListSegments(ctx context.Context) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list S3 objects: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if _, _, _, ok := archive.ParseSegmentFileName(path.Base(key)); ok {
				keys = append(keys, key)
			}
		}
	}
	return keys, nil
}

// Sync downloads every remote segment missing from dir.
func (s *S3Source) Sync(ctx context.Context, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create archive directory: %w", err)
	}
	keys, err := s.ListSegments(ctx)
	if err != nil {
		return 0, err
	}

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		downloaded int
		errs       []string
	)
	sem := make(chan struct{}, s.maxConcurrentDownloads)

	for _, key := range keys {
		localPath := filepath.Join(dir, path.Base(key))
		if _, err := os.Stat(localPath); err == nil {
			continue
		}

		wg.Add(1)
		go func(key, localPath string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			err := s.downloadFile(ctx, key, localPath)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", key, err))
				return
			}
			downloaded++
		}(key, localPath)
	}
	wg.Wait()

	if len(errs) > 0 {
		return downloaded, fmt.Errorf("failed to sync segments: %s", strings.Join(errs, "; "))
	}
	log.Info().Str("bucket", s.bucket).Int("remote", len(keys)).Int("downloaded", downloaded).Msg("Synced archive segments")
	return downloaded, nil
}

func (s *S3Source) downloadFile(ctx context.Context, key, localPath string) error {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to download file: %w", err)
	}
	defer result.Body.Close()

	// Create temp file for atomic write
	tempPath := localPath + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return err
	}

	_, err = io.Copy(file, result.Body)
	file.Close()

	if err != nil {
		os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, localPath); err != nil {
		os.Remove(tempPath)
		return err
	}

	metrics.ArchiveSegmentDownloads.Inc()
	log.Debug().Str("key", key).Str("path", localPath).Msg("Downloaded segment from S3")
	return nil
}
