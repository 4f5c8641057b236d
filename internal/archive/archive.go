// Package archive stores downloaded MWS report bodies in S3-compatible
// object storage.
package archive

import (
	"bytes"
	"context"
	"crypto/md5" //nolint:gosec // S3 Content-MD5 integrity header, not a security use
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/donaldgifford/mws-toolkit/internal/config"
	"github.com/donaldgifford/mws-toolkit/internal/metrics"
)

// ErrEmptyKey is returned when an object key is blank.
var ErrEmptyKey = errors.New("archive: object key is required")

// Object describes a stored report body.
type Object struct {
	Bucket     string
	Key        string
	Size       int64
	ContentMD5 string
	ETag       string
}

// Archiver writes report bodies to object storage.
type Archiver interface {
	PutReport(ctx context.Context, key string, body []byte) (*Object, error)
	EnsureBucket(ctx context.Context) error
}

// S3Archiver implements Archiver on top of the AWS SDK v2 S3 client. Any
// S3-compatible backend works when an endpoint is configured.
type S3Archiver struct {
	client *s3.Client
	bucket string
	log    *slog.Logger
}

// Option configures an S3Archiver.
type Option func(*S3Archiver)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *S3Archiver) {
		a.log = l
	}
}

// WithClient replaces the S3 client built from configuration.
func WithClient(c *s3.Client) Option {
	return func(a *S3Archiver) {
		a.client = c
	}
}

// NewS3Archiver builds an archiver from the archive configuration.
func NewS3Archiver(
	ctx context.Context,
	cfg *config.ArchiveConfig,
	opts ...Option,
) (*S3Archiver, error) {
	if cfg == nil {
		return nil, errors.New("archive configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("archive bucket is required")
	}

	a := &S3Archiver{bucket: cfg.Bucket, log: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	if a.client != nil {
		return a, nil
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	a.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// Content-MD5 is always sent; skip the flexible checksum trailer so
		// S3-compatible stores without trailer support accept the upload.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return a, nil
}

// Bucket returns the target bucket name.
func (a *S3Archiver) Bucket() string {
	return a.bucket
}

// EnsureBucket creates the bucket if it does not exist.
func (a *S3Archiver) EnsureBucket(ctx context.Context) error {
	_, err := a.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(a.bucket)})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("checking bucket %s: %w", a.bucket, err)
	}

	a.log.Info("creating archive bucket", "bucket", a.bucket)
	_, err = a.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(a.bucket)})
	if err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return nil
		}
		return fmt.Errorf("creating bucket %s: %w", a.bucket, err)
	}
	return nil
}

// PutReport uploads a report body under key.
func (a *S3Archiver) PutReport(ctx context.Context, key string, body []byte) (*Object, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	sum := md5.Sum(body) //nolint:gosec // see import
	contentMD5 := base64.StdEncoding.EncodeToString(sum[:])

	out, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentMD5:    aws.String(contentMD5),
		ContentType:   aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return nil, fmt.Errorf("putting s3://%s/%s: %w", a.bucket, key, err)
	}

	metrics.ReportArchiveBytes.Add(float64(len(body)))
	a.log.Debug("report archived", "bucket", a.bucket, "key", key, "bytes", len(body))

	return &Object{
		Bucket:     a.bucket,
		Key:        key,
		Size:       int64(len(body)),
		ContentMD5: contentMD5,
		ETag:       strings.Trim(aws.ToString(out.ETag), `"`),
	}, nil
}

// ObjectKey lays out report bodies as
// <prefix><store>/<report type>/<yyyy>/<mm>/<dd>/<report id>.txt.
func ObjectKey(prefix, store, reportType, reportID string, available time.Time) string {
	reportType = strings.Trim(reportType, "_")
	if reportType == "" {
		reportType = "unknown"
	}
	return prefix + path.Join(
		store,
		strings.ToLower(reportType),
		available.UTC().Format("2006/01/02"),
		reportID+".txt",
	)
}
