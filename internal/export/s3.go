package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrNoBucket is returned when an S3 export has no bucket configured.
var ErrNoBucket = errors.New("export: bucket is required")

// Uploader is the subset of manager.Uploader used for exports.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3Options configures the S3 target. Empty credentials fall back to the
// default AWS credential chain.
type S3Options struct {
	Bucket   string
	Prefix   string
	Region   string
	Profile  string
	Endpoint string

	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// S3Target uploads snapshots to a bucket.
type S3Target struct {
	bucket   string
	prefix   string
	uploader Uploader
}

// NewS3Target resolves AWS configuration and builds a multipart uploader.
func NewS3Target(ctx context.Context, opts S3Options) (*S3Target, error) {
	if opts.Bucket == "" {
		return nil, ErrNoBucket
	}

	loaders := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loaders = append(loaders, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loaders = append(loaders, awsconfig.WithSharedConfigProfile(opts.Profile))
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loaders = append(loaders, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, opts.SessionToken),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3TargetWithUploader(opts.Bucket, opts.Prefix, manager.NewUploader(client)), nil
}

// NewS3TargetWithUploader builds a target around an existing uploader.
func NewS3TargetWithUploader(bucket, prefix string, u Uploader) *S3Target {
	return &S3Target{bucket: bucket, prefix: prefix, uploader: u}
}

// Put uploads the snapshot and returns the object location.
func (t *S3Target) Put(ctx context.Context, s Snapshot) (string, error) {
	if t.bucket == "" {
		return "", ErrNoBucket
	}

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return "", err
	}

	key := Key(t.prefix, s.GeneratedAt)
	out, err := t.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(t.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	if out != nil && out.Location != "" {
		return out.Location, nil
	}
	return fmt.Sprintf("s3://%s/%s", t.bucket, key), nil
}
