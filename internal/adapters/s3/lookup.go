// Package s3 implements a cache lookup that checks for objects in an S3 bucket.
package s3

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/zerr"
)

// HeadObjectAPI is the subset of the S3 client used by Lookup.
type HeadObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// Lookup implements ports.CacheLookup. An entry exists when the object
// <prefix>/<key>/<fingerprint> exists in the bucket.
type Lookup struct {
	cfg    domain.S3Config
	bucket string
	prefix string

	mu     sync.Mutex
	client HeadObjectAPI
}

// New creates a Lookup for cfg. The AWS configuration is loaded on the first
// Lookup, so credential and region errors surface as lookup failures.
func New(cfg domain.S3Config) *Lookup {
	return &Lookup{cfg: cfg, bucket: cfg.Bucket, prefix: cfg.Prefix}
}

// NewWithClient creates a Lookup using an existing client.
func NewWithClient(client HeadObjectAPI, bucket, prefix string) *Lookup {
	return &Lookup{client: client, bucket: bucket, prefix: prefix}
}

// connect builds the client from the environment once.
// A custom endpoint switches the client to path-style addressing.
func (l *Lookup) connect(ctx context.Context) (HeadObjectAPI, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.client != nil {
		return l.client, nil
	}

	var loadOpts []func(*config.LoadOptions) error
	if l.cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(l.cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBackendConnectFailed.Error()), "backend", string(domain.BackendS3))
	}

	l.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if l.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(l.cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return l.client, nil
}

// ObjectKey returns the object key recorded for key and paths.
// The key is path-escaped, so keys containing "/" or ".." map to distinct objects.
func ObjectKey(prefix, key string, paths []string) string {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return prefix + url.PathEscape(key) + "/" + domain.Fingerprint(paths)
}

// Lookup implements ports.CacheLookup.
func (l *Lookup) Lookup(ctx context.Context, paths []string, key string) (*domain.CacheEntry, error) {
	client, err := l.connect(ctx)
	if err != nil {
		return nil, err
	}

	objectKey := ObjectKey(l.prefix, key, paths)
	out, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBackendLookupFailed.Error()), "object", objectKey)
	}

	return &domain.CacheEntry{
		Key:       key,
		Location:  "s3://" + l.bucket + "/" + objectKey,
		Size:      aws.ToInt64(out.ContentLength),
		CreatedAt: aws.ToTime(out.LastModified),
	}, nil
}
