package file

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// deleteBatchSize is the DeleteObjects limit per request.
const deleteBatchSize = 1000

// S3Client is the subset of *s3.Client used by S3Storage.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

// S3ListObjectsV2Paginator walks a recursive listing page by page.
type S3ListObjectsV2Paginator interface {
	HasMorePages() bool
	NextPage(ctx context.Context, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// PaginatorFactory builds the paginator DeleteDir uses to collect keys.
type PaginatorFactory func(client S3Client, params *s3.ListObjectsV2Input) S3ListObjectsV2Paginator

// S3Config describes the bucket to store files in.
type S3Config struct {
	Bucket         string
	Region         string
	AccessKeyID    string
	SecretKey      string
	Endpoint       string // S3-compatible endpoint, e.g. MinIO
	BaseURL        string // public prefix for URL; derived from Endpoint or the AWS host when empty
	ForcePathStyle bool
}

// S3Storage keeps files as objects in a single bucket. Keys never start or
// end with a slash; "directories" are key prefixes.
type S3Storage struct {
	client       S3Client
	bucket       string
	baseURL      string
	writeTimeout time.Duration
	paginate     PaginatorFactory
}

// S3Option tweaks how NewS3Storage builds the storage.
type S3Option func(*s3Settings)

type s3Settings struct {
	client        S3Client
	httpClient    *http.Client
	loadOptions   []func(*config.LoadOptions) error
	clientOptions []func(*s3.Options)
	paginate      PaginatorFactory
	writeTimeout  time.Duration
}

// WithS3Client skips SDK configuration and uses client as is.
func WithS3Client(client S3Client) S3Option {
	return func(s *s3Settings) { s.client = client }
}

// WithHTTPClient sets the HTTP client the SDK sends requests with.
func WithHTTPClient(client *http.Client) S3Option {
	return func(s *s3Settings) { s.httpClient = client }
}

// WithS3ConfigOption appends an option to config.LoadDefaultConfig.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(s *s3Settings) { s.loadOptions = append(s.loadOptions, option) }
}

// WithS3ClientOption appends an option to s3.NewFromConfig.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(s *s3Settings) { s.clientOptions = append(s.clientOptions, option) }
}

// WithPaginatorFactory replaces the paginator used by DeleteDir.
func WithPaginatorFactory(factory PaginatorFactory) S3Option {
	return func(s *s3Settings) { s.paginate = factory }
}

// WithS3WriteTimeout bounds each upload. Zero leaves the caller's deadline alone.
func WithS3WriteTimeout(timeout time.Duration) S3Option {
	return func(s *s3Settings) { s.writeTimeout = timeout }
}

// NewS3Storage validates cfg and connects to the bucket. Credentials fall
// back to the default AWS chain when AccessKeyID or SecretKey is empty.
func NewS3Storage(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	switch {
	case cfg.Bucket == "":
		return nil, fmt.Errorf("%w: s3 bucket is required", ErrInvalidConfig)
	case cfg.Region == "":
		return nil, fmt.Errorf("%w: s3 region is required", ErrInvalidConfig)
	}

	var set s3Settings
	for _, opt := range opts {
		opt(&set)
	}

	client := set.client
	if client == nil {
		var err error
		if client, err = loadS3Client(ctx, cfg, set); err != nil {
			return nil, err
		}
	}

	if set.paginate == nil {
		set.paginate = sdkPaginator
	}

	return &S3Storage{
		client:       client,
		bucket:       cfg.Bucket,
		baseURL:      publicBaseURL(cfg),
		writeTimeout: set.writeTimeout,
		paginate:     set.paginate,
	}, nil
}

func loadS3Client(ctx context.Context, cfg S3Config, set s3Settings) (*s3.Client, error) {
	load := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")
		load = append(load, config.WithCredentialsProvider(creds))
	}
	if set.httpClient != nil {
		load = append(load, config.WithHTTPClient(set.httpClient))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, append(load, set.loadOptions...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
		for _, apply := range set.clientOptions {
			apply(o)
		}
	}), nil
}

// sdkPaginator returns nil for anything but the real SDK client; tests
// inject their own factory.
func sdkPaginator(client S3Client, params *s3.ListObjectsV2Input) S3ListObjectsV2Paginator {
	if c, ok := client.(*s3.Client); ok {
		return s3.NewListObjectsV2Paginator(c, params)
	}
	return nil
}

func publicBaseURL(cfg S3Config) string {
	base := cfg.BaseURL
	switch {
	case base != "":
	case cfg.Endpoint != "":
		base = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		base = "https://" + cfg.Bucket + ".s3." + cfg.Region + ".amazonaws.com"
	}
	return strings.TrimSuffix(base, "/") + "/"
}

// s3ErrorCodes maps S3 API error codes onto package errors.
var s3ErrorCodes = map[string]error{
	"NoSuchKey":          ErrFileNotFound,
	"NotFound":           ErrFileNotFound,
	"NoSuchBucket":       ErrBucketNotFound,
	"AccessDenied":       ErrAccessDenied,
	"RequestTimeout":     ErrRequestTimeout,
	"SlowDown":           ErrServiceUnavailable,
	"ServiceUnavailable": ErrServiceUnavailable,
	"InvalidObjectState": ErrInvalidObjectState,
}

// s3Error wraps err with the package error matching its cause, keeping the
// failed operation and key in the message.
func s3Error(op, key string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s %s", ErrOperationTimeout, op, key)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s %s", ErrOperationCanceled, op, key)
	}

	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, key)
	}
	var noBucket *types.NoSuchBucket
	if errors.As(err, &noBucket) {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, key)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if sentinel, ok := s3ErrorCodes[apiErr.ErrorCode()]; ok {
			return fmt.Errorf("%w: %s %s", sentinel, op, key)
		}
		return fmt.Errorf("%s %s: code %s: %w", op, key, apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("%s %s: %w", op, key, err)
}

// Write uploads r to path with a sniffed content type. S3 has no
// directories, so nothing is created besides the object itself.
func (s *S3Storage) Write(ctx context.Context, path string, r io.Reader) (*File, error) {
	key, err := objectKey(path)
	if err != nil {
		return nil, err
	}
	if key == "" || strings.HasSuffix(path, "/") {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}

	mimeType, src, err := DetectMIMEType(key, r)
	if err != nil {
		return nil, err
	}

	body := &countingReader{r: src}
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(mimeType),
	}); err != nil {
		return nil, s3Error("upload", key, err)
	}

	return s.object(key, body.n, mimeType), nil
}

// Copy duplicates src into dst without downloading it.
func (s *S3Storage) Copy(ctx context.Context, src, dst string) (*File, error) {
	srcKey, err := objectKey(src)
	if err != nil {
		return nil, err
	}
	dstKey, err := objectKey(dst)
	if err != nil {
		return nil, err
	}

	meta, err := s.head(ctx, srcKey)
	if err != nil {
		return nil, err
	}

	source := (&url.URL{Path: s.bucket + "/" + srcKey}).EscapedPath()
	if _, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		Key:        aws.String(dstKey),
		CopySource: aws.String(source),
	}); err != nil {
		return nil, s3Error("copy", srcKey, err)
	}

	return s.object(dstKey, aws.ToInt64(meta.ContentLength), aws.ToString(meta.ContentType)), nil
}

// MkdirAll only validates dir; prefixes appear with the first object under them.
func (s *S3Storage) MkdirAll(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := objectKey(dir)
	return err
}

// Delete removes one object. A missing object is ErrFileNotFound.
func (s *S3Storage) Delete(ctx context.Context, path string) error {
	key, err := objectKey(path)
	if err != nil {
		return err
	}
	if _, err := s.head(ctx, key); err != nil {
		return err
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return s3Error("delete", key, err)
	}
	return nil
}

// DeleteDir removes every object under dir. An empty prefix is
// ErrDirectoryNotFound and the bucket root is refused.
func (s *S3Storage) DeleteDir(ctx context.Context, dir string) error {
	key, err := objectKey(dir)
	if err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("%w: refusing to delete bucket root", ErrInvalidPath)
	}
	prefix := key + "/"

	pages := s.paginate(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	if pages == nil {
		return ErrPaginatorNil
	}

	var ids []types.ObjectIdentifier
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return s3Error("list", prefix, err)
		}
		for _, obj := range page.Contents {
			ids = append(ids, types.ObjectIdentifier{Key: obj.Key})
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: %s", ErrDirectoryNotFound, key)
	}

	for batch := range slices.Chunk(ids, deleteBatchSize) {
		if _, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: batch},
		}); err != nil {
			return s3Error("delete", prefix, err)
		}
	}
	return nil
}

// Exists reports whether an object is stored at path.
func (s *S3Storage) Exists(ctx context.Context, path string) bool {
	key, err := objectKey(path)
	if err != nil || key == "" {
		return false
	}
	_, err = s.head(ctx, key)
	return err == nil
}

// List returns the direct children of dir sorted by name, following
// continuation tokens until the listing is complete. Directory entries
// carry their prefix without the trailing slash, like LocalStorage.
func (s *S3Storage) List(ctx context.Context, dir string) ([]Entry, error) {
	key, err := objectKey(dir)
	if err != nil {
		return nil, err
	}
	prefix := key
	if prefix != "" {
		prefix += "/"
	}

	var (
		entries []Entry
		token   *string
	)
	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(prefix),
			Delimiter:         aws.String("/"),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, s3Error("list", prefix, err)
		}

		for _, p := range out.CommonPrefixes {
			sub := strings.TrimSuffix(aws.ToString(p.Prefix), "/")
			entries = append(entries, Entry{Name: strings.TrimPrefix(sub, prefix), Path: sub, IsDir: true})
		}
		for _, obj := range out.Contents {
			objKey := aws.ToString(obj.Key)
			name := strings.TrimPrefix(objKey, prefix)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			entries = append(entries, Entry{Name: name, Path: objKey, Size: aws.ToInt64(obj.Size)})
		}

		if !aws.ToBool(out.IsTruncated) || out.NextContinuationToken == nil {
			break
		}
		token = out.NextContinuationToken
	}

	slices.SortFunc(entries, func(a, b Entry) int { return cmp.Compare(a.Name, b.Name) })
	return entries, nil
}

// URL joins path onto the public base URL.
func (s *S3Storage) URL(path string) string {
	return s.baseURL + strings.TrimPrefix(path, "/")
}

func (s *S3Storage) head(ctx context.Context, key string) (*s3.HeadObjectOutput, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, s3Error("stat", key, err)
	}
	return out, nil
}

func (s *S3Storage) object(key string, size int64, mimeType string) *File {
	return &File{
		Filename:     path.Base(key),
		Size:         size,
		MIMEType:     mimeType,
		Extension:    Ext(key),
		RelativePath: key,
	}
}

// objectKey turns p into a bucket key: forward slashes only, no leading or
// trailing slash. Any ".." segment is rejected before cleaning.
func objectKey(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	if slices.Contains(strings.Split(p, "/"), "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, p)
	}
	return strings.Trim(path.Clean("/"+p), "/"), nil
}
