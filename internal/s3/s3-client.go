// Package s3 lists, reads and writes objects with cursor-driven scans.
package s3

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/BerryBytes/awskit/internal/awsclient"
	"github.com/BerryBytes/awskit/internal/logger"
	"github.com/BerryBytes/awskit/internal/pager"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

// PageCeiling is the largest page ListObjectsV2 and ListMultipartUploads return.
const PageCeiling = 1000

type AwsS3Adapter struct {
	Client S3API
	Cfg    aws.Config
	Log    *zap.SugaredLogger
}

func NewS3Client(cfg aws.Config, log *zap.SugaredLogger) *AwsS3Adapter {
	return &AwsS3Adapter{
		Client: s3.NewFromConfig(cfg),
		Cfg:    cfg,
		Log:    logger.OrNop(log),
	}
}

type ScanOptions struct {
	Prefix    string
	Delimiter string
	// Limit caps the number of keys. Zero is unbounded.
	Limit int
	// IncludeMetadata fills LastModified, ETag and Size from the listing.
	IncludeMetadata bool
	StartCursor     string
}

func (c *AwsS3Adapter) log() *zap.SugaredLogger {
	return logger.OrNop(c.Log)
}

// KeyScanner exposes the scanner so callers can save its cursor.
func (c *AwsS3Adapter) KeyScanner(bucket string, opts ScanOptions) *pager.Scanner[models.ObjectInfo] {
	fetch := func(ctx context.Context, req pager.Request) (pager.Page[models.ObjectInfo], error) {
		input := &s3.ListObjectsV2Input{
			Bucket: aws.String(bucket),
		}
		if opts.Prefix != "" {
			input.Prefix = aws.String(opts.Prefix)
		}
		if opts.Delimiter != "" {
			input.Delimiter = aws.String(opts.Delimiter)
		}
		if req.Cursor != "" {
			input.ContinuationToken = aws.String(req.Cursor)
		}
		if req.MaxItems > 0 {
			input.MaxKeys = aws.Int32(req.MaxItems)
		}

		out, err := c.Client.ListObjectsV2(ctx, input)
		if err != nil {
			return pager.Page[models.ObjectInfo]{}, awsclient.HandleAWSError(err, "listing objects in "+FormatURI(bucket, opts.Prefix))
		}

		items := make([]models.ObjectInfo, 0, len(out.Contents))
		for _, obj := range out.Contents {
			info := models.ObjectInfo{Key: aws.ToString(obj.Key)}
			if opts.IncludeMetadata {
				info.LastModified = obj.LastModified
				info.ETag = aws.ToString(obj.ETag)
				info.Size = obj.Size
			}
			items = append(items, info)
		}
		c.log().Debugf("Listed %d keys under %s", len(items), FormatURI(bucket, opts.Prefix))

		return pager.Page[models.ObjectInfo]{
			Items:      items,
			NextCursor: aws.ToString(out.NextContinuationToken),
			More:       aws.ToBool(out.IsTruncated),
		}, nil
	}

	return pager.New(fetch, pager.Options{
		Limit:       opts.Limit,
		PageCeiling: PageCeiling,
		StartCursor: opts.StartCursor,
	})
}

func (c *AwsS3Adapter) ScanKeys(ctx context.Context, bucket string, opts ScanOptions) iter.Seq2[models.ObjectInfo, error] {
	return c.KeyScanner(bucket, opts).All(ctx)
}

func (c *AwsS3Adapter) Keys(ctx context.Context, bucket string, opts ScanOptions) ([]models.ObjectInfo, error) {
	return pager.Collect(c.ScanKeys(ctx, bucket, opts))
}

// Prefixes returns the common prefixes below prefix, following continuation
// tokens while pages keep returning prefixes.
func (c *AwsS3Adapter) Prefixes(ctx context.Context, bucket, prefix, delimiter string) ([]string, error) {
	if delimiter == "" {
		delimiter = "/"
	}

	var prefixes []string
	var token *string
	for {
		input := &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			Prefix:            aws.String(prefix),
			Delimiter:         aws.String(delimiter),
			ContinuationToken: token,
		}
		out, err := c.Client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, awsclient.HandleAWSError(err, "listing prefixes in "+FormatURI(bucket, prefix))
		}

		for _, p := range out.CommonPrefixes {
			prefixes = append(prefixes, aws.ToString(p.Prefix))
		}

		if !aws.ToBool(out.IsTruncated) || aws.ToString(out.NextContinuationToken) == "" || len(out.CommonPrefixes) == 0 {
			return prefixes, nil
		}
		token = out.NextContinuationToken
	}
}

type UploadScanOptions struct {
	Prefix    string
	Delimiter string
	Limit     int
}

const markerSeparator = "\x00"

// ScanUploads lists in-progress multipart uploads. The cursor pairs the key
// and upload-id markers.
func (c *AwsS3Adapter) ScanUploads(ctx context.Context, bucket string, opts UploadScanOptions) iter.Seq2[models.Upload, error] {
	fetch := func(ctx context.Context, req pager.Request) (pager.Page[models.Upload], error) {
		input := &s3.ListMultipartUploadsInput{
			Bucket: aws.String(bucket),
		}
		if opts.Prefix != "" {
			input.Prefix = aws.String(opts.Prefix)
		}
		if opts.Delimiter != "" {
			input.Delimiter = aws.String(opts.Delimiter)
		}
		if req.Cursor != "" {
			keyMarker, idMarker, _ := strings.Cut(req.Cursor, markerSeparator)
			input.KeyMarker = aws.String(keyMarker)
			if idMarker != "" {
				input.UploadIdMarker = aws.String(idMarker)
			}
		}
		if req.MaxItems > 0 {
			input.MaxUploads = aws.Int32(req.MaxItems)
		}

		out, err := c.Client.ListMultipartUploads(ctx, input)
		if err != nil {
			return pager.Page[models.Upload]{}, awsclient.HandleAWSError(err, "listing multipart uploads in "+bucket)
		}

		uploads := make([]models.Upload, 0, len(out.Uploads))
		for _, u := range out.Uploads {
			uploads = append(uploads, models.Upload{
				Bucket:    bucket,
				Key:       aws.ToString(u.Key),
				ID:        aws.ToString(u.UploadId),
				Initiated: u.Initiated,
			})
		}

		var next string
		if key := aws.ToString(out.NextKeyMarker); key != "" {
			next = key + markerSeparator + aws.ToString(out.NextUploadIdMarker)
		}
		return pager.Page[models.Upload]{
			Items:      uploads,
			NextCursor: next,
			More:       aws.ToBool(out.IsTruncated),
		}, nil
	}

	return pager.Scan(ctx, fetch, pager.Options{Limit: opts.Limit, PageCeiling: PageCeiling})
}

func (c *AwsS3Adapter) Head(ctx context.Context, bucket, key string) (*models.ObjectHead, error) {
	out, err := c.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, awsclient.HandleAWSError(err, "reading head of "+FormatURI(bucket, key))
	}
	return &models.ObjectHead{
		Bucket:        bucket,
		Key:           key,
		ContentLength: aws.ToInt64(out.ContentLength),
		ContentType:   aws.ToString(out.ContentType),
		ETag:          aws.ToString(out.ETag),
		LastModified:  out.LastModified,
		Metadata:      out.Metadata,
	}, nil
}

// Get reads an object. A positive maxBytes reads only that many leading bytes.
func (c *AwsS3Adapter) Get(ctx context.Context, bucket, key string, maxBytes int64) ([]byte, error) {
	body, err := c.Open(ctx, bucket, key, maxBytes)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FormatURI(bucket, key), err)
	}
	return data, nil
}

// Open streams an object. The caller closes the reader.
func (c *AwsS3Adapter) Open(ctx context.Context, bucket, key string, maxBytes int64) (io.ReadCloser, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	if maxBytes > 0 {
		input.Range = aws.String(fmt.Sprintf("bytes=0-%d", maxBytes-1))
	}

	out, err := c.Client.GetObject(ctx, input)
	if err != nil {
		return nil, awsclient.HandleAWSError(err, "getting "+FormatURI(bucket, key))
	}
	return out.Body, nil
}

type PutOptions struct {
	ContentType     string
	ContentEncoding string
	Metadata        map[string]string
	// Publish grants public-read.
	Publish bool
}

func (c *AwsS3Adapter) Put(ctx context.Context, bucket, key string, body io.Reader, opts PutOptions) error {
	input := &s3.PutObjectInput{
		Bucket:   aws.String(bucket),
		Key:      aws.String(key),
		Body:     body,
		Metadata: opts.Metadata,
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}
	if opts.ContentEncoding != "" {
		input.ContentEncoding = aws.String(opts.ContentEncoding)
	}
	if opts.Publish {
		input.ACL = types.ObjectCannedACLPublicRead
	}

	if _, err := c.Client.PutObject(ctx, input); err != nil {
		return awsclient.HandleAWSError(err, "putting "+FormatURI(bucket, key))
	}
	c.log().Debugf("Wrote %s", FormatURI(bucket, key))
	return nil
}

func (c *AwsS3Adapter) Buckets(ctx context.Context) ([]models.Bucket, error) {
	out, err := c.Client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, awsclient.HandleAWSError(err, "listing buckets")
	}
	buckets := make([]models.Bucket, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		buckets = append(buckets, models.Bucket{Name: aws.ToString(b.Name), Created: b.CreationDate})
	}
	return buckets, nil
}

// WaitUntilExists polls HeadObject until the object appears or maxWait passes.
func (c *AwsS3Adapter) WaitUntilExists(ctx context.Context, bucket, key string, maxWait time.Duration) error {
	waiter := s3.NewObjectExistsWaiter(c.Client, func(o *s3.ObjectExistsWaiterOptions) {
		o.MinDelay = time.Second
	})
	err := waiter.Wait(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, maxWait)
	if err != nil {
		return fmt.Errorf("failed waiting for %s: %w", FormatURI(bucket, key), err)
	}
	return nil
}

// ScanLines calls fn for each line of an object, gunzipping it when the
// content starts with the gzip magic bytes. It returns the number of lines.
func (c *AwsS3Adapter) ScanLines(ctx context.Context, bucket, key string, fn func(line string) error) (int, error) {
	body, err := c.Open(ctx, bucket, key, 0)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	reader, err := maybeGunzip(body)
	if err != nil {
		return 0, fmt.Errorf("failed to decompress %s: %w", FormatURI(bucket, key), err)
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lines := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return lines, err
		}
		lines++
		if err := fn(scanner.Text()); err != nil {
			return lines, err
		}
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("failed to read %s: %w", FormatURI(bucket, key), err)
	}
	return lines, nil
}

var gzipMagic = []byte{0x1f, 0x8b}

func maybeGunzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}
	if bytes.Equal(head, gzipMagic) {
		return gzip.NewReader(br)
	}
	return br, nil
}
