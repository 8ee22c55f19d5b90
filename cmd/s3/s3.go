package s3

import (
	"context"
	"fmt"
	"io"
	"iter"
	"sort"
	"strings"
	"time"

	awskits3 "github.com/BerryBytes/awskit/internal/s3"
	"github.com/BerryBytes/awskit/internal/session"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//go:generate mockgen -source=s3.go -destination=../../internal/mocks/s3cmd/mock_s3.go -package=mock_s3cmd

type ObjectService interface {
	ScanKeys(ctx context.Context, bucket string, opts awskits3.ScanOptions) iter.Seq2[models.ObjectInfo, error]
	Prefixes(ctx context.Context, bucket, prefix, delimiter string) ([]string, error)
	Head(ctx context.Context, bucket, key string) (*models.ObjectHead, error)
	ScanUploads(ctx context.Context, bucket string, opts awskits3.UploadScanOptions) iter.Seq2[models.Upload, error]
	Buckets(ctx context.Context) ([]models.Bucket, error)
	Put(ctx context.Context, bucket, key string, body io.Reader, opts awskits3.PutOptions) error
	ScanLines(ctx context.Context, bucket, key string, fn func(line string) error) (int, error)
	WaitUntilExists(ctx context.Context, bucket, key string, maxWait time.Duration) error
}

var _ ObjectService = (*awskits3.AwsS3Adapter)(nil)

type Dependencies struct {
	Session    *session.Session
	NewService func(cfg aws.Config, log *zap.SugaredLogger) ObjectService
	// Fs serves put --file. Nil means the OS filesystem.
	Fs afero.Fs
}

func (d Dependencies) fs() afero.Fs {
	if d.Fs != nil {
		return d.Fs
	}
	return afero.NewOsFs()
}

func (d Dependencies) service(ctx context.Context) (ObjectService, error) {
	cfg, err := d.Session.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	if d.NewService != nil {
		return d.NewService(cfg, d.Session.Log), nil
	}
	return awskits3.NewS3Client(cfg, d.Session.Log), nil
}

func NewS3Commands(deps Dependencies) *cobra.Command {
	s3Cmd := &cobra.Command{
		Use:   "s3",
		Short: "Browse S3 buckets and keys",
	}

	s3Cmd.AddCommand(lsCmd(deps))
	s3Cmd.AddCommand(prefixesCmd(deps))
	s3Cmd.AddCommand(headCmd(deps))
	s3Cmd.AddCommand(uploadsCmd(deps))
	s3Cmd.AddCommand(bucketsCmd(deps))
	s3Cmd.AddCommand(putCmd(deps))
	s3Cmd.AddCommand(catCmd(deps))
	s3Cmd.AddCommand(waitCmd(deps))

	return s3Cmd
}

func lsCmd(deps Dependencies) *cobra.Command {
	var (
		limit     int
		meta      bool
		delimiter string
	)
	cmd := &cobra.Command{
		Use:   "ls <s3://bucket/prefix>",
		Short: "List keys under a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := awskits3.ParseURI(args[0])
			if loc.Bucket == "" {
				return fmt.Errorf("no bucket in %q", args[0])
			}
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			count := 0
			for obj, err := range svc.ScanKeys(cmd.Context(), loc.Bucket, awskits3.ScanOptions{
				Prefix:          loc.Key,
				Delimiter:       delimiter,
				Limit:           limit,
				IncludeMetadata: meta,
			}) {
				if err != nil {
					return err
				}
				count++
				if !meta {
					fmt.Fprintln(out, obj.Key)
					continue
				}
				fmt.Fprintf(out, "%s  %10s  %s\n", formatTime(obj.LastModified), formatSize(obj.Size), obj.Key)
			}
			deps.Session.Log.Debugf("Listed %d keys under %s", count, awskits3.FormatURIColor(loc.Bucket, loc.Key))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of keys (0 for all)")
	cmd.Flags().BoolVarP(&meta, "meta", "m", false, "Show size and modification time")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Group keys by this delimiter")
	return cmd
}

func prefixesCmd(deps Dependencies) *cobra.Command {
	var delimiter string
	cmd := &cobra.Command{
		Use:   "prefixes <s3://bucket/prefix>",
		Short: "List the common prefixes one level below a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := awskits3.ParseURI(args[0])
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			prefixes, err := svc.Prefixes(cmd.Context(), loc.Bucket, loc.Key, delimiter)
			if err != nil {
				return err
			}
			for _, p := range prefixes {
				fmt.Fprintln(cmd.OutOrStdout(), awskits3.FormatURI(loc.Bucket, p))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "/", "Prefix delimiter")
	return cmd
}

// objectLocation reads either "s3://bucket/key" or "bucket key".
func objectLocation(args []string) (awskits3.Location, error) {
	key := ""
	if len(args) > 1 {
		key = args[1]
	}
	loc := awskits3.ResolveResourceInfo(args[0], key)
	if loc.Bucket == "" || loc.Key == "" {
		return loc, fmt.Errorf("no key in %q", strings.Join(args, " "))
	}
	return loc, nil
}

func headCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "head <s3://bucket/key | bucket key>",
		Short: "Show the metadata of an object",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := objectLocation(args)
			if err != nil {
				return err
			}
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			head, err := svc.Head(cmd.Context(), loc.Bucket, loc.Key)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "URI           : %s\n", awskits3.FormatURI(head.Bucket, head.Key))
			fmt.Fprintf(out, "Size          : %s (%s bytes)\n", humanize.Bytes(uint64(head.ContentLength)), humanize.Comma(head.ContentLength))
			if head.ContentType != "" {
				fmt.Fprintf(out, "Content-Type  : %s\n", head.ContentType)
			}
			if head.ETag != "" {
				fmt.Fprintf(out, "ETag          : %s\n", head.ETag)
			}
			if head.LastModified != nil {
				fmt.Fprintf(out, "Last-Modified : %s\n", formatTime(head.LastModified))
			}
			keys := make([]string, 0, len(head.Metadata))
			for k := range head.Metadata {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "x-amz-meta-%s : %s\n", k, head.Metadata[k])
			}
			return nil
		},
	}
}

func uploadsCmd(deps Dependencies) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "uploads <s3://bucket/prefix>",
		Short: "List in-progress multipart uploads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := awskits3.ParseURI(args[0])
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			for upload, err := range svc.ScanUploads(cmd.Context(), loc.Bucket, awskits3.UploadScanOptions{Prefix: loc.Key, Limit: limit}) {
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", formatTime(upload.Initiated), upload.ID, upload.Key)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of uploads (0 for all)")
	return cmd
}

func bucketsCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "buckets",
		Short: "List buckets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			buckets, err := svc.Buckets(cmd.Context())
			if err != nil {
				return err
			}
			for _, b := range buckets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", formatTime(b.Created), b.Name)
			}
			return nil
		},
	}
}

func putCmd(deps Dependencies) *cobra.Command {
	var (
		file            string
		contentType     string
		contentEncoding string
		metadata        map[string]string
		public          bool
	)
	cmd := &cobra.Command{
		Use:   "put <s3://bucket/key | bucket key>",
		Short: "Upload a file or stdin to an object",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := objectLocation(args)
			if err != nil {
				return err
			}

			body := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := deps.fs().Open(file)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", file, err)
				}
				defer f.Close()
				body = f
			}

			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Put(cmd.Context(), loc.Bucket, loc.Key, body, awskits3.PutOptions{
				ContentType:     contentType,
				ContentEncoding: contentEncoding,
				Metadata:        metadata,
				Publish:         public,
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "File to upload (default stdin)")
	cmd.Flags().StringVar(&contentType, "content-type", "", "Content-Type of the object")
	cmd.Flags().StringVar(&contentEncoding, "content-encoding", "", "Content-Encoding of the object")
	cmd.Flags().StringToStringVar(&metadata, "meta", nil, "User metadata key=value pairs")
	cmd.Flags().BoolVar(&public, "public", false, "Grant public-read")
	return cmd
}

func catCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <s3://bucket/key | bucket key>",
		Short: "Print an object line by line, gunzipping it when compressed",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := objectLocation(args)
			if err != nil {
				return err
			}
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			lines, err := svc.ScanLines(cmd.Context(), loc.Bucket, loc.Key, func(line string) error {
				_, err := fmt.Fprintln(out, line)
				return err
			})
			if err != nil {
				return err
			}
			deps.Session.Log.Debugf("Read %d lines from %s", lines, awskits3.FormatURIColor(loc.Bucket, loc.Key))
			return nil
		},
	}
}

func waitCmd(deps Dependencies) *cobra.Command {
	var maxWait time.Duration
	cmd := &cobra.Command{
		Use:   "wait <s3://bucket/key | bucket key>",
		Short: "Wait until an object exists",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := objectLocation(args)
			if err != nil {
				return err
			}
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.WaitUntilExists(cmd.Context(), loc.Bucket, loc.Key, maxWait); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc.String())
			return nil
		},
	}
	cmd.Flags().DurationVar(&maxWait, "wait-timeout", 5*time.Minute, "Longest time to wait")
	return cmd
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func formatSize(size *int64) string {
	if size == nil {
		return "-"
	}
	return humanize.Bytes(uint64(*size))
}
