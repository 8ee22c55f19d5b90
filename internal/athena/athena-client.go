// Package athena submits queries and waits on them, reporting progress only
// when the scanned bytes or execution time change.
package athena

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/BerryBytes/awskit/internal/awsclient"
	"github.com/BerryBytes/awskit/internal/logger"
	"github.com/BerryBytes/awskit/internal/pager"
	awskits3 "github.com/BerryBytes/awskit/internal/s3"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	DefaultTimeout      = 600 * time.Second
	DefaultPollInterval = 5 * time.Second
	DefaultSampleSize   = 1024
	DefaultListLimit    = 50
	// ListPageCeiling is the MaxResults cap of ListQueryExecutions.
	ListPageCeiling = 50
)

type AwsAthenaAdapter struct {
	Client  AthenaAPI
	Objects ObjectStore
	Cfg     aws.Config
	Log     *zap.SugaredLogger

	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
}

func NewAthenaClient(cfg aws.Config, log *zap.SugaredLogger) *AwsAthenaAdapter {
	return &AwsAthenaAdapter{
		Client:  athena.NewFromConfig(cfg),
		Objects: awskits3.NewS3Client(cfg, log),
		Cfg:     cfg,
		Log:     logger.OrNop(log),
		Now:     time.Now,
		Sleep:   sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// JobHandle tracks a submitted query and the last statistics seen for it.
type JobHandle struct {
	JobID          string
	Token          string
	SubmittedAt    time.Time
	OutputLocation models.Location

	observedBytes int64
	observedExec  float64
}

// observe records the statistics and reports whether they changed.
func (h *JobHandle) observe(bytes int64, exec float64) bool {
	if bytes == h.observedBytes && exec == h.observedExec {
		return false
	}
	h.observedBytes = bytes
	h.observedExec = exec
	return true
}

type QueryRequest struct {
	Query        string
	Token        string
	WorkGroup    string
	Catalog      string
	Database     string
	ResultBucket string
	ResultPrefix string
}

// NewToken builds a ClientRequestToken that names the query's tag and start time.
func NewToken(tag string, now time.Time) string {
	if tag == "" {
		tag = "adhoc"
	}
	return fmt.Sprintf("awskit-athena-%s-query-%s-%s", tag, now.UTC().Format("20060102150405"), uuid.NewString()[:8])
}

func (c *AwsAthenaAdapter) log() *zap.SugaredLogger {
	return logger.OrNop(c.Log)
}

func (c *AwsAthenaAdapter) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *AwsAthenaAdapter) sleep(ctx context.Context, d time.Duration) error {
	if c.Sleep != nil {
		return c.Sleep(ctx, d)
	}
	return sleepContext(ctx, d)
}

func (c *AwsAthenaAdapter) StartQuery(ctx context.Context, req QueryRequest) (*JobHandle, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, errors.New("a query is required")
	}

	input := &athena.StartQueryExecutionInput{
		QueryString: aws.String(req.Query),
	}

	prefix := req.ResultPrefix
	if req.Token != "" {
		input.ClientRequestToken = aws.String(req.Token)
		prefix += req.Token + "/"
	}
	if req.ResultBucket != "" {
		input.ResultConfiguration = &types.ResultConfiguration{
			OutputLocation: aws.String(awskits3.FormatURI(req.ResultBucket, prefix)),
		}
	}
	if req.WorkGroup != "" {
		input.WorkGroup = aws.String(req.WorkGroup)
	}
	if req.Catalog != "" || req.Database != "" {
		input.QueryExecutionContext = &types.QueryExecutionContext{}
		if req.Catalog != "" {
			input.QueryExecutionContext.Catalog = aws.String(req.Catalog)
		}
		if req.Database != "" {
			input.QueryExecutionContext.Database = aws.String(req.Database)
		}
	}

	out, err := c.Client.StartQueryExecution(ctx, input)
	if err != nil {
		return nil, awsclient.HandleAWSError(err, "starting query")
	}

	id := aws.ToString(out.QueryExecutionId)
	handle := &JobHandle{
		JobID:       id,
		Token:       req.Token,
		SubmittedAt: c.now(),
	}
	if req.ResultBucket != "" {
		key := strings.TrimLeft(prefix, "/") + id + ".csv"
		handle.OutputLocation = models.Location{
			Bucket: req.ResultBucket,
			Key:    key,
			URI:    awskits3.FormatURI(req.ResultBucket, key),
		}
	}
	c.log().Debugf("Query %s started", id)
	return handle, nil
}

func (c *AwsAthenaAdapter) Status(ctx context.Context, queryID string) (*models.QueryStatus, error) {
	out, err := c.Client.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{
		QueryExecutionId: aws.String(queryID),
	})
	if err != nil {
		return nil, awsclient.HandleAWSError(err, "getting status of query "+queryID)
	}
	if out.QueryExecution == nil {
		return nil, fmt.Errorf("no execution returned for query %s", queryID)
	}
	return toStatus(queryID, out.QueryExecution), nil
}

func toStatus(queryID string, exec *types.QueryExecution) *models.QueryStatus {
	status := &models.QueryStatus{
		QueryID:   queryID,
		Query:     aws.ToString(exec.Query),
		QueryType: string(exec.StatementType),
		WorkGroup: aws.ToString(exec.WorkGroup),
	}
	if exec.QueryExecutionContext != nil {
		status.Schema = aws.ToString(exec.QueryExecutionContext.Database)
	}
	if s := exec.Status; s != nil {
		status.State = string(s.State)
		status.StateReason = aws.ToString(s.StateChangeReason)
		status.SubmittedAt = s.SubmissionDateTime
		status.CompletedAt = s.CompletionDateTime
	}
	status.Finished = IsTerminal(status.State)

	if st := exec.Statistics; st != nil {
		status.BytesScanned = aws.ToInt64(st.DataScannedInBytes)
		status.Durations = models.QueryDurations{
			Queue:   seconds(st.QueryQueueTimeInMillis),
			Plan:    seconds(st.QueryPlanningTimeInMillis),
			Exec:    seconds(st.EngineExecutionTimeInMillis),
			Publish: seconds(st.ServiceProcessingTimeInMillis),
			Total:   seconds(st.TotalExecutionTimeInMillis),
		}
		if manifest := aws.ToString(st.DataManifestLocation); manifest != "" {
			loc := awskits3.ParseURI(manifest)
			status.ManifestLocation = &models.Location{Bucket: loc.Bucket, Key: loc.Key, URI: manifest}
		}
	}

	if exec.ResultConfiguration != nil {
		uri := aws.ToString(exec.ResultConfiguration.OutputLocation)
		loc := awskits3.ParseURI(uri)
		status.OutputLocation = models.Location{Bucket: loc.Bucket, Key: loc.Key, URI: uri}
	}
	return status
}

func seconds(millis *int64) float64 {
	return float64(aws.ToInt64(millis)) / 1000.0
}

type WaitOptions struct {
	Timeout      time.Duration
	PollInterval time.Duration
	Progress     ProgressSink
}

// Wait polls the query until it reaches a terminal state or the timeout
// passes. The first status check happens immediately.
func (c *AwsAthenaAdapter) Wait(ctx context.Context, handle *JobHandle, opts WaitOptions) (models.QueryOutcome, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	start := c.now()
	outcome := models.QueryOutcome{QueryID: handle.JobID, TimedOut: true}

	for first := true; ; first = false {
		remaining := timeout - c.now().Sub(start)
		if remaining <= 0 {
			break
		}
		if !first {
			if err := c.sleep(ctx, min(interval, remaining)); err != nil {
				return outcome, &JobPollError{JobID: handle.JobID, Err: err}
			}
		}

		status, err := c.Status(ctx, handle.JobID)
		if err != nil {
			return outcome, &JobPollError{JobID: handle.JobID, Err: err}
		}

		if handle.observe(status.BytesScanned, status.Durations.Exec) && opts.Progress != nil {
			opts.Progress.Report(Progress{
				State:        status.State,
				BytesScanned: status.BytesScanned,
				ExecDuration: status.Durations.Exec,
				Finished:     status.Finished,
			})
		}

		outcome = models.QueryOutcome{
			QueryID:      handle.JobID,
			State:        status.State,
			Finished:     status.Finished,
			Success:      status.State == StateSucceeded,
			TimedOut:     !status.Finished,
			BytesScanned: status.BytesScanned,
			Durations:    status.Durations,
		}
		if status.Finished {
			return outcome, nil
		}
	}

	c.log().Warnf("Gave up waiting on query %s after %s", handle.JobID, timeout)
	return outcome, nil
}

// WaitForID waits on a query started elsewhere.
func (c *AwsAthenaAdapter) WaitForID(ctx context.Context, queryID string, opts WaitOptions) (models.QueryOutcome, error) {
	return c.Wait(ctx, &JobHandle{JobID: queryID}, opts)
}

type RunRequest struct {
	QueryRequest
	Tag  string
	Wait WaitOptions
}

type RunResult struct {
	Handle  *JobHandle
	Outcome models.QueryOutcome
}

// Run starts a query under a generated token and waits for it.
func (c *AwsAthenaAdapter) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	if req.Token == "" {
		req.Token = NewToken(req.Tag, c.now())
	}

	c.log().Infof("Running %s query:\n%s", req.Tag, req.Query)
	handle, err := c.StartQuery(ctx, req.QueryRequest)
	if err != nil {
		c.log().Errorf("Error starting Athena query %s", req.Token)
		return nil, err
	}
	c.log().Infof("Query %s started.", handle.JobID)

	outcome, err := c.Wait(ctx, handle, req.Wait)
	if err != nil {
		return &RunResult{Handle: handle, Outcome: outcome}, err
	}
	return &RunResult{Handle: handle, Outcome: outcome}, nil
}

// Results samples the output of a finished query. A sampleSize of zero reads
// no data and a negative one reads the whole object.
func (c *AwsAthenaAdapter) Results(ctx context.Context, queryID string, sampleSize int64) (*models.QueryResults, error) {
	status, err := c.Status(ctx, queryID)
	if err != nil {
		return nil, err
	}
	if !status.Finished {
		return &models.QueryResults{State: status.State}, nil
	}

	loc := status.OutputLocation
	results := &models.QueryResults{
		State:  status.State,
		URI:    loc.URI,
		Bucket: loc.Bucket,
		Key:    loc.Key,
	}
	if loc.Bucket == "" || loc.Key == "" {
		return results, nil
	}

	head, err := c.Objects.Head(ctx, loc.Bucket, loc.Key)
	switch {
	case err == nil:
		results.DataSize = head.ContentLength
	case awsclient.IsNotFound(err):
		c.log().Debugf("No output object at %s", loc.URI)
	default:
		return nil, err
	}

	if sampleSize != 0 && results.DataSize != 0 {
		maxBytes := sampleSize
		if maxBytes < 0 {
			maxBytes = 0
		}
		data, err := c.Objects.Get(ctx, loc.Bucket, loc.Key, maxBytes)
		if err != nil {
			return nil, err
		}
		results.Data = data
	}
	results.Partial = sampleSize >= 0 && results.DataSize > sampleSize
	return results, nil
}

func (c *AwsAthenaAdapter) Cancel(ctx context.Context, queryID string) error {
	_, err := c.Client.StopQueryExecution(ctx, &athena.StopQueryExecutionInput{
		QueryExecutionId: aws.String(queryID),
	})
	if err != nil {
		return awsclient.HandleAWSError(err, "cancelling query "+queryID)
	}
	return nil
}

type ListOptions struct {
	// Limit defaults to DefaultListLimit. Negative is unbounded.
	Limit     int
	WorkGroup string
	// Extended fetches the full status of every listed query.
	Extended bool
}

// ScanQueries lists recent query executions, newest first.
func (c *AwsAthenaAdapter) ScanQueries(ctx context.Context, opts ListOptions) iter.Seq2[models.QueryStatus, error] {
	limit := opts.Limit
	switch {
	case limit == 0:
		limit = DefaultListLimit
	case limit < 0:
		limit = 0
	}

	fetch := func(ctx context.Context, req pager.Request) (pager.Page[string], error) {
		input := &athena.ListQueryExecutionsInput{}
		if req.Cursor != "" {
			input.NextToken = aws.String(req.Cursor)
		}
		if req.MaxItems > 0 {
			input.MaxResults = aws.Int32(req.MaxItems)
		}
		if opts.WorkGroup != "" {
			input.WorkGroup = aws.String(opts.WorkGroup)
		}
		out, err := c.Client.ListQueryExecutions(ctx, input)
		if err != nil {
			return pager.Page[string]{}, awsclient.HandleAWSError(err, "listing queries")
		}
		next := aws.ToString(out.NextToken)
		return pager.Page[string]{Items: out.QueryExecutionIds, NextCursor: next, More: next != ""}, nil
	}

	ids := pager.Scan(ctx, fetch, pager.Options{Limit: limit, PageCeiling: ListPageCeiling})
	return func(yield func(models.QueryStatus, error) bool) {
		for id, err := range ids {
			if err != nil {
				yield(models.QueryStatus{}, err)
				return
			}
			if !opts.Extended {
				if !yield(models.QueryStatus{QueryID: id}, nil) {
					return
				}
				continue
			}
			status, err := c.Status(ctx, id)
			if err != nil {
				yield(models.QueryStatus{}, err)
				return
			}
			if !yield(*status, nil) {
				return
			}
		}
	}
}

func (c *AwsAthenaAdapter) ListQueries(ctx context.Context, opts ListOptions) ([]models.QueryStatus, error) {
	return pager.Collect(c.ScanQueries(ctx, opts))
}

// LoadQuery reads a query file and replaces every {{name}} with its value.
func LoadQuery(fs afero.Fs, path string, substitutions map[string]string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read query file %s: %w", path, err)
	}
	query := string(data)
	for name, value := range substitutions {
		query = strings.ReplaceAll(query, "{{"+name+"}}", value)
	}
	return query, nil
}
