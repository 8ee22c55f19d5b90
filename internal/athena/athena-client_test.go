package athena_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	awskitathena "github.com/BerryBytes/awskit/internal/athena"
	"github.com/BerryBytes/awskit/internal/awsclient"
	mock_athena "github.com/BerryBytes/awskit/internal/mocks/athena"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
	"github.com/aws/smithy-go"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func objectHead(size int64) *models.ObjectHead {
	return &models.ObjectHead{Bucket: "results", Key: "athena/q-1.csv", ContentLength: size}
}

type fixture struct {
	adapter *awskitathena.AwsAthenaAdapter
	client  *mock_athena.MockAthenaAPI
	objects *mock_athena.MockObjectStore
	clock   *fakeClock
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		client:  mock_athena.NewMockAthenaAPI(ctrl),
		objects: mock_athena.NewMockObjectStore(ctrl),
		clock:   &fakeClock{now: epoch},
	}
	f.adapter = &awskitathena.AwsAthenaAdapter{
		Client:  f.client,
		Objects: f.objects,
		Now:     f.clock.Now,
		Sleep:   f.clock.Sleep,
	}
	return f
}

func execution(state types.QueryExecutionState, bytes, execMillis int64) *athena.GetQueryExecutionOutput {
	return &athena.GetQueryExecutionOutput{
		QueryExecution: &types.QueryExecution{
			QueryExecutionId: aws.String("q-1"),
			Query:            aws.String("SELECT 1"),
			StatementType:    types.StatementTypeDml,
			WorkGroup:        aws.String("primary"),
			Status:           &types.QueryExecutionStatus{State: state},
			Statistics: &types.QueryExecutionStatistics{
				DataScannedInBytes:          aws.Int64(bytes),
				EngineExecutionTimeInMillis: aws.Int64(execMillis),
				QueryQueueTimeInMillis:      aws.Int64(250),
				TotalExecutionTimeInMillis:  aws.Int64(execMillis + 250),
			},
			ResultConfiguration: &types.ResultConfiguration{
				OutputLocation: aws.String("s3://results/athena/q-1.csv"),
			},
		},
	}
}

func expectStatuses(client *mock_athena.MockAthenaAPI, outs ...*athena.GetQueryExecutionOutput) {
	calls := make([]*gomock.Call, 0, len(outs))
	for _, out := range outs {
		calls = append(calls, client.EXPECT().GetQueryExecution(gomock.Any(), gomock.Any()).Return(out, nil))
	}
	gomock.InOrder(calls...)
}

func TestWait_RunningThenSucceeded(t *testing.T) {
	f := newFixture(t)
	expectStatuses(f.client,
		execution(types.QueryExecutionStateRunning, 100, 1000),
		execution(types.QueryExecutionStateRunning, 200, 2000),
		execution(types.QueryExecutionStateRunning, 300, 3000),
		execution(types.QueryExecutionStateSucceeded, 400, 4000),
	)

	outcome, err := f.adapter.Wait(context.Background(), &awskitathena.JobHandle{JobID: "q-1"}, awskitathena.WaitOptions{
		Timeout:      time.Minute,
		PollInterval: 2 * time.Second,
	})
	require.NoError(t, err)

	assert.True(t, outcome.Finished)
	assert.True(t, outcome.Success)
	assert.False(t, outcome.TimedOut)
	assert.Equal(t, "SUCCEEDED", outcome.State)
	assert.Equal(t, int64(400), outcome.BytesScanned)
	assert.InDelta(t, 4.0, outcome.Durations.Exec, 1e-9)
	assert.InDelta(t, 4.25, outcome.Durations.Total, 1e-9)
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second, 2 * time.Second}, f.clock.sleeps)
}

func TestWait_FailedQueryIsFinishedNotSuccessful(t *testing.T) {
	f := newFixture(t)
	expectStatuses(f.client, execution(types.QueryExecutionStateFailed, 0, 0))

	outcome, err := f.adapter.Wait(context.Background(), &awskitathena.JobHandle{JobID: "q-1"}, awskitathena.WaitOptions{})
	require.NoError(t, err)
	assert.True(t, outcome.Finished)
	assert.False(t, outcome.Success)
	assert.False(t, outcome.TimedOut)
	assert.Empty(t, f.clock.sleeps)
}

func TestWait_ReportsOnlyChangedStatistics(t *testing.T) {
	f := newFixture(t)
	expectStatuses(f.client,
		execution(types.QueryExecutionStateQueued, 0, 0),
		execution(types.QueryExecutionStateRunning, 100, 1000),
		execution(types.QueryExecutionStateRunning, 100, 1000),
		execution(types.QueryExecutionStateRunning, 100, 1500),
		execution(types.QueryExecutionStateRunning, 100, 1500),
		execution(types.QueryExecutionStateSucceeded, 250, 2000),
	)

	var reports []awskitathena.Progress
	sink := awskitathena.ProgressFunc(func(p awskitathena.Progress) { reports = append(reports, p) })

	_, err := f.adapter.Wait(context.Background(), &awskitathena.JobHandle{JobID: "q-1"}, awskitathena.WaitOptions{
		Timeout:      time.Minute,
		PollInterval: time.Second,
		Progress:     sink,
	})
	require.NoError(t, err)

	assert.Equal(t, []awskitathena.Progress{
		{State: "RUNNING", BytesScanned: 100, ExecDuration: 1.0},
		{State: "RUNNING", BytesScanned: 100, ExecDuration: 1.5},
		{State: "SUCCEEDED", BytesScanned: 250, ExecDuration: 2.0, Finished: true},
	}, reports)
}

func TestWait_Timeout(t *testing.T) {
	f := newFixture(t)
	f.client.EXPECT().GetQueryExecution(gomock.Any(), gomock.Any()).
		Return(execution(types.QueryExecutionStateRunning, 10, 10), nil).Times(4)

	outcome, err := f.adapter.Wait(context.Background(), &awskitathena.JobHandle{JobID: "q-1"}, awskitathena.WaitOptions{
		Timeout:      10 * time.Second,
		PollInterval: 4 * time.Second,
	})
	require.NoError(t, err)
	assert.True(t, outcome.TimedOut)
	assert.False(t, outcome.Finished)
	assert.Equal(t, "RUNNING", outcome.State)
	assert.Equal(t, []time.Duration{4 * time.Second, 4 * time.Second, 2 * time.Second}, f.clock.sleeps)
}

func TestWait_LastSleepIsCappedByRemainingTime(t *testing.T) {
	f := newFixture(t)
	f.client.EXPECT().GetQueryExecution(gomock.Any(), gomock.Any()).
		Return(execution(types.QueryExecutionStateRunning, 10, 10), nil).Times(3)

	outcome, err := f.adapter.Wait(context.Background(), &awskitathena.JobHandle{JobID: "q-1"}, awskitathena.WaitOptions{
		Timeout:      7 * time.Second,
		PollInterval: 5 * time.Second,
	})
	require.NoError(t, err)
	assert.True(t, outcome.TimedOut)
	assert.Equal(t, []time.Duration{5 * time.Second, 2 * time.Second}, f.clock.sleeps)
}

func TestWait_StatusErrorIsJobPollError(t *testing.T) {
	f := newFixture(t)
	apiErr := &smithy.GenericAPIError{Code: "InternalServerException", Message: "boom"}
	f.client.EXPECT().GetQueryExecution(gomock.Any(), gomock.Any()).Return(nil, apiErr)

	_, err := f.adapter.Wait(context.Background(), &awskitathena.JobHandle{JobID: "q-9"}, awskitathena.WaitOptions{})
	require.Error(t, err)

	var pollErr *awskitathena.JobPollError
	require.ErrorAs(t, err, &pollErr)
	assert.Equal(t, "q-9", pollErr.JobID)
	assert.Equal(t, "InternalServerException", awsclient.ErrorCode(err))
}

func TestWait_CancelledDuringSleep(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	f.client.EXPECT().GetQueryExecution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *athena.GetQueryExecutionInput, ...func(*athena.Options)) (*athena.GetQueryExecutionOutput, error) {
			cancel()
			return execution(types.QueryExecutionStateRunning, 1, 1), nil
		})

	_, err := f.adapter.Wait(ctx, &awskitathena.JobHandle{JobID: "q-1"}, awskitathena.WaitOptions{})
	var pollErr *awskitathena.JobPollError
	require.ErrorAs(t, err, &pollErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStartQuery(t *testing.T) {
	f := newFixture(t)
	var got *athena.StartQueryExecutionInput
	f.client.EXPECT().StartQueryExecution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *athena.StartQueryExecutionInput, _ ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error) {
			got = in
			return &athena.StartQueryExecutionOutput{QueryExecutionId: aws.String("q-1")}, nil
		})

	handle, err := f.adapter.StartQuery(context.Background(), awskitathena.QueryRequest{
		Query:        "SELECT 1",
		Token:        "tok",
		WorkGroup:    "analytics",
		Database:     "events",
		ResultBucket: "results",
		ResultPrefix: "athena/",
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT 1", aws.ToString(got.QueryString))
	assert.Equal(t, "tok", aws.ToString(got.ClientRequestToken))
	assert.Equal(t, "analytics", aws.ToString(got.WorkGroup))
	assert.Equal(t, "events", aws.ToString(got.QueryExecutionContext.Database))
	assert.Nil(t, got.QueryExecutionContext.Catalog)
	assert.Equal(t, "s3://results/athena/tok/", aws.ToString(got.ResultConfiguration.OutputLocation))

	assert.Equal(t, "q-1", handle.JobID)
	assert.Equal(t, epoch, handle.SubmittedAt)
	assert.Equal(t, "results", handle.OutputLocation.Bucket)
	assert.Equal(t, "athena/tok/q-1.csv", handle.OutputLocation.Key)
	assert.Equal(t, "s3://results/athena/tok/q-1.csv", handle.OutputLocation.URI)
}

func TestStartQuery_WithoutBucket(t *testing.T) {
	f := newFixture(t)
	f.client.EXPECT().StartQueryExecution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *athena.StartQueryExecutionInput, _ ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error) {
			assert.Nil(t, in.ResultConfiguration)
			assert.Nil(t, in.QueryExecutionContext)
			return &athena.StartQueryExecutionOutput{QueryExecutionId: aws.String("q-2")}, nil
		})

	handle, err := f.adapter.StartQuery(context.Background(), awskitathena.QueryRequest{Query: "SELECT 2"})
	require.NoError(t, err)
	assert.Empty(t, handle.OutputLocation.URI)
}

func TestStartQuery_RequiresQuery(t *testing.T) {
	f := newFixture(t)
	_, err := f.adapter.StartQuery(context.Background(), awskitathena.QueryRequest{Query: "  "})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	f := newFixture(t)
	var token string
	f.client.EXPECT().StartQueryExecution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *athena.StartQueryExecutionInput, _ ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error) {
			token = aws.ToString(in.ClientRequestToken)
			return &athena.StartQueryExecutionOutput{QueryExecutionId: aws.String("q-1")}, nil
		})
	expectStatuses(f.client,
		execution(types.QueryExecutionStateRunning, 5, 5),
		execution(types.QueryExecutionStateSucceeded, 10, 10),
	)

	res, err := f.adapter.Run(context.Background(), awskitathena.RunRequest{
		QueryRequest: awskitathena.QueryRequest{Query: "SELECT 1", ResultBucket: "results"},
		Tag:          "daily",
		Wait:         awskitathena.WaitOptions{PollInterval: time.Second},
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^awskit-athena-daily-query-20240301120000-[0-9a-f]{8}$`), token)
	assert.Equal(t, token, res.Handle.Token)
	assert.True(t, res.Outcome.Success)
}

func TestNewToken(t *testing.T) {
	a := awskitathena.NewToken("", epoch)
	b := awskitathena.NewToken("", epoch)
	assert.Regexp(t, `^awskit-athena-adhoc-query-20240301120000-[0-9a-f]{8}$`, a)
	assert.NotEqual(t, a, b)
}

func TestResults(t *testing.T) {
	notFound := awsclient.HandleAWSError(&smithy.GenericAPIError{Code: "NotFound"}, "head")

	tests := []struct {
		name       string
		state      types.QueryExecutionState
		sampleSize int64
		setup      func(o *mock_athena.MockObjectStore)
		expectData string
		expectSize int64
		partial    bool
		wantErr    bool
	}{
		{
			name:       "partial sample",
			state:      types.QueryExecutionStateSucceeded,
			sampleSize: 4,
			setup: func(o *mock_athena.MockObjectStore) {
				o.EXPECT().Head(gomock.Any(), "results", "athena/q-1.csv").Return(objectHead(10), nil)
				o.EXPECT().Get(gomock.Any(), "results", "athena/q-1.csv", int64(4)).Return([]byte("a,b\n"), nil)
			},
			expectData: "a,b\n",
			expectSize: 10,
			partial:    true,
		},
		{
			name:       "whole object",
			state:      types.QueryExecutionStateSucceeded,
			sampleSize: -1,
			setup: func(o *mock_athena.MockObjectStore) {
				o.EXPECT().Head(gomock.Any(), "results", "athena/q-1.csv").Return(objectHead(8), nil)
				o.EXPECT().Get(gomock.Any(), "results", "athena/q-1.csv", int64(0)).Return([]byte("a,b\n1,2\n"), nil)
			},
			expectData: "a,b\n1,2\n",
			expectSize: 8,
		},
		{
			name:       "size only",
			state:      types.QueryExecutionStateSucceeded,
			sampleSize: 0,
			setup: func(o *mock_athena.MockObjectStore) {
				o.EXPECT().Head(gomock.Any(), "results", "athena/q-1.csv").Return(objectHead(8), nil)
			},
			expectSize: 8,
			partial:    true,
		},
		{
			name:       "missing output",
			state:      types.QueryExecutionStateFailed,
			sampleSize: 1024,
			setup: func(o *mock_athena.MockObjectStore) {
				o.EXPECT().Head(gomock.Any(), "results", "athena/q-1.csv").Return(nil, notFound)
			},
		},
		{
			name:       "head error",
			state:      types.QueryExecutionStateSucceeded,
			sampleSize: 1024,
			setup: func(o *mock_athena.MockObjectStore) {
				o.EXPECT().Head(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("denied"))
			},
			wantErr: true,
		},
		{
			name:       "still running",
			state:      types.QueryExecutionStateRunning,
			sampleSize: 1024,
			setup:      func(*mock_athena.MockObjectStore) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.client.EXPECT().GetQueryExecution(gomock.Any(), gomock.Any()).Return(execution(tt.state, 1, 1), nil)
			tt.setup(f.objects)

			res, err := f.adapter.Results(context.Background(), "q-1", tt.sampleSize)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, string(tt.state), res.State)
			assert.Equal(t, tt.expectData, string(res.Data))
			assert.Equal(t, tt.expectSize, res.DataSize)
			assert.Equal(t, tt.partial, res.Partial)
		})
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	f.client.EXPECT().StopQueryExecution(gomock.Any(), &athena.StopQueryExecutionInput{QueryExecutionId: aws.String("q-1")}).
		Return(&athena.StopQueryExecutionOutput{}, nil)
	assert.NoError(t, f.adapter.Cancel(context.Background(), "q-1"))

	f.client.EXPECT().StopQueryExecution(gomock.Any(), gomock.Any()).
		Return(nil, &smithy.GenericAPIError{Code: "InvalidRequestException"})
	assert.Error(t, f.adapter.Cancel(context.Background(), "q-2"))
}

func TestListQueries(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.client.EXPECT().ListQueryExecutions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *athena.ListQueryExecutionsInput, _ ...func(*athena.Options)) (*athena.ListQueryExecutionsOutput, error) {
				assert.Nil(t, in.NextToken)
				assert.Equal(t, int32(3), aws.ToInt32(in.MaxResults))
				assert.Equal(t, "analytics", aws.ToString(in.WorkGroup))
				return &athena.ListQueryExecutionsOutput{QueryExecutionIds: []string{"a", "b"}, NextToken: aws.String("n1")}, nil
			}),
		f.client.EXPECT().ListQueryExecutions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *athena.ListQueryExecutionsInput, _ ...func(*athena.Options)) (*athena.ListQueryExecutionsOutput, error) {
				assert.Equal(t, "n1", aws.ToString(in.NextToken))
				assert.Equal(t, int32(1), aws.ToInt32(in.MaxResults))
				return &athena.ListQueryExecutionsOutput{QueryExecutionIds: []string{"c"}, NextToken: aws.String("n2")}, nil
			}),
	)

	got, err := f.adapter.ListQueries(context.Background(), awskitathena.ListOptions{Limit: 3, WorkGroup: "analytics"})
	require.NoError(t, err)
	var ids []string
	for _, q := range got {
		ids = append(ids, q.QueryID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestListQueries_DefaultLimitAndExtended(t *testing.T) {
	f := newFixture(t)
	f.client.EXPECT().ListQueryExecutions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *athena.ListQueryExecutionsInput, _ ...func(*athena.Options)) (*athena.ListQueryExecutionsOutput, error) {
			assert.Equal(t, int32(awskitathena.ListPageCeiling), aws.ToInt32(in.MaxResults))
			return &athena.ListQueryExecutionsOutput{QueryExecutionIds: []string{"q-1"}}, nil
		})
	f.client.EXPECT().GetQueryExecution(gomock.Any(), &athena.GetQueryExecutionInput{QueryExecutionId: aws.String("q-1")}).
		Return(execution(types.QueryExecutionStateSucceeded, 2048, 1200), nil)

	got, err := f.adapter.ListQueries(context.Background(), awskitathena.ListOptions{Extended: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "SUCCEEDED", got[0].State)
	assert.Equal(t, "SELECT 1", got[0].Query)
	assert.Equal(t, "DML", got[0].QueryType)
	assert.Equal(t, int64(2048), got[0].BytesScanned)
	assert.InDelta(t, 1.2, got[0].Durations.Exec, 1e-9)
	assert.Equal(t, "results", got[0].OutputLocation.Bucket)
	assert.Equal(t, "athena/q-1.csv", got[0].OutputLocation.Key)
}

func TestLoadQuery(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/queries/daily.sql",
		[]byte("SELECT * FROM {{table}} WHERE dt = '{{date}}' AND src = '{{table}}'"), 0o644))

	query, err := awskitathena.LoadQuery(fs, "/queries/daily.sql", map[string]string{
		"table": "events",
		"date":  "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM events WHERE dt = '2024-03-01' AND src = 'events'", query)

	_, err = awskitathena.LoadQuery(fs, "/queries/missing.sql", nil)
	assert.Error(t, err)
}
