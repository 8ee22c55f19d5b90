package sfn_test

import (
	"context"
	"testing"
	"time"

	mock_sfn "github.com/BerryBytes/awskit/internal/mocks/sfn"
	"github.com/BerryBytes/awskit/internal/pager"
	awskitsfn "github.com/BerryBytes/awskit/internal/sfn"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/aws/aws-sdk-go-v2/service/sfn/types"
	"github.com/aws/smithy-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const machine = "arn:aws:states:us-east-1:123456789012:stateMachine:nightly"

func newAdapter(t *testing.T) (*awskitsfn.AwsSFNAdapter, *mock_sfn.MockSFNAPI) {
	ctrl := gomock.NewController(t)
	client := mock_sfn.NewMockSFNAPI(ctrl)
	return &awskitsfn.AwsSFNAdapter{Client: client}, client
}

func TestExecute(t *testing.T) {
	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		runAs  string
		input  string
		expect *sfn.StartExecutionInput
	}{
		{
			name:   "named with input",
			runAs:  "run-1",
			input:  `{"day":"2024-03-01"}`,
			expect: &sfn.StartExecutionInput{StateMachineArn: aws.String(machine), Name: aws.String("run-1"), Input: aws.String(`{"day":"2024-03-01"}`)},
		},
		{
			name:   "service named",
			expect: &sfn.StartExecutionInput{StateMachineArn: aws.String(machine)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, client := newAdapter(t)
			client.EXPECT().StartExecution(gomock.Any(), tt.expect).Return(&sfn.StartExecutionOutput{
				ExecutionArn: aws.String(machine + ":x"),
				StartDate:    aws.Time(started),
			}, nil)

			exec, err := adapter.Execute(context.Background(), machine, tt.runAs, tt.input)
			require.NoError(t, err)
			assert.Equal(t, machine+":x", exec.Arn)
			assert.Equal(t, "RUNNING", exec.Status)
			assert.Equal(t, started, *exec.StartDate)
		})
	}
}

func TestStop(t *testing.T) {
	adapter, client := newAdapter(t)
	client.EXPECT().StopExecution(gomock.Any(), &sfn.StopExecutionInput{
		ExecutionArn: aws.String("exec-1"),
		Cause:        aws.String("superseded"),
	}).Return(&sfn.StopExecutionOutput{}, nil)

	require.NoError(t, adapter.Stop(context.Background(), "exec-1", "superseded", ""))
}

func TestDescribe(t *testing.T) {
	adapter, client := newAdapter(t)
	client.EXPECT().DescribeExecution(gomock.Any(), gomock.Any()).Return(&sfn.DescribeExecutionOutput{
		ExecutionArn:    aws.String("exec-1"),
		StateMachineArn: aws.String(machine),
		Name:            aws.String("run-1"),
		Status:          types.ExecutionStatusFailed,
		Error:           aws.String("States.Timeout"),
		Cause:           aws.String("took too long"),
	}, nil)

	exec, err := adapter.Describe(context.Background(), "exec-1")
	require.NoError(t, err)
	assert.Equal(t, "FAILED", exec.Status)
	assert.Equal(t, "States.Timeout", exec.Error)
	assert.Equal(t, "took too long", exec.Cause)
	assert.Empty(t, exec.Output)
}

func TestDescribe_NotFound(t *testing.T) {
	adapter, client := newAdapter(t)
	client.EXPECT().DescribeExecution(gomock.Any(), gomock.Any()).
		Return(nil, &smithy.GenericAPIError{Code: "ExecutionDoesNotExist"})

	_, err := adapter.Describe(context.Background(), "exec-9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AWS resource not found")
}

func TestExecutions(t *testing.T) {
	adapter, client := newAdapter(t)
	item := func(name string) types.ExecutionListItem {
		return types.ExecutionListItem{
			ExecutionArn: aws.String(machine + ":" + name),
			Name:         aws.String(name),
			Status:       types.ExecutionStatusSucceeded,
		}
	}

	gomock.InOrder(
		client.EXPECT().ListExecutions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *sfn.ListExecutionsInput, _ ...func(*sfn.Options)) (*sfn.ListExecutionsOutput, error) {
				assert.Equal(t, types.ExecutionStatusSucceeded, in.StatusFilter)
				assert.Nil(t, in.NextToken)
				return &sfn.ListExecutionsOutput{
					Executions: []types.ExecutionListItem{item("a"), item("b")},
					NextToken:  aws.String("t1"),
				}, nil
			}),
		client.EXPECT().ListExecutions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *sfn.ListExecutionsInput, _ ...func(*sfn.Options)) (*sfn.ListExecutionsOutput, error) {
				assert.Equal(t, "t1", aws.ToString(in.NextToken))
				return &sfn.ListExecutionsOutput{Executions: []types.ExecutionListItem{item("c")}}, nil
			}),
	)

	execs, err := pager.Collect(adapter.Executions(context.Background(), awskitsfn.ExecutionFilter{
		StateMachineArn: machine,
		Status:          "SUCCEEDED",
	}))
	require.NoError(t, err)
	require.Len(t, execs, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{execs[0].Name, execs[1].Name, execs[2].Name})
}
