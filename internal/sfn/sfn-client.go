package sfn

import (
	"context"
	"iter"

	"github.com/BerryBytes/awskit/internal/awsclient"
	"github.com/BerryBytes/awskit/internal/logger"
	"github.com/BerryBytes/awskit/internal/pager"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/aws/aws-sdk-go-v2/service/sfn/types"
	"go.uber.org/zap"
)

// PageCeiling is the MaxResults cap of ListExecutions.
const PageCeiling = 1000

type AwsSFNAdapter struct {
	Client SFNAPI
	Cfg    aws.Config
	Log    *zap.SugaredLogger
}

func NewSFNClient(cfg aws.Config, log *zap.SugaredLogger) *AwsSFNAdapter {
	return &AwsSFNAdapter{
		Client: sfn.NewFromConfig(cfg),
		Cfg:    cfg,
		Log:    logger.OrNop(log),
	}
}

// Execute starts a run of the state machine. An empty name lets the service
// pick one.
func (c *AwsSFNAdapter) Execute(ctx context.Context, stateMachineArn, name, input string) (*models.Execution, error) {
	params := &sfn.StartExecutionInput{StateMachineArn: aws.String(stateMachineArn)}
	if name != "" {
		params.Name = aws.String(name)
	}
	if input != "" {
		params.Input = aws.String(input)
	}

	out, err := c.Client.StartExecution(ctx, params)
	if err != nil {
		return nil, awsclient.HandleAWSError(err, "starting execution of "+stateMachineArn)
	}
	logger.OrNop(c.Log).Debugf("Started execution %s", aws.ToString(out.ExecutionArn))
	return &models.Execution{
		Arn:             aws.ToString(out.ExecutionArn),
		StateMachineArn: stateMachineArn,
		Name:            name,
		Status:          string(types.ExecutionStatusRunning),
		StartDate:       out.StartDate,
		Input:           input,
	}, nil
}

// Stop aborts a running execution. cause and errorCode are optional.
func (c *AwsSFNAdapter) Stop(ctx context.Context, executionArn, cause, errorCode string) error {
	params := &sfn.StopExecutionInput{ExecutionArn: aws.String(executionArn)}
	if cause != "" {
		params.Cause = aws.String(cause)
	}
	if errorCode != "" {
		params.Error = aws.String(errorCode)
	}
	if _, err := c.Client.StopExecution(ctx, params); err != nil {
		return awsclient.HandleAWSError(err, "stopping execution "+executionArn)
	}
	return nil
}

func (c *AwsSFNAdapter) Describe(ctx context.Context, executionArn string) (*models.Execution, error) {
	out, err := c.Client.DescribeExecution(ctx, &sfn.DescribeExecutionInput{ExecutionArn: aws.String(executionArn)})
	if err != nil {
		return nil, awsclient.HandleAWSError(err, "describing execution "+executionArn)
	}
	return &models.Execution{
		Arn:             aws.ToString(out.ExecutionArn),
		StateMachineArn: aws.ToString(out.StateMachineArn),
		Name:            aws.ToString(out.Name),
		Status:          string(out.Status),
		StartDate:       out.StartDate,
		StopDate:        out.StopDate,
		Input:           aws.ToString(out.Input),
		Output:          aws.ToString(out.Output),
		Error:           aws.ToString(out.Error),
		Cause:           aws.ToString(out.Cause),
	}, nil
}

type ExecutionFilter struct {
	StateMachineArn string
	// Status is RUNNING, SUCCEEDED, FAILED, TIMED_OUT, ABORTED or empty for all.
	Status string
	Limit  int
}

// Executions lists runs of a state machine, newest first.
func (c *AwsSFNAdapter) Executions(ctx context.Context, filter ExecutionFilter) iter.Seq2[models.Execution, error] {
	fetch := func(ctx context.Context, req pager.Request) (pager.Page[models.Execution], error) {
		params := &sfn.ListExecutionsInput{StateMachineArn: aws.String(filter.StateMachineArn)}
		if filter.Status != "" {
			params.StatusFilter = types.ExecutionStatus(filter.Status)
		}
		if req.Cursor != "" {
			params.NextToken = aws.String(req.Cursor)
		}
		if req.MaxItems > 0 {
			params.MaxResults = req.MaxItems
		}

		out, err := c.Client.ListExecutions(ctx, params)
		if err != nil {
			return pager.Page[models.Execution]{}, awsclient.HandleAWSError(err, "listing executions of "+filter.StateMachineArn)
		}

		page := pager.Page[models.Execution]{
			NextCursor: aws.ToString(out.NextToken),
			More:       out.NextToken != nil,
		}
		for _, e := range out.Executions {
			page.Items = append(page.Items, models.Execution{
				Arn:             aws.ToString(e.ExecutionArn),
				StateMachineArn: aws.ToString(e.StateMachineArn),
				Name:            aws.ToString(e.Name),
				Status:          string(e.Status),
				StartDate:       e.StartDate,
				StopDate:        e.StopDate,
			})
		}
		return page, nil
	}
	return pager.Scan(ctx, fetch, pager.Options{Limit: filter.Limit, PageCeiling: PageCeiling})
}
