package athena

import (
	"context"

	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/service/athena"
)

//go:generate mockgen -source=interface.go -destination=../mocks/athena/mock_interface.go -package=mock_athena

type AthenaAPI interface {
	StartQueryExecution(ctx context.Context, params *athena.StartQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error)
	GetQueryExecution(ctx context.Context, params *athena.GetQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.GetQueryExecutionOutput, error)
	StopQueryExecution(ctx context.Context, params *athena.StopQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.StopQueryExecutionOutput, error)
	ListQueryExecutions(ctx context.Context, params *athena.ListQueryExecutionsInput, optFns ...func(*athena.Options)) (*athena.ListQueryExecutionsOutput, error)
}

// ObjectStore reads query output objects.
type ObjectStore interface {
	Head(ctx context.Context, bucket, key string) (*models.ObjectHead, error)
	Get(ctx context.Context, bucket, key string, maxBytes int64) ([]byte, error)
}

// ProgressSink receives a Progress each time a running query reports new
// statistics.
type ProgressSink interface {
	Report(p Progress)
}

var _ AthenaAPI = (*athena.Client)(nil)
