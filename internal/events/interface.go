package events

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
)

//go:generate mockgen -source=interface.go -destination=../mocks/events/mock_interface.go -package=mock_events

type EventBridgeAPI interface {
	DescribeRule(ctx context.Context, params *eventbridge.DescribeRuleInput, optFns ...func(*eventbridge.Options)) (*eventbridge.DescribeRuleOutput, error)
	PutRule(ctx context.Context, params *eventbridge.PutRuleInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutRuleOutput, error)
}

var _ EventBridgeAPI = (*eventbridge.Client)(nil)
