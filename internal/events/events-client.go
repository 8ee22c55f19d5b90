// Package events edits EventBridge rules in place.
package events

import (
	"context"
	"errors"

	"github.com/BerryBytes/awskit/internal/awsclient"
	"github.com/BerryBytes/awskit/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

type AwsEventsAdapter struct {
	Client EventBridgeAPI
	Cfg    aws.Config
	Log    *zap.SugaredLogger
}

func NewEventsClient(cfg aws.Config, log *zap.SugaredLogger) *AwsEventsAdapter {
	return &AwsEventsAdapter{
		Client: eventbridge.NewFromConfig(cfg),
		Cfg:    cfg,
		Log:    logger.OrNop(log),
	}
}

// RuleUpdate holds the fields to change. Nil fields keep their current value.
type RuleUpdate struct {
	Name               string
	EventBusName       string
	Description        *string
	EventPattern       *string
	ScheduleExpression *string
	RoleArn            *string
	// State is ENABLED or DISABLED. Empty keeps the current state.
	State string
}

// UpdateRule reads the existing rule, overlays the set fields of update and
// writes the result back. It returns the rule ARN.
func (c *AwsEventsAdapter) UpdateRule(ctx context.Context, update RuleUpdate) (string, error) {
	if update.Name == "" {
		return "", errors.New("a rule name is required")
	}

	describe := &eventbridge.DescribeRuleInput{Name: aws.String(update.Name)}
	if update.EventBusName != "" {
		describe.EventBusName = aws.String(update.EventBusName)
	}
	current, err := c.Client.DescribeRule(ctx, describe)
	if err != nil {
		return "", awsclient.HandleAWSError(err, "describing rule "+update.Name)
	}

	put := &eventbridge.PutRuleInput{
		Name:               aws.String(update.Name),
		EventBusName:       current.EventBusName,
		Description:        current.Description,
		EventPattern:       current.EventPattern,
		ScheduleExpression: current.ScheduleExpression,
		RoleArn:            current.RoleArn,
		State:              current.State,
	}
	if update.EventBusName != "" {
		put.EventBusName = aws.String(update.EventBusName)
	}
	if update.Description != nil {
		put.Description = update.Description
	}
	if update.EventPattern != nil {
		put.EventPattern = update.EventPattern
	}
	if update.ScheduleExpression != nil {
		put.ScheduleExpression = update.ScheduleExpression
	}
	if update.RoleArn != nil {
		put.RoleArn = update.RoleArn
	}
	if update.State != "" {
		put.State = types.RuleState(update.State)
	}

	out, err := c.Client.PutRule(ctx, put)
	if err != nil {
		return "", awsclient.HandleAWSError(err, "updating rule "+update.Name)
	}
	logger.OrNop(c.Log).Debugf("Updated rule %s", update.Name)
	return aws.ToString(out.RuleArn), nil
}
