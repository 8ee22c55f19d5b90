package events

import (
	"context"
	"fmt"

	awskitevents "github.com/BerryBytes/awskit/internal/events"
	"github.com/BerryBytes/awskit/internal/session"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//go:generate mockgen -source=events.go -destination=../../internal/mocks/eventscmd/mock_events.go -package=mock_eventscmd

type RuleService interface {
	UpdateRule(ctx context.Context, update awskitevents.RuleUpdate) (string, error)
}

var _ RuleService = (*awskitevents.AwsEventsAdapter)(nil)

type Dependencies struct {
	Session    *session.Session
	NewService func(cfg aws.Config, log *zap.SugaredLogger) RuleService
}

func (d Dependencies) service(ctx context.Context) (RuleService, error) {
	cfg, err := d.Session.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	if d.NewService != nil {
		return d.NewService(cfg, d.Session.Log), nil
	}
	return awskitevents.NewEventsClient(cfg, d.Session.Log), nil
}

func NewEventsCommands(deps Dependencies) *cobra.Command {
	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Manage EventBridge rules",
	}
	eventsCmd.AddCommand(updateRuleCmd(deps))
	return eventsCmd
}

func updateRuleCmd(deps Dependencies) *cobra.Command {
	var (
		update             awskitevents.RuleUpdate
		description        string
		eventPattern       string
		scheduleExpression string
		roleArn            string
		enable, disable    bool
	)
	cmd := &cobra.Command{
		Use:   "update-rule <name>",
		Short: "Change some fields of a rule and keep the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update.Name = args[0]
			flags := cmd.Flags()
			if flags.Changed("description") {
				update.Description = aws.String(description)
			}
			if flags.Changed("event-pattern") {
				update.EventPattern = aws.String(eventPattern)
			}
			if flags.Changed("schedule") {
				update.ScheduleExpression = aws.String(scheduleExpression)
			}
			if flags.Changed("role-arn") {
				update.RoleArn = aws.String(roleArn)
			}
			switch {
			case enable && disable:
				return fmt.Errorf("--enable and --disable are mutually exclusive")
			case enable:
				update.State = "ENABLED"
			case disable:
				update.State = "DISABLED"
			}

			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			arn, err := svc.UpdateRule(cmd.Context(), update)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), arn)
			return nil
		},
	}
	cmd.Flags().StringVarP(&update.EventBusName, "event-bus", "b", "", "Event bus of the rule (default bus when empty)")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&eventPattern, "event-pattern", "", "New event pattern as JSON")
	cmd.Flags().StringVar(&scheduleExpression, "schedule", "", "New schedule expression, e.g. rate(5 minutes)")
	cmd.Flags().StringVar(&roleArn, "role-arn", "", "New IAM role ARN")
	cmd.Flags().BoolVar(&enable, "enable", false, "Enable the rule")
	cmd.Flags().BoolVar(&disable, "disable", false, "Disable the rule")
	return cmd
}
