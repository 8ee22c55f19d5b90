package sfn

import (
	"context"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/BerryBytes/awskit/internal/session"
	awskitsfn "github.com/BerryBytes/awskit/internal/sfn"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//go:generate mockgen -source=sfn.go -destination=../../internal/mocks/sfncmd/mock_sfn.go -package=mock_sfncmd

type ExecutionService interface {
	Execute(ctx context.Context, stateMachineArn, name, input string) (*models.Execution, error)
	Stop(ctx context.Context, executionArn, cause, errorCode string) error
	Describe(ctx context.Context, executionArn string) (*models.Execution, error)
	Executions(ctx context.Context, filter awskitsfn.ExecutionFilter) iter.Seq2[models.Execution, error]
}

var _ ExecutionService = (*awskitsfn.AwsSFNAdapter)(nil)

type Dependencies struct {
	Session    *session.Session
	NewService func(cfg aws.Config, log *zap.SugaredLogger) ExecutionService
	Fs         afero.Fs
}

func (d Dependencies) service(ctx context.Context) (ExecutionService, error) {
	cfg, err := d.Session.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	if d.NewService != nil {
		return d.NewService(cfg, d.Session.Log), nil
	}
	return awskitsfn.NewSFNClient(cfg, d.Session.Log), nil
}

func (d Dependencies) fs() afero.Fs {
	if d.Fs != nil {
		return d.Fs
	}
	return afero.NewOsFs()
}

func NewSFNCommands(deps Dependencies) *cobra.Command {
	sfnCmd := &cobra.Command{
		Use:   "sfn",
		Short: "Start, stop and inspect Step Functions executions",
	}
	sfnCmd.AddCommand(startCmd(deps))
	sfnCmd.AddCommand(stopCmd(deps))
	sfnCmd.AddCommand(describeCmd(deps))
	sfnCmd.AddCommand(lsCmd(deps))
	return sfnCmd
}

func startCmd(deps Dependencies) *cobra.Command {
	var name, input, inputFile string
	cmd := &cobra.Command{
		Use:   "start <state-machine-arn>",
		Short: "Start an execution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if input != "" && inputFile != "" {
				return fmt.Errorf("--input and --input-file are mutually exclusive")
			}
			if inputFile != "" {
				var (
					data []byte
					err  error
				)
				if inputFile == "-" {
					data, err = io.ReadAll(cmd.InOrStdin())
				} else {
					data, err = afero.ReadFile(deps.fs(), inputFile)
				}
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				input = string(data)
			}

			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			exec, err := svc.Execute(cmd.Context(), args[0], name, input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), exec.Arn)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Execution name (default generated)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Execution input as JSON")
	cmd.Flags().StringVarP(&inputFile, "input-file", "f", "", "File holding the JSON input, - for stdin")
	return cmd
}

func stopCmd(deps Dependencies) *cobra.Command {
	var cause, errorCode string
	cmd := &cobra.Command{
		Use:   "stop <execution-arn>",
		Short: "Stop a running execution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Stop(cmd.Context(), args[0], cause, errorCode); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stopped %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&cause, "cause", "", "Reason recorded on the execution")
	cmd.Flags().StringVar(&errorCode, "error", "", "Error code recorded on the execution")
	return cmd
}

func describeCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <execution-arn>",
		Short: "Show the status, input and output of an execution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			exec, err := svc.Describe(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Execution : %s\n", exec.Arn)
			fmt.Fprintf(out, "Status    : %s\n", exec.Status)
			fmt.Fprintf(out, "Started   : %s\n", formatTime(exec.StartDate))
			if exec.StopDate != nil {
				fmt.Fprintf(out, "Stopped   : %s\n", formatTime(exec.StopDate))
			}
			if exec.Input != "" {
				fmt.Fprintf(out, "Input     : %s\n", exec.Input)
			}
			if exec.Output != "" {
				fmt.Fprintf(out, "Output    : %s\n", exec.Output)
			}
			if exec.Error != "" {
				fmt.Fprintf(out, "Error     : %s: %s\n", exec.Error, exec.Cause)
			}
			return nil
		},
	}
}

func lsCmd(deps Dependencies) *cobra.Command {
	var (
		status string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "ls <state-machine-arn>",
		Short: "List executions, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			filter := awskitsfn.ExecutionFilter{StateMachineArn: args[0], Status: status, Limit: limit}
			for exec, err := range svc.Executions(cmd.Context(), filter) {
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-9s  %s\n", formatTime(exec.StartDate), exec.Status, exec.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "", "Only executions in this status, e.g. RUNNING or FAILED")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of executions (0 for all)")
	return cmd
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
