package athena

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	awskitathena "github.com/BerryBytes/awskit/internal/athena"
	"github.com/BerryBytes/awskit/internal/config"
	"github.com/BerryBytes/awskit/internal/prompt"
	"github.com/BerryBytes/awskit/internal/session"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//go:generate mockgen -source=athena.go -destination=../../internal/mocks/athenacmd/mock_athena.go -package=mock_athenacmd

type QueryService interface {
	Run(ctx context.Context, req awskitathena.RunRequest) (*awskitathena.RunResult, error)
	Status(ctx context.Context, queryID string) (*models.QueryStatus, error)
	WaitForID(ctx context.Context, queryID string, opts awskitathena.WaitOptions) (models.QueryOutcome, error)
	Results(ctx context.Context, queryID string, sampleSize int64) (*models.QueryResults, error)
	Cancel(ctx context.Context, queryID string) error
	ListQueries(ctx context.Context, opts awskitathena.ListOptions) ([]models.QueryStatus, error)
}

var _ QueryService = (*awskitathena.AwsAthenaAdapter)(nil)

type Dependencies struct {
	Session    *session.Session
	NewService func(cfg aws.Config, log *zap.SugaredLogger) QueryService
	Fs         afero.Fs
	// Prompter confirms cancellation when Interactive reports a terminal.
	Prompter    prompt.Prompter
	Interactive func() bool
}

func (d Dependencies) service(ctx context.Context) (QueryService, error) {
	cfg, err := d.Session.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	if d.NewService != nil {
		return d.NewService(cfg, d.Session.Log), nil
	}
	return awskitathena.NewAthenaClient(cfg, d.Session.Log), nil
}

func (d Dependencies) settings() config.AthenaConfig {
	if d.Session.File == nil {
		return config.AthenaConfig{}
	}
	return d.Session.File.Athena
}

func NewAthenaCommands(deps Dependencies) *cobra.Command {
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}

	athenaCmd := &cobra.Command{
		Use:   "athena",
		Short: "Run and inspect Athena queries",
	}

	athenaCmd.AddCommand(runCmd(deps))
	athenaCmd.AddCommand(statusCmd(deps))
	athenaCmd.AddCommand(waitCmd(deps))
	athenaCmd.AddCommand(resultsCmd(deps))
	athenaCmd.AddCommand(cancelCmd(deps))
	athenaCmd.AddCommand(listCmd(deps))

	return athenaCmd
}

type waitFlags struct {
	pollInterval time.Duration
	timeout      time.Duration
}

func (w *waitFlags) register(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&w.pollInterval, "poll-interval", 0, "Time between status checks (default 5s)")
	cmd.Flags().DurationVar(&w.timeout, "wait-timeout", 0, "Give up waiting after this long (default 10m)")
}

func (w *waitFlags) options(cmd *cobra.Command, settings config.AthenaConfig) awskitathena.WaitOptions {
	opts := awskitathena.WaitOptions{
		PollInterval: w.pollInterval,
		Timeout:      w.timeout,
		Progress:     &awskitathena.ConsoleProgress{Out: cmd.ErrOrStderr()},
	}
	if opts.PollInterval == 0 && settings.PollIntervalSeconds > 0 {
		opts.PollInterval = time.Duration(settings.PollIntervalSeconds) * time.Second
	}
	if opts.Timeout == 0 && settings.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(settings.TimeoutSeconds) * time.Second
	}
	return opts
}

func runCmd(deps Dependencies) *cobra.Command {
	var (
		query, file, tag                          string
		vars                                      map[string]string
		workGroup, catalog, database, bucket, pfx string
		wait                                      waitFlags
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start a query and wait for it to finish",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if (query == "") == (file == "") {
				return fmt.Errorf("exactly one of --query or --file is required")
			}
			if file != "" {
				loaded, err := awskitathena.LoadQuery(deps.Fs, file, vars)
				if err != nil {
					return err
				}
				query = loaded
			}

			settings := deps.settings()
			req := awskitathena.RunRequest{
				QueryRequest: awskitathena.QueryRequest{
					Query:        query,
					WorkGroup:    orDefault(workGroup, settings.WorkGroup),
					Catalog:      orDefault(catalog, settings.Catalog),
					Database:     orDefault(database, settings.Database),
					ResultBucket: orDefault(bucket, settings.ResultBucket),
					ResultPrefix: orDefault(pfx, settings.ResultPrefix),
				},
				Tag:  tag,
				Wait: wait.options(cmd, settings),
			}

			svc, err := deps.service(ctx)
			if err != nil {
				return err
			}
			res, err := svc.Run(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Query ID : %s\n", res.Handle.JobID)
			if res.Handle.OutputLocation.URI != "" {
				fmt.Fprintf(out, "Output   : %s\n", res.Handle.OutputLocation.URI)
			}
			printOutcome(out, res.Outcome)
			return outcomeError(res.Outcome)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Query text")
	cmd.Flags().StringVarP(&file, "file", "f", "", "File holding the query")
	cmd.Flags().StringToStringVar(&vars, "var", nil, "Substitute {{name}} in the query file (name=value)")
	cmd.Flags().StringVar(&tag, "tag", "", "Tag included in the request token")
	cmd.Flags().StringVar(&workGroup, "workgroup", "", "Athena workgroup")
	cmd.Flags().StringVar(&catalog, "catalog", "", "Data catalog")
	cmd.Flags().StringVar(&database, "database", "", "Database")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Result bucket")
	cmd.Flags().StringVar(&pfx, "prefix", "", "Result key prefix")
	wait.register(cmd)

	return cmd
}

func statusCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "status <query-id>",
		Short: "Show the state of a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			status, err := svc.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), *status)
			return nil
		},
	}
}

func waitCmd(deps Dependencies) *cobra.Command {
	var wait waitFlags
	cmd := &cobra.Command{
		Use:   "wait <query-id>",
		Short: "Wait for a running query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			outcome, err := svc.WaitForID(cmd.Context(), args[0], wait.options(cmd, deps.settings()))
			if err != nil {
				return err
			}
			printOutcome(cmd.OutOrStdout(), outcome)
			return outcomeError(outcome)
		},
	}
	wait.register(cmd)
	return cmd
}

func resultsCmd(deps Dependencies) *cobra.Command {
	var sample int64
	cmd := &cobra.Command{
		Use:   "results <query-id>",
		Short: "Print the output of a finished query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			res, err := svc.Results(cmd.Context(), args[0], sample)
			if err != nil {
				return err
			}
			if res.URI == "" && res.DataSize == 0 && res.Data == nil {
				return fmt.Errorf("query %s has no results yet (state %s)", args[0], res.State)
			}

			if _, err := cmd.OutOrStdout().Write(res.Data); err != nil {
				return fmt.Errorf("failed to write results: %w", err)
			}
			if res.Partial {
				deps.Session.Log.Warnf("Showing %s of %s from %s", humanize.Bytes(uint64(len(res.Data))), humanize.Bytes(uint64(res.DataSize)), res.URI)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&sample, "sample", awskitathena.DefaultSampleSize, "Bytes to read; -1 reads everything")
	return cmd
}

func cancelCmd(deps Dependencies) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "cancel <query-id>",
		Short: "Stop a running query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && deps.Prompter != nil && deps.Interactive != nil && deps.Interactive() {
				if !deps.Prompter.PromptForConfirmation(fmt.Sprintf("Cancel query %s", args[0])) {
					return nil
				}
			}
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Cancel(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cancelled query %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func listCmd(deps Dependencies) *cobra.Command {
	var (
		limit     int
		extended  bool
		workGroup string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			queries, err := svc.ListQueries(cmd.Context(), awskitathena.ListOptions{
				Limit:     limit,
				WorkGroup: orDefault(workGroup, deps.settings().WorkGroup),
				Extended:  extended,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, q := range queries {
				if !extended {
					fmt.Fprintln(out, q.QueryID)
					continue
				}
				fmt.Fprintf(out, "%s  %-9s  %10s  %s\n", q.QueryID, q.State, humanize.Bytes(uint64(q.BytesScanned)), oneLine(q.Query, 60))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", awskitathena.DefaultListLimit, "Maximum number of queries; -1 for all")
	cmd.Flags().BoolVarP(&extended, "extended", "x", false, "Fetch the status of each query")
	cmd.Flags().StringVar(&workGroup, "workgroup", "", "Athena workgroup")
	return cmd
}

func printStatus(out io.Writer, s models.QueryStatus) {
	fmt.Fprintf(out, "Query ID  : %s\n", s.QueryID)
	fmt.Fprintf(out, "State     : %s\n", awskitathena.StateColor(s.State))
	if s.StateReason != "" {
		fmt.Fprintf(out, "Reason    : %s\n", s.StateReason)
	}
	if s.WorkGroup != "" {
		fmt.Fprintf(out, "Workgroup : %s\n", s.WorkGroup)
	}
	fmt.Fprintf(out, "Scanned   : %s ($%.2f)\n", humanize.Bytes(uint64(s.BytesScanned)), awskitathena.Cost(s.BytesScanned))
	fmt.Fprintf(out, "Durations : queue %.3fs, plan %.3fs, exec %.3fs, publish %.3fs, total %.3fs\n",
		s.Durations.Queue, s.Durations.Plan, s.Durations.Exec, s.Durations.Publish, s.Durations.Total)
	if s.OutputLocation.URI != "" {
		fmt.Fprintf(out, "Output    : %s\n", s.OutputLocation.URI)
	}
	if s.Query != "" {
		fmt.Fprintf(out, "Query     : %s\n", oneLine(s.Query, 0))
	}
}

func printOutcome(out io.Writer, o models.QueryOutcome) {
	switch {
	case o.TimedOut:
		fmt.Fprintf(out, "Timed out waiting on query %s (last state %s)\n", o.QueryID, o.State)
	default:
		fmt.Fprintf(out, "Query %s %s after %.3fs, scanned %s\n",
			o.QueryID, awskitathena.StateColor(o.State), o.Durations.Total, humanize.Bytes(uint64(o.BytesScanned)))
	}
}

func outcomeError(o models.QueryOutcome) error {
	switch {
	case o.Success:
		return nil
	case o.TimedOut:
		return fmt.Errorf("query %s did not finish in time", o.QueryID)
	default:
		return fmt.Errorf("query %s finished with state %s", o.QueryID, o.State)
	}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func oneLine(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width > 0 && len(s) > width {
		return s[:width-3] + "..."
	}
	return s
}
