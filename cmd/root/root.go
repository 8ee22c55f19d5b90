package root

import (
	"context"
	"fmt"
	"os"

	cmdathena "github.com/BerryBytes/awskit/cmd/athena"
	cmdconfig "github.com/BerryBytes/awskit/cmd/config"
	cmdcreds "github.com/BerryBytes/awskit/cmd/creds"
	cmdddb "github.com/BerryBytes/awskit/cmd/dynamodb"
	cmdec2 "github.com/BerryBytes/awskit/cmd/ec2"
	cmdevents "github.com/BerryBytes/awskit/cmd/events"
	cmds3 "github.com/BerryBytes/awskit/cmd/s3"
	cmdsfn "github.com/BerryBytes/awskit/cmd/sfn"
	"github.com/BerryBytes/awskit/internal/config"
	"github.com/BerryBytes/awskit/internal/prompt"
	"github.com/BerryBytes/awskit/internal/session"
	"github.com/spf13/cobra"
)

type Dependencies struct {
	Session *session.Session
	// ConfigDir holds config.yaml. Empty means ~/.config/awskit.
	ConfigDir   string
	Prompter    prompt.Prompter
	Interactive func() bool

	Creds    cmdcreds.Dependencies
	Athena   cmdathena.Dependencies
	S3       cmds3.Dependencies
	DynamoDB cmdddb.Dependencies
	SFN      cmdsfn.Dependencies
	Events   cmdevents.Dependencies
	EC2      cmdec2.Dependencies
}

// DefaultDependencies wires the real session, prompter and terminal check.
func DefaultDependencies() Dependencies {
	return Dependencies{
		Session:     session.New(),
		Prompter:    prompt.NewPrompt(),
		Interactive: func() bool { return prompt.IsInteractive(os.Stdin) },
	}
}

func NewRootCmd(deps Dependencies) *cobra.Command {
	var (
		explicit  config.Options
		configDir string
		cancel    context.CancelFunc
	)

	rootCmd := &cobra.Command{
		Use:   "awskit",
		Short: "AWS SSO credentials, Athena queries and S3 listings",
		Long: `awskit resolves AWS SSO role credentials through a cached device
authorization flow and uses them to run Athena queries, browse S3 and drive
DynamoDB, Step Functions, EventBridge and EC2.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir := configDir
			if dir == "" {
				dir = deps.ConfigDir
			}
			if err := deps.Session.Setup(explicit, dir, cmd.ErrOrStderr()); err != nil {
				return err
			}

			var ctx context.Context
			ctx, cancel = session.HandleSignals(cmd.Context(), deps.Session.Log)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cancel != nil {
				cancel()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&explicit.Profile, "profile", "p", "", "AWS SSO profile (env AWS_PROFILE)")
	flags.StringVar(&explicit.Region, "region", "", "AWS region for service calls (env AWS_REGION)")
	flags.BoolVarP(&explicit.Verbose, "verbose", "v", false, "Show debug output (env AWSKIT_VERBOSE)")
	flags.BoolVar(&explicit.Quiet, "quiet", false, "Only show warnings and errors (env AWSKIT_QUIET)")
	flags.DurationVar(&explicit.AuthTimeout, "timeout", 0, fmt.Sprintf("Device authorization timeout (env AWSKIT_AUTH_TIMEOUT, default %s)", config.DefaultAuthTimeout))
	flags.BoolVar(&explicit.NoBrowser, "no-browser", false, "Print the verification URL instead of opening a browser (env AWSKIT_NO_BROWSER)")
	flags.StringVar(&explicit.CacheDir, "cache-dir", "", "Credential cache directory")
	flags.StringVar(&configDir, "config-dir", "", "Directory holding config.yaml")

	creds := deps.Creds
	creds.Session = deps.Session
	if creds.Prompter == nil {
		creds.Prompter = deps.Prompter
	}
	if creds.Interactive == nil {
		creds.Interactive = deps.Interactive
	}
	rootCmd.AddCommand(cmdcreds.NewCredsCommand(creds))

	athena := deps.Athena
	athena.Session = deps.Session
	if athena.Prompter == nil {
		athena.Prompter = deps.Prompter
	}
	if athena.Interactive == nil {
		athena.Interactive = deps.Interactive
	}
	rootCmd.AddCommand(cmdathena.NewAthenaCommands(athena))

	s3 := deps.S3
	s3.Session = deps.Session
	rootCmd.AddCommand(cmds3.NewS3Commands(s3))

	ddb := deps.DynamoDB
	ddb.Session = deps.Session
	rootCmd.AddCommand(cmdddb.NewDynamoDBCommands(ddb))

	sfn := deps.SFN
	sfn.Session = deps.Session
	rootCmd.AddCommand(cmdsfn.NewSFNCommands(sfn))

	events := deps.Events
	events.Session = deps.Session
	rootCmd.AddCommand(cmdevents.NewEventsCommands(events))

	ec2 := deps.EC2
	ec2.Session = deps.Session
	rootCmd.AddCommand(cmdec2.NewEC2Commands(ec2))

	rootCmd.AddCommand(cmdconfig.NewConfigCommands(cmdconfig.Dependencies{Session: deps.Session}))

	return rootCmd
}

// Execute runs awskit with the real dependencies.
func Execute() error {
	return NewRootCmd(DefaultDependencies()).ExecuteContext(context.Background())
}
