package creds

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/BerryBytes/awskit/internal/awsclient"
	"github.com/BerryBytes/awskit/internal/prompt"
	"github.com/BerryBytes/awskit/internal/session"
	"github.com/BerryBytes/awskit/internal/sso"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// fallbackRegion is used for the identity check when neither the flags nor
// the profile name a region.
const fallbackRegion = "us-east-1"

type Dependencies struct {
	Session     *session.Session
	Prompter    prompt.Prompter
	Interactive func() bool
	NewSTS      func(cfg aws.Config) awsclient.STSAPI
	Now         func() time.Time
}

func NewCredsCommand(deps Dependencies) *cobra.Command {
	var export, refresh, verify bool

	cmd := &cobra.Command{
		Use:   "creds",
		Short: "Resolve AWS SSO role credentials",
		Long: `Resolve temporary role credentials for an SSO profile, reusing cached
client registrations, access tokens and credentials where they are still valid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := deps.Session

			if s.Options.DefaultedProfile && deps.Interactive != nil && deps.Interactive() {
				if err := selectProfile(cmd, deps); err != nil {
					if errors.Is(err, prompt.ErrInterrupted) {
						return nil
					}
					return err
				}
			}

			source, err := s.Source(ctx)
			if err != nil {
				return err
			}
			if refresh {
				if err := source.Refresh(ctx); err != nil {
					return err
				}
			}
			creds, err := source.Credentials(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if export {
				printExports(out, s.Options.Profile, creds)
				return nil
			}

			var identity *models.Identity
			if verify {
				id, err := callerIdentity(cmd, deps, creds)
				if err != nil {
					return err
				}
				identity = &id
			}
			now := time.Now
			if deps.Now != nil {
				now = deps.Now
			}
			printDetails(out, s.Options.Profile, creds, identity, now())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&export, "export", "e", false, "Print shell export statements")
	cmd.Flags().BoolVarP(&refresh, "refresh", "r", false, "Acquire new credentials even if cached ones are valid")
	cmd.Flags().BoolVar(&verify, "verify", false, "Check the credentials with STS GetCallerIdentity")

	return cmd
}

func selectProfile(cmd *cobra.Command, deps Dependencies) error {
	names, err := sso.SSOProfileNames(cmd.Context(), deps.Session.SharedConfigFile)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	choice, err := deps.Prompter.PromptForSelection("Select an AWS SSO profile", names)
	if err != nil {
		return err
	}
	deps.Session.SetProfile(choice)
	return nil
}

func callerIdentity(cmd *cobra.Command, deps Dependencies, creds models.RoleCredentials) (models.Identity, error) {
	region := deps.Session.Region()
	if region == "" {
		region = fallbackRegion
	}
	cfg, err := awsclient.Load(cmd.Context(), awsclient.Options{
		Region:      region,
		Credentials: awsclient.StaticCredentials(creds),
	})
	if err != nil {
		return models.Identity{}, err
	}

	newSTS := deps.NewSTS
	if newSTS == nil {
		newSTS = func(cfg aws.Config) awsclient.STSAPI { return awsclient.NewSTSClient(cfg) }
	}
	return awsclient.CallerIdentity(cmd.Context(), newSTS(cfg))
}

func printExports(out io.Writer, profile string, creds models.RoleCredentials) {
	fmt.Fprintf(out, "export AWS_ACCESS_KEY_ID=%s\n", creds.AccessKeyID)
	fmt.Fprintf(out, "export AWS_SECRET_ACCESS_KEY=%s\n", creds.SecretAccessKey)
	fmt.Fprintf(out, "export AWS_SESSION_TOKEN=%s\n", creds.SessionToken)
	if !creds.Expiration.IsZero() {
		fmt.Fprintf(out, "export AWS_CREDENTIAL_EXPIRATION=%s\n", creds.Expiration.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(out, "# profile %s\n", profile)
}

func printDetails(out io.Writer, profile string, creds models.RoleCredentials, identity *models.Identity, now time.Time) {
	fmt.Fprintf(out, `
AWS Session Details:
---------------------------------
Profile      : %s
Access Key   : %s
Expiration   : %s (%s)
`, profile, creds.AccessKeyID, creds.Expiration.Local().Format(time.RFC1123), humanize.RelTime(creds.Expiration, now, "ago", "from now"))
	if identity != nil {
		fmt.Fprintf(out, "Account Id   : %s\nRole ARN     : %s\n", identity.Account, identity.Arn)
	}
	fmt.Fprintln(out, "---------------------------------")
}
