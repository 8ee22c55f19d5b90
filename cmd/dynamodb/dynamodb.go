package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	awskitddb "github.com/BerryBytes/awskit/internal/dynamodb"
	"github.com/BerryBytes/awskit/internal/session"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//go:generate mockgen -source=dynamodb.go -destination=../../internal/mocks/ddbcmd/mock_dynamodb.go -package=mock_ddbcmd

type TableService interface {
	BatchGet(ctx context.Context, table string, keys []awskitddb.Item, attributes []string) ([]awskitddb.Item, error)
	BatchPut(ctx context.Context, table string, items []awskitddb.Item) error
}

var _ TableService = (*awskitddb.AwsDynamoDBAdapter)(nil)

type Dependencies struct {
	Session    *session.Session
	NewService func(cfg aws.Config, log *zap.SugaredLogger) TableService
	Fs         afero.Fs
}

func (d Dependencies) service(ctx context.Context) (TableService, error) {
	cfg, err := d.Session.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	if d.NewService != nil {
		return d.NewService(cfg, d.Session.Log), nil
	}
	return awskitddb.NewDynamoDBClient(cfg, d.Session.Log), nil
}

func (d Dependencies) fs() afero.Fs {
	if d.Fs != nil {
		return d.Fs
	}
	return afero.NewOsFs()
}

func NewDynamoDBCommands(deps Dependencies) *cobra.Command {
	ddbCmd := &cobra.Command{
		Use:     "dynamodb",
		Aliases: []string{"ddb"},
		Short:   "Batch read and write DynamoDB items as JSON",
	}
	ddbCmd.AddCommand(getCmd(deps))
	ddbCmd.AddCommand(putCmd(deps))
	return ddbCmd
}

func getCmd(deps Dependencies) *cobra.Command {
	var (
		rawKeys    []string
		attributes []string
	)
	cmd := &cobra.Command{
		Use:   "get <table> --key '{\"id\":\"1\"}' [--key ...]",
		Short: "Fetch items by key, one JSON object per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rawKeys) == 0 {
				return fmt.Errorf("at least one --key is required")
			}
			keys := make([]awskitddb.Item, 0, len(rawKeys))
			for _, raw := range rawKeys {
				var key awskitddb.Item
				if err := json.Unmarshal([]byte(raw), &key); err != nil {
					return fmt.Errorf("invalid key %s: %w", raw, err)
				}
				keys = append(keys, key)
			}

			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			items, err := svc.BatchGet(cmd.Context(), args[0], keys, attributes)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, item := range items {
				if err := enc.Encode(item); err != nil {
					return err
				}
			}
			deps.Session.Log.Debugf("Found %d of %d items in %s", len(items), len(keys), args[0])
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&rawKeys, "key", "k", nil, "Primary key as a JSON object (repeatable)")
	cmd.Flags().StringSliceVarP(&attributes, "attributes", "a", nil, "Attributes to return (default all)")
	return cmd
}

func putCmd(deps Dependencies) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "put <table>",
		Short: "Write a JSON array of items from a file or stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := deps.fs().Open(file)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", file, err)
				}
				defer f.Close()
				in = f
			}

			var items []awskitddb.Item
			if err := json.NewDecoder(in).Decode(&items); err != nil {
				return fmt.Errorf("failed to parse items: %w", err)
			}
			if len(items) == 0 {
				return fmt.Errorf("no items to write")
			}

			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.BatchPut(cmd.Context(), args[0], items); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d items to %s\n", len(items), args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file holding an array of items (default stdin)")
	return cmd
}
