package ec2

import (
	"context"
	"fmt"
	"iter"
	"sort"
	"strings"

	awskitec2 "github.com/BerryBytes/awskit/internal/ec2"
	"github.com/BerryBytes/awskit/internal/session"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ec2.go -destination=../../internal/mocks/ec2cmd/mock_ec2.go -package=mock_ec2cmd

type InstanceService interface {
	Run(ctx context.Context, input *ec2.RunInstancesInput) ([]models.EC2Instance, error)
	Instances(ctx context.Context, filter awskitec2.InstanceFilter) iter.Seq2[models.EC2Instance, error]
}

var _ InstanceService = (*awskitec2.AwsEC2Adapter)(nil)

type Dependencies struct {
	Session    *session.Session
	NewService func(cfg aws.Config, log *zap.SugaredLogger) InstanceService
}

func (d Dependencies) service(ctx context.Context) (InstanceService, error) {
	cfg, err := d.Session.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	if d.NewService != nil {
		return d.NewService(cfg, d.Session.Log), nil
	}
	return awskitec2.NewEC2Client(cfg, d.Session.Log), nil
}

func NewEC2Commands(deps Dependencies) *cobra.Command {
	ec2Cmd := &cobra.Command{
		Use:   "ec2",
		Short: "List and launch EC2 instances",
	}
	ec2Cmd.AddCommand(lsCmd(deps))
	ec2Cmd.AddCommand(runCmd(deps))
	return ec2Cmd
}

func lsCmd(deps Dependencies) *cobra.Command {
	var filter awskitec2.InstanceFilter
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List instances, running ones unless --state is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for inst, err := range svc.Instances(cmd.Context(), filter) {
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %-10s  %-12s  %-15s  %s\n",
					inst.InstanceID, inst.State, inst.InstanceType, orDash(inst.PrivateIPAddress), orDash(inst.Name))
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&filter.States, "state", "s", nil, "Instance states to include (default running)")
	cmd.Flags().StringToStringVarP(&filter.Tags, "tag", "t", nil, "Only instances with these tag=value pairs")
	cmd.Flags().IntVarP(&filter.Limit, "limit", "n", 0, "Maximum number of instances (0 for all)")
	return cmd
}

type runFlags struct {
	imageID        string
	instanceType   string
	count          int32
	keyName        string
	subnetID       string
	securityGroups []string
	tags           map[string]string
}

// input builds the launch request. Tags apply to the instances and their volumes.
func (f runFlags) input() *ec2.RunInstancesInput {
	input := &ec2.RunInstancesInput{
		ImageId:      aws.String(f.imageID),
		InstanceType: types.InstanceType(f.instanceType),
		MinCount:     aws.Int32(f.count),
		MaxCount:     aws.Int32(f.count),
	}
	if f.keyName != "" {
		input.KeyName = aws.String(f.keyName)
	}
	if f.subnetID != "" {
		input.SubnetId = aws.String(f.subnetID)
	}
	if len(f.securityGroups) > 0 {
		input.SecurityGroupIds = f.securityGroups
	}
	if len(f.tags) > 0 {
		keys := make([]string, 0, len(f.tags))
		for k := range f.tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		tags := make([]types.Tag, 0, len(keys))
		for _, k := range keys {
			tags = append(tags, types.Tag{Key: aws.String(k), Value: aws.String(f.tags[k])})
		}
		input.TagSpecifications = []types.TagSpecification{
			{ResourceType: types.ResourceTypeInstance, Tags: tags},
			{ResourceType: types.ResourceTypeVolume, Tags: tags},
		}
	}
	return input
}

func runCmd(deps Dependencies) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run --image-id <ami> --instance-type <type>",
		Short: "Launch instances and print their IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", flags.count)
			}
			svc, err := deps.service(cmd.Context())
			if err != nil {
				return err
			}
			instances, err := svc.Run(cmd.Context(), flags.input())
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(instances))
			for _, inst := range instances {
				fmt.Fprintln(cmd.OutOrStdout(), inst.InstanceID)
				ids = append(ids, inst.InstanceID)
			}
			deps.Session.Log.Infof("Launched %s", strings.Join(ids, ", "))
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.imageID, "image-id", "", "AMI to launch")
	cmd.Flags().StringVar(&flags.instanceType, "instance-type", "t3.micro", "Instance type")
	cmd.Flags().Int32Var(&flags.count, "count", 1, "Number of instances")
	cmd.Flags().StringVar(&flags.keyName, "key-name", "", "Key pair name")
	cmd.Flags().StringVar(&flags.subnetID, "subnet-id", "", "Subnet to launch into")
	cmd.Flags().StringSliceVar(&flags.securityGroups, "security-group", nil, "Security group IDs")
	cmd.Flags().StringToStringVarP(&flags.tags, "tag", "t", nil, "Tags as key=value pairs")
	_ = cmd.MarkFlagRequired("image-id")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
