package ec2

import (
	"context"
	"iter"
	"sort"

	"github.com/BerryBytes/awskit/internal/awsclient"
	"github.com/BerryBytes/awskit/internal/logger"
	"github.com/BerryBytes/awskit/internal/pager"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"go.uber.org/zap"
)

const (
	InstanceStateName = "instance-state-name"
	RunningState      = "running"
	TagName           = "Name"
	// PageCeiling is the MaxResults cap of DescribeInstances.
	PageCeiling = 1000
)

type AwsEC2Adapter struct {
	Client EC2API
	Cfg    aws.Config
	Log    *zap.SugaredLogger
}

func NewEC2Client(cfg aws.Config, log *zap.SugaredLogger) *AwsEC2Adapter {
	return &AwsEC2Adapter{
		Client: ec2.NewFromConfig(cfg),
		Cfg:    cfg,
		Log:    logger.OrNop(log),
	}
}

// Run launches instances as described by input and returns them as reported
// at launch.
func (c *AwsEC2Adapter) Run(ctx context.Context, input *ec2.RunInstancesInput) ([]models.EC2Instance, error) {
	out, err := c.Client.RunInstances(ctx, input)
	if err != nil {
		return nil, awsclient.HandleAWSError(err, "running instances")
	}

	instances := make([]models.EC2Instance, 0, len(out.Instances))
	for _, inst := range out.Instances {
		if inst.InstanceId == nil {
			continue
		}
		instances = append(instances, toInstance(inst))
	}
	logger.OrNop(c.Log).Debugf("Launched %d instances in reservation %s", len(instances), aws.ToString(out.ReservationId))
	return instances, nil
}

type InstanceFilter struct {
	// States defaults to running only.
	States []string
	Tags   map[string]string
	Limit  int
}

func (f InstanceFilter) filters() []types.Filter {
	states := f.States
	if len(states) == 0 {
		states = []string{RunningState}
	}
	filters := []types.Filter{{Name: aws.String(InstanceStateName), Values: states}}

	keys := make([]string, 0, len(f.Tags))
	for k := range f.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		filters = append(filters, types.Filter{Name: aws.String("tag:" + k), Values: []string{f.Tags[k]}})
	}
	return filters
}

// Instances lists the instances matching filter.
func (c *AwsEC2Adapter) Instances(ctx context.Context, filter InstanceFilter) iter.Seq2[models.EC2Instance, error] {
	fetch := func(ctx context.Context, req pager.Request) (pager.Page[models.EC2Instance], error) {
		input := &ec2.DescribeInstancesInput{Filters: filter.filters()}
		if req.Cursor != "" {
			input.NextToken = aws.String(req.Cursor)
		}
		// DescribeInstances rejects MaxResults below 5.
		if req.MaxItems > 0 {
			input.MaxResults = aws.Int32(max(req.MaxItems, 5))
		}

		out, err := c.Client.DescribeInstances(ctx, input)
		if err != nil {
			return pager.Page[models.EC2Instance]{}, awsclient.HandleAWSError(err, "describing instances")
		}

		page := pager.Page[models.EC2Instance]{
			NextCursor: aws.ToString(out.NextToken),
			More:       out.NextToken != nil,
		}
		for _, reservation := range out.Reservations {
			for _, inst := range reservation.Instances {
				if inst.InstanceId == nil {
					continue
				}
				page.Items = append(page.Items, toInstance(inst))
			}
		}
		return page, nil
	}
	return pager.Scan(ctx, fetch, pager.Options{Limit: filter.Limit, PageCeiling: PageCeiling})
}

func toInstance(instance types.Instance) models.EC2Instance {
	inst := models.EC2Instance{
		InstanceID:       aws.ToString(instance.InstanceId),
		PublicIPAddress:  aws.ToString(instance.PublicIpAddress),
		PrivateIPAddress: aws.ToString(instance.PrivateIpAddress),
		InstanceType:     string(instance.InstanceType),
		Tags:             make(map[string]string),
	}
	if instance.State != nil {
		inst.State = string(instance.State.Name)
	}
	if instance.Placement != nil {
		inst.AZ = aws.ToString(instance.Placement.AvailabilityZone)
	}
	for _, tag := range instance.Tags {
		if tag.Key == nil || tag.Value == nil {
			continue
		}
		inst.Tags[*tag.Key] = *tag.Value
		if *tag.Key == TagName {
			inst.Name = *tag.Value
		}
	}
	return inst
}
