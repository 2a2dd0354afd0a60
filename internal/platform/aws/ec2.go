package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/imamik/janitor/internal/janitor"
)

// describeInstancesPageSize is the largest page EC2 accepts.
const describeInstancesPageSize = 1000

// Instances lists EC2 instances as the janitor's ground truth.
type Instances struct {
	api ec2.DescribeInstancesAPIClient
}

// NewInstances creates an EC2 instance lister from an AWS config.
func NewInstances(cfg aws.Config) *Instances {
	return &Instances{api: ec2.NewFromConfig(cfg)}
}

// NewInstancesFromAPI wraps an existing EC2 API implementation.
func NewInstancesFromAPI(api ec2.DescribeInstancesAPIClient) *Instances {
	return &Instances{api: api}
}

// ListInstanceIDs returns the ID of every instance EC2 reports, in any state,
// across all result pages. It fails as a whole if any page fails.
func (c *Instances) ListInstanceIDs(ctx context.Context) ([]janitor.InstanceID, error) {
	paginator := ec2.NewDescribeInstancesPaginator(c.api, &ec2.DescribeInstancesInput{
		MaxResults: aws.Int32(describeInstancesPageSize),
	})

	var ids []janitor.InstanceID
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances: %w", err)
		}
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				if instance.InstanceId != nil {
					ids = append(ids, janitor.InstanceID(*instance.InstanceId))
				}
			}
		}
	}
	return ids, nil
}
