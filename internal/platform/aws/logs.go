package aws

import (
	"context"
	"fmt"
	"iter"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
)

// LogsAPI is the subset of the CloudWatch Logs client the janitor uses.
type LogsAPI interface {
	cloudwatchlogs.DescribeLogGroupsAPIClient
	DeleteLogGroup(ctx context.Context, params *cloudwatchlogs.DeleteLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DeleteLogGroupOutput, error)
}

// LogGroups lists and deletes CloudWatch log groups.
type LogGroups struct {
	api LogsAPI
}

// NewLogGroups creates a log group service from an AWS config.
func NewLogGroups(cfg aws.Config) *LogGroups {
	return &LogGroups{api: cloudwatchlogs.NewFromConfig(cfg)}
}

// NewLogGroupsFromAPI wraps an existing CloudWatch Logs API implementation.
func NewLogGroupsFromAPI(api LogsAPI) *LogGroups {
	return &LogGroups{api: api}
}

// ListLogGroups yields every log group name, page by page.
func (c *LogGroups) ListLogGroups(ctx context.Context, prefix string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		input := &cloudwatchlogs.DescribeLogGroupsInput{}
		if prefix != "" {
			input.LogGroupNamePrefix = aws.String(prefix)
		}

		paginator := cloudwatchlogs.NewDescribeLogGroupsPaginator(c.api, input)
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				yield("", fmt.Errorf("failed to describe log groups: %w", err))
				return
			}
			for _, group := range page.LogGroups {
				if !yield(aws.ToString(group.LogGroupName), nil) {
					return
				}
			}
		}
	}
}

// DeleteLogGroup deletes a log group. A group that no longer exists is not an error.
func (c *LogGroups) DeleteLogGroup(ctx context.Context, name string) error {
	_, err := c.api.DeleteLogGroup(ctx, &cloudwatchlogs.DeleteLogGroupInput{
		LogGroupName: aws.String(name),
	})
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete log group %s: %w", name, err)
	}
	return nil
}
