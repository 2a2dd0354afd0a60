package aws

import (
	"context"
	"fmt"
	"iter"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// listQueuesPageSize is the largest page SQS accepts. Setting it is also what
// makes SQS return a NextToken instead of silently capping the result.
const listQueuesPageSize = 1000

// SQSAPI is the subset of the SQS client the janitor uses.
type SQSAPI interface {
	sqs.ListQueuesAPIClient
	DeleteQueue(ctx context.Context, params *sqs.DeleteQueueInput, optFns ...func(*sqs.Options)) (*sqs.DeleteQueueOutput, error)
}

// Queues lists and deletes SQS queues.
type Queues struct {
	api SQSAPI
}

// NewQueues creates a queue service from an AWS config.
func NewQueues(cfg aws.Config) *Queues {
	return &Queues{api: sqs.NewFromConfig(cfg)}
}

// NewQueuesFromAPI wraps an existing SQS API implementation.
func NewQueuesFromAPI(api SQSAPI) *Queues {
	return &Queues{api: api}
}

// ListQueues yields every queue URL, page by page.
func (c *Queues) ListQueues(ctx context.Context, prefix string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		input := &sqs.ListQueuesInput{MaxResults: aws.Int32(listQueuesPageSize)}
		if prefix != "" {
			input.QueueNamePrefix = aws.String(prefix)
		}

		paginator := sqs.NewListQueuesPaginator(c.api, input)
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				yield("", fmt.Errorf("failed to list queues: %w", err))
				return
			}
			for _, url := range page.QueueUrls {
				if !yield(url, nil) {
					return
				}
			}
		}
	}
}

// DeleteQueue deletes a queue by URL. A queue that no longer exists is not an error.
func (c *Queues) DeleteQueue(ctx context.Context, url string) error {
	_, err := c.api.DeleteQueue(ctx, &sqs.DeleteQueueInput{
		QueueUrl: aws.String(url),
	})
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete queue %s: %w", url, err)
	}
	return nil
}
