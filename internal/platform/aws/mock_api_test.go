package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// mockEC2 serves DescribeInstances from a list of pre-built pages keyed by
// the incoming NextToken ("" for the first page).
type mockEC2 struct {
	pages  map[string]*ec2.DescribeInstancesOutput
	errAt  string
	err    error
	inputs []*ec2.DescribeInstancesInput
}

func (m *mockEC2) DescribeInstances(_ context.Context, in *ec2.DescribeInstancesInput, _ ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	m.inputs = append(m.inputs, in)
	token := ""
	if in.NextToken != nil {
		token = *in.NextToken
	}
	if m.err != nil && token == m.errAt {
		return nil, m.err
	}
	return m.pages[token], nil
}

type mockLogs struct {
	pages            map[string]*cloudwatchlogs.DescribeLogGroupsOutput
	err              error
	DeleteLogGroupFn func(name string) error

	inputs  []*cloudwatchlogs.DescribeLogGroupsInput
	deleted []string
}

func (m *mockLogs) DescribeLogGroups(_ context.Context, in *cloudwatchlogs.DescribeLogGroupsInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeLogGroupsOutput, error) {
	m.inputs = append(m.inputs, in)
	if m.err != nil {
		return nil, m.err
	}
	token := ""
	if in.NextToken != nil {
		token = *in.NextToken
	}
	return m.pages[token], nil
}

func (m *mockLogs) DeleteLogGroup(_ context.Context, in *cloudwatchlogs.DeleteLogGroupInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DeleteLogGroupOutput, error) {
	m.deleted = append(m.deleted, *in.LogGroupName)
	if m.DeleteLogGroupFn != nil {
		if err := m.DeleteLogGroupFn(*in.LogGroupName); err != nil {
			return nil, err
		}
	}
	return &cloudwatchlogs.DeleteLogGroupOutput{}, nil
}

type mockSQS struct {
	pages         map[string]*sqs.ListQueuesOutput
	err           error
	DeleteQueueFn func(url string) error

	inputs  []*sqs.ListQueuesInput
	deleted []string
}

func (m *mockSQS) ListQueues(_ context.Context, in *sqs.ListQueuesInput, _ ...func(*sqs.Options)) (*sqs.ListQueuesOutput, error) {
	m.inputs = append(m.inputs, in)
	if m.err != nil {
		return nil, m.err
	}
	token := ""
	if in.NextToken != nil {
		token = *in.NextToken
	}
	return m.pages[token], nil
}

func (m *mockSQS) DeleteQueue(_ context.Context, in *sqs.DeleteQueueInput, _ ...func(*sqs.Options)) (*sqs.DeleteQueueOutput, error) {
	m.deleted = append(m.deleted, *in.QueueUrl)
	if m.DeleteQueueFn != nil {
		if err := m.DeleteQueueFn(*in.QueueUrl); err != nil {
			return nil, err
		}
	}
	return &sqs.DeleteQueueOutput{}, nil
}

// mockRoute53 serves ListResourceRecordSets pages keyed by StartRecordName.
type mockRoute53 struct {
	pages     map[string]*route53.ListResourceRecordSetsOutput
	listErr   error
	changeErr error

	listInputs   []*route53.ListResourceRecordSetsInput
	changeInputs []*route53.ChangeResourceRecordSetsInput
}

func (m *mockRoute53) ListResourceRecordSets(_ context.Context, in *route53.ListResourceRecordSetsInput, _ ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error) {
	m.listInputs = append(m.listInputs, in)
	if m.listErr != nil {
		return nil, m.listErr
	}
	start := ""
	if in.StartRecordName != nil {
		start = *in.StartRecordName
	}
	return m.pages[start], nil
}

func (m *mockRoute53) ChangeResourceRecordSets(_ context.Context, in *route53.ChangeResourceRecordSetsInput, _ ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
	m.changeInputs = append(m.changeInputs, in)
	if m.changeErr != nil {
		return nil, m.changeErr
	}
	return &route53.ChangeResourceRecordSetsOutput{}, nil
}
