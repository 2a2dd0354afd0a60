// Package aws adapts the AWS SDK to the capability interfaces of the janitor.
//
// Each adapter wraps one service client behind the narrow SDK API interface it
// needs, so tests can substitute an in-memory implementation:
//
//   - Instances: EC2 DescribeInstances, walked with the SDK paginator
//   - LogGroups: CloudWatch Logs DescribeLogGroups / DeleteLogGroup
//   - Queues: SQS ListQueues / DeleteQueue
//   - Records: Route 53 ListResourceRecordSets / ChangeResourceRecordSets
//
// Every listing follows pagination to the end. Deletes treat "does not exist"
// replies as success so a repeated pass is harmless.
package aws
