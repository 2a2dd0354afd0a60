// Package janitor finds and deletes cloud resources left behind by retired
// EC2 instances.
//
// A pass works in four steps:
//
//  1. Ground truth: every instance ID the EC2 API still knows about is
//     collected, across all pages. If this fails the pass aborts and nothing
//     is deleted.
//  2. Scan: log groups, SQS queues and the records of one Route 53 zone are
//     listed. Each resource name is searched for an instance ID.
//  3. Classify: a resource whose embedded instance ID is not in the ground
//     truth is an orphan. Names without an instance ID are left alone.
//  4. Reconcile: log groups and queues are deleted one by one as they are
//     found; DNS records are collected into a single change batch which is
//     submitted once the zone scan completes.
//
// Resource kinds are independent. A failure in one kind never stops another,
// and a failed delete never stops the rest of its own kind. All failures are
// reported on the returned [Report].
//
// The package only talks to the cloud through the capability interfaces in
// interfaces.go, so every step can be exercised with in-memory fakes.
package janitor
