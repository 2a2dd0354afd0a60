package janitor

import (
	"context"
	"iter"
)

// InstanceLister returns the IDs of every instance the compute provider knows.
// Implementations must walk all result pages; a truncated answer makes live
// resources look orphaned.
type InstanceLister interface {
	ListInstanceIDs(ctx context.Context) ([]InstanceID, error)
}

// LogGroupService lists and deletes log groups.
type LogGroupService interface {
	// ListLogGroups yields log group names, optionally restricted to a name prefix.
	// A listing error is yielded once and ends the sequence.
	ListLogGroups(ctx context.Context, prefix string) iter.Seq2[string, error]
	DeleteLogGroup(ctx context.Context, name string) error
}

// QueueService lists and deletes message queues.
type QueueService interface {
	// ListQueues yields queue URLs, optionally restricted to a queue name prefix.
	ListQueues(ctx context.Context, prefix string) iter.Seq2[string, error]
	DeleteQueue(ctx context.Context, url string) error
}

// Record is one DNS record set as returned by a RecordService.
type Record struct {
	Name string
	Type string
	// Raw is the provider's own representation of the record set. It is
	// handed back unchanged in a ChangeBatch so the provider can match it
	// exactly on delete.
	Raw any
}

// RecordService lists the records of a DNS zone and applies change batches.
type RecordService interface {
	ListRecords(ctx context.Context, zoneID string) iter.Seq2[Record, error]
	// SubmitChangeBatch applies all changes atomically: either every change
	// takes effect or none does.
	SubmitChangeBatch(ctx context.Context, zoneID string, batch ChangeBatch) error
}
