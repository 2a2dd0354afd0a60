package janitor

import (
	"context"
	"iter"
)

// Kind names a resource kind. Each kind is scanned and reconciled on its own.
type Kind string

const (
	KindLogGroup  Kind = "log-group"
	KindQueue     Kind = "queue"
	KindDNSRecord Kind = "dns-record"
)

// ScannedResource is one listed resource together with the instance ID
// embedded in its name, if any.
type ScannedResource struct {
	Kind Kind
	// Name is the log group name, queue URL or record name.
	Name string
	// InstanceID is only meaningful when HasInstanceID is set.
	InstanceID    InstanceID
	HasInstanceID bool
	// Raw carries the provider representation for kinds that need it on
	// delete (DNS record sets).
	Raw any
}

func newScannedResource(kind Kind, name string, raw any) ScannedResource {
	id, ok := ExtractInstanceID(name)
	return ScannedResource{
		Kind:          kind,
		Name:          name,
		InstanceID:    id,
		HasInstanceID: ok,
		Raw:           raw,
	}
}

// Scanner lazily lists the resources of one kind. It never mutates anything.
// A listing failure is yielded once as a *ScanError and ends the sequence.
type Scanner interface {
	Kind() Kind
	Scan(ctx context.Context) iter.Seq2[ScannedResource, error]
}

// LogGroupScanner scans log groups.
type LogGroupScanner struct {
	Service LogGroupService
	Prefix  string
}

func (s *LogGroupScanner) Kind() Kind { return KindLogGroup }

func (s *LogGroupScanner) Scan(ctx context.Context) iter.Seq2[ScannedResource, error] {
	return scanNames(KindLogGroup, s.Service.ListLogGroups(ctx, s.Prefix))
}

// QueueScanner scans message queues by URL.
type QueueScanner struct {
	Service QueueService
	Prefix  string
}

func (s *QueueScanner) Kind() Kind { return KindQueue }

func (s *QueueScanner) Scan(ctx context.Context) iter.Seq2[ScannedResource, error] {
	return scanNames(KindQueue, s.Service.ListQueues(ctx, s.Prefix))
}

// RecordScanner scans every record set of one DNS zone.
type RecordScanner struct {
	Service RecordService
	ZoneID  string
}

func (s *RecordScanner) Kind() Kind { return KindDNSRecord }

func (s *RecordScanner) Scan(ctx context.Context) iter.Seq2[ScannedResource, error] {
	return func(yield func(ScannedResource, error) bool) {
		for record, err := range s.Service.ListRecords(ctx, s.ZoneID) {
			if err != nil {
				yield(ScannedResource{Kind: KindDNSRecord}, &ScanError{Kind: KindDNSRecord, Err: err})
				return
			}
			if !yield(newScannedResource(KindDNSRecord, record.Name, record), nil) {
				return
			}
		}
	}
}

func scanNames(kind Kind, names iter.Seq2[string, error]) iter.Seq2[ScannedResource, error] {
	return func(yield func(ScannedResource, error) bool) {
		for name, err := range names {
			if err != nil {
				yield(ScannedResource{Kind: kind}, &ScanError{Kind: kind, Err: err})
				return
			}
			if !yield(newScannedResource(kind, name, nil), nil) {
				return
			}
		}
	}
}
