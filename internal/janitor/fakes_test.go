package janitor

import (
	"context"
	"iter"
	"slices"
	"sync"
)

// fakeInstances is an in-memory InstanceLister.
type fakeInstances struct {
	ids   []InstanceID
	err   error
	calls int
}

func (f *fakeInstances) ListInstanceIDs(_ context.Context) ([]InstanceID, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.ids, nil
}

// fakeNames is an in-memory store of named resources shared by the log group
// and queue fakes. Deletes really remove the name so repeated passes see the
// result of earlier ones.
type fakeNames struct {
	mu    sync.Mutex
	names []string

	ListErr     error
	ListErrFrom int // yield this many names before failing
	DeleteFunc  func(name string) error

	listCalls   int
	deleteCalls []string
	prefixes    []string
}

func (f *fakeNames) list(prefix string) iter.Seq2[string, error] {
	f.mu.Lock()
	f.listCalls++
	f.prefixes = append(f.prefixes, prefix)
	snapshot := slices.Clone(f.names)
	f.mu.Unlock()

	return func(yield func(string, error) bool) {
		for i, name := range snapshot {
			if f.ListErr != nil && i == f.ListErrFrom {
				yield("", f.ListErr)
				return
			}
			if !yield(name, nil) {
				return
			}
		}
		if f.ListErr != nil && f.ListErrFrom >= len(snapshot) {
			yield("", f.ListErr)
		}
	}
}

func (f *fakeNames) delete(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls = append(f.deleteCalls, name)
	if f.DeleteFunc != nil {
		if err := f.DeleteFunc(name); err != nil {
			return err
		}
	}
	f.names = slices.DeleteFunc(f.names, func(n string) bool { return n == name })
	return nil
}

func (f *fakeNames) remaining() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.names)
}

type fakeLogGroups struct{ fakeNames }

func newFakeLogGroups(names ...string) *fakeLogGroups {
	return &fakeLogGroups{fakeNames{names: names}}
}

func (f *fakeLogGroups) ListLogGroups(_ context.Context, prefix string) iter.Seq2[string, error] {
	return f.list(prefix)
}

func (f *fakeLogGroups) DeleteLogGroup(_ context.Context, name string) error {
	return f.delete(name)
}

type fakeQueues struct{ fakeNames }

func newFakeQueues(urls ...string) *fakeQueues {
	return &fakeQueues{fakeNames{names: urls}}
}

func (f *fakeQueues) ListQueues(_ context.Context, prefix string) iter.Seq2[string, error] {
	return f.list(prefix)
}

func (f *fakeQueues) DeleteQueue(_ context.Context, url string) error {
	return f.delete(url)
}

// fakeRecords is an in-memory zone. A submitted batch is applied all at once
// or, when SubmitErr is set, not at all.
type fakeRecords struct {
	mu      sync.Mutex
	records []Record

	ListErr   error
	SubmitErr error

	submitted []ChangeBatch
	zones     []string
}

func newFakeRecords(names ...string) *fakeRecords {
	f := &fakeRecords{}
	for _, name := range names {
		f.records = append(f.records, Record{Name: name, Type: "A", Raw: "raw:" + name})
	}
	return f
}

func (f *fakeRecords) ListRecords(_ context.Context, zoneID string) iter.Seq2[Record, error] {
	f.mu.Lock()
	f.zones = append(f.zones, zoneID)
	snapshot := slices.Clone(f.records)
	f.mu.Unlock()

	return func(yield func(Record, error) bool) {
		for _, r := range snapshot {
			if !yield(r, nil) {
				return
			}
		}
		if f.ListErr != nil {
			yield(Record{}, f.ListErr)
		}
	}
}

func (f *fakeRecords) SubmitChangeBatch(_ context.Context, _ string, batch ChangeBatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, batch)
	if f.SubmitErr != nil {
		return f.SubmitErr
	}
	for _, change := range batch.Changes {
		f.records = slices.DeleteFunc(f.records, func(r Record) bool { return r.Name == change.Record.Name })
	}
	return nil
}

func (f *fakeRecords) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.records))
	for _, r := range f.records {
		names = append(names, r.Name)
	}
	return names
}
