package janitor

import (
	"context"
	"errors"

	"github.com/go-logr/logr"
)

// DefaultChangeComment is attached to every DNS change batch.
const DefaultChangeComment = "Cleaning up old instance records"

// DeletionIntent marks a scanned resource for removal.
type DeletionIntent struct {
	Kind     Kind
	Resource ScannedResource
}

// ChangeAction is the operation of a DNS change.
type ChangeAction string

const ChangeDelete ChangeAction = "DELETE"

// Change is one entry of a ChangeBatch.
type Change struct {
	Action ChangeAction
	Record Record
}

// ChangeBatch is an ordered set of DNS changes submitted in one request.
type ChangeBatch struct {
	Comment string
	Changes []Change
}

// Reconciler applies deletion intents for one resource kind.
//
// Reconcile is called for every orphan as soon as it is classified. Finish is
// called once after the scan; complete is false when the scan ended with an
// error. Finish returns the names of resources that were removed (or, in dry
// run, would have been) and every failure of the kind.
type Reconciler interface {
	Reconcile(ctx context.Context, intent DeletionIntent)
	Finish(ctx context.Context, complete bool) ([]string, error)
}

// ImmediateReconciler deletes each orphan with its own call. A failed delete
// is recorded and the next orphan is still processed.
type ImmediateReconciler struct {
	kind   Kind
	delete func(ctx context.Context, name string) error
	log    logr.Logger
	dryRun bool

	deleted []string
	errs    []error
}

// NewImmediateReconciler returns a reconciler calling deleteFn per orphan.
func NewImmediateReconciler(kind Kind, deleteFn func(context.Context, string) error, log logr.Logger, dryRun bool) *ImmediateReconciler {
	return &ImmediateReconciler{
		kind:   kind,
		delete: deleteFn,
		log:    log,
		dryRun: dryRun,
	}
}

func (r *ImmediateReconciler) Reconcile(ctx context.Context, intent DeletionIntent) {
	name := intent.Resource.Name
	if r.dryRun {
		r.log.Info("[Reconcile] Would delete", "kind", r.kind, "name", name, "instance", intent.Resource.InstanceID)
		r.deleted = append(r.deleted, name)
		return
	}
	if err := r.delete(ctx, name); err != nil {
		r.log.Error(err, "[Reconcile] Failed to delete", "kind", r.kind, "name", name)
		r.errs = append(r.errs, &DeleteError{Kind: r.kind, Name: name, Err: err})
		return
	}
	r.log.Info("[Reconcile] Deleted", "kind", r.kind, "name", name, "instance", intent.Resource.InstanceID)
	r.deleted = append(r.deleted, name)
}

// Finish reports the outcome. Deletions already issued stand regardless of
// whether the scan completed.
func (r *ImmediateReconciler) Finish(_ context.Context, _ bool) ([]string, error) {
	return r.deleted, errors.Join(r.errs...)
}

// BatchReconciler queues orphans into one ChangeBatch and submits it when the
// scan is complete.
type BatchReconciler struct {
	service RecordService
	zoneID  string
	log     logr.Logger
	dryRun  bool

	batch ChangeBatch
	names []string
}

// NewBatchReconciler returns a reconciler submitting to zoneID through service.
func NewBatchReconciler(service RecordService, zoneID string, log logr.Logger, dryRun bool) *BatchReconciler {
	return &BatchReconciler{
		service: service,
		zoneID:  zoneID,
		log:     log,
		dryRun:  dryRun,
		batch:   ChangeBatch{Comment: DefaultChangeComment},
	}
}

func (r *BatchReconciler) Reconcile(_ context.Context, intent DeletionIntent) {
	record, ok := intent.Resource.Raw.(Record)
	if !ok {
		record = Record{Name: intent.Resource.Name}
	}
	r.batch.Changes = append(r.batch.Changes, Change{Action: ChangeDelete, Record: record})
	r.names = append(r.names, intent.Resource.Name)
	r.log.Info("[Reconcile] Queued for deletion", "kind", KindDNSRecord, "name", intent.Resource.Name, "instance", intent.Resource.InstanceID)
}

// Pending returns the number of queued changes.
func (r *BatchReconciler) Pending() int {
	return len(r.batch.Changes)
}

// Finish submits the batch. Nothing is submitted when the batch is empty or
// the zone scan did not complete.
func (r *BatchReconciler) Finish(ctx context.Context, complete bool) ([]string, error) {
	if len(r.batch.Changes) == 0 {
		return nil, nil
	}
	if !complete {
		r.log.Info("[Reconcile] Zone scan incomplete, discarding queued changes", "zone", r.zoneID, "changes", len(r.batch.Changes))
		return nil, nil
	}
	if r.dryRun {
		r.log.Info("[Reconcile] Would submit change batch", "zone", r.zoneID, "changes", len(r.batch.Changes))
		return r.names, nil
	}
	if err := r.service.SubmitChangeBatch(ctx, r.zoneID, r.batch); err != nil {
		r.log.Error(err, "[Reconcile] Change batch rejected, no records deleted", "zone", r.zoneID, "changes", len(r.batch.Changes))
		return nil, &BatchSubmitError{ZoneID: r.zoneID, Changes: len(r.batch.Changes), Err: err}
	}
	r.log.Info("[Reconcile] Deleted records", "zone", r.zoneID, "count", len(r.batch.Changes))
	return r.names, nil
}
