package janitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/janitor/internal/util/async"
)

// Options wires a Janitor to its collaborators. A nil service disables the
// corresponding resource kind.
type Options struct {
	Instances InstanceLister

	LogGroups      LogGroupService
	LogGroupPrefix string

	Queues      QueueService
	QueuePrefix string

	Records RecordService
	ZoneID  string

	// DryRun logs every delete instead of issuing it.
	DryRun bool
	// Concurrent scans the resource kinds in parallel.
	Concurrent bool
	// AllowEmptyGroundTruth accepts an instance listing with no instances.
	AllowEmptyGroundTruth bool

	Logger logr.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Janitor runs reconciliation passes.
type Janitor struct {
	opts Options
	log  logr.Logger
	now  func() time.Time
}

// New validates opts and returns a Janitor.
func New(opts Options) (*Janitor, error) {
	if opts.Instances == nil {
		return nil, errors.New("instance lister is required")
	}
	if opts.Records != nil && opts.ZoneID == "" {
		return nil, errors.New("zone ID is required when DNS records are reconciled")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Janitor{opts: opts, log: opts.Logger, now: now}, nil
}

// kindRun pairs a scanner with the reconciler that owns its intents.
// Neither is shared with any other kind.
type kindRun struct {
	scanner    Scanner
	reconciler Reconciler
	result     KindResult
	complete   bool
}

func (j *Janitor) kinds() []*kindRun {
	var runs []*kindRun
	if j.opts.LogGroups != nil {
		runs = append(runs, &kindRun{
			scanner:    &LogGroupScanner{Service: j.opts.LogGroups, Prefix: j.opts.LogGroupPrefix},
			reconciler: NewImmediateReconciler(KindLogGroup, j.opts.LogGroups.DeleteLogGroup, j.log, j.opts.DryRun),
		})
	}
	if j.opts.Queues != nil {
		runs = append(runs, &kindRun{
			scanner:    &QueueScanner{Service: j.opts.Queues, Prefix: j.opts.QueuePrefix},
			reconciler: NewImmediateReconciler(KindQueue, j.opts.Queues.DeleteQueue, j.log, j.opts.DryRun),
		})
	}
	if j.opts.Records != nil {
		runs = append(runs, &kindRun{
			scanner:    &RecordScanner{Service: j.opts.Records, ZoneID: j.opts.ZoneID},
			reconciler: NewBatchReconciler(j.opts.Records, j.opts.ZoneID, j.log, j.opts.DryRun),
		})
	}
	for _, k := range runs {
		k.result.Kind = k.scanner.Kind()
	}
	return runs
}

// Run executes one full pass and returns its report. The returned error is
// report.Err(): nil only if every stage of every kind succeeded.
//
// If the ground truth cannot be collected the pass ends in
// StateAbortedNoAction without listing or deleting anything else.
func (j *Janitor) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		StartedAt: j.now(),
		DryRun:    j.opts.DryRun,
		State:     StateCollectingGroundTruth,
	}
	defer func() { report.FinishedAt = j.now() }()

	j.log.Info("[GroundTruth] Listing instances")
	truth, err := CollectGroundTruth(ctx, j.opts.Instances, j.opts.AllowEmptyGroundTruth)
	if err != nil {
		j.log.Error(err, "[GroundTruth] Aborting pass, nothing will be deleted")
		report.State = StateAbortedNoAction
		report.groundTruthErr = err
		report.ErrorMessage = err.Error()
		return report, report.Err()
	}
	report.GroundTruthSize = truth.Len()
	j.log.Info("[GroundTruth] Collected live instances", "count", truth.Len(), "instances", truth.IDs())

	runs := j.kinds()
	sequential := !j.opts.Concurrent

	report.State = StateScanningResources
	scanTasks := make([]async.Task, 0, len(runs))
	for _, k := range runs {
		scanTasks = append(scanTasks, async.Task{
			Name: string(k.result.Kind),
			Func: func(ctx context.Context) error { return j.scan(ctx, k, truth) },
		})
	}
	if err := async.Run(ctx, scanTasks, sequential); err != nil {
		j.log.Info("[Scan] Some resource kinds could not be fully scanned", "error", err.Error())
	}

	report.State = StateReconciling
	finishTasks := make([]async.Task, 0, len(runs))
	for _, k := range runs {
		finishTasks = append(finishTasks, async.Task{
			Name: string(k.result.Kind),
			Func: func(ctx context.Context) error { return j.finish(ctx, k) },
		})
	}
	if err := async.Run(ctx, finishTasks, sequential); err != nil {
		j.log.Info("[Reconcile] Some resource kinds reported failures", "error", err.Error())
	}

	for _, k := range runs {
		report.Kinds = append(report.Kinds, k.result)
	}
	report.State = StateDone

	passErr := report.Err()
	if passErr != nil {
		report.ErrorMessage = passErr.Error()
	}
	j.log.Info("[Janitor] Pass complete", "deleted", report.TotalDeleted(), "dryRun", j.opts.DryRun, "failed", passErr != nil)
	return report, passErr
}

// scan lists one kind, classifies every resource and hands orphans to the
// kind's reconciler as soon as they are found.
func (j *Janitor) scan(ctx context.Context, k *kindRun, truth *GroundTruth) error {
	kind := k.result.Kind
	log := j.log.WithValues("kind", kind)
	for resource, err := range k.scanner.Scan(ctx) {
		if err != nil {
			log.Error(err, "[Scan] Listing failed, stopping scan of this kind")
			k.result.setErr(err)
			return err
		}
		if err := ctx.Err(); err != nil {
			scanErr := &ScanError{Kind: kind, Err: err}
			k.result.setErr(scanErr)
			return scanErr
		}
		k.result.Scanned++
		switch Classify(resource, truth) {
		case Unrecognized:
			k.result.Unrecognized++
			log.V(1).Info("[Scan] No instance ID in name, skipping", "name", resource.Name)
		case Live:
			k.result.Live++
			log.V(1).Info("[Scan] Instance is live", "name", resource.Name, "instance", resource.InstanceID)
		case Orphaned:
			k.result.Orphaned++
			k.reconciler.Reconcile(ctx, DeletionIntent{Kind: kind, Resource: resource})
		}
	}
	k.complete = true
	return nil
}

// finish lets the kind's reconciler flush pending work and folds its outcome
// into the kind result.
func (j *Janitor) finish(ctx context.Context, k *kindRun) error {
	deleted, err := k.reconciler.Finish(ctx, k.complete)
	k.result.Deleted = deleted
	if err == nil {
		return nil
	}

	k.result.Failed = countFailures(err)
	combined := errors.Join(k.result.Err, err)
	k.result.setErr(combined)
	return fmt.Errorf("%d failures: %w", k.result.Failed, err)
}

func countFailures(err error) int {
	var batchErr *BatchSubmitError
	if errors.As(err, &batchErr) {
		return batchErr.Changes
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}
