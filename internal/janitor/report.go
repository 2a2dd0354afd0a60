package janitor

import (
	"errors"
	"time"
)

// State is the stage a pass is in, or ended in.
type State string

const (
	StateCollectingGroundTruth State = "collecting-ground-truth"
	StateScanningResources     State = "scanning-resources"
	StateReconciling           State = "reconciling"
	StateDone                  State = "done"
	StateAbortedNoAction       State = "aborted-no-action"
)

// KindResult is the outcome of one resource kind within a pass.
type KindResult struct {
	Kind         Kind `json:"kind"`
	Scanned      int  `json:"scanned"`
	Live         int  `json:"live"`
	Unrecognized int  `json:"unrecognized"`
	Orphaned     int  `json:"orphaned"`
	// Deleted lists the names removed by this pass. In dry run it lists
	// what would have been removed.
	Deleted []string `json:"deleted,omitempty"`
	// Failed counts resources whose delete failed, or the changes of a
	// rejected DNS batch.
	Failed int `json:"failed"`

	Err          error  `json:"-"`
	ErrorMessage string `json:"error,omitempty"`
}

func (r *KindResult) setErr(err error) {
	r.Err = err
	if err != nil {
		r.ErrorMessage = err.Error()
	}
}

// Report describes one janitor pass.
type Report struct {
	StartedAt       time.Time    `json:"started_at"`
	FinishedAt      time.Time    `json:"finished_at"`
	DryRun          bool         `json:"dry_run"`
	State           State        `json:"state"`
	GroundTruthSize int          `json:"ground_truth_size"`
	Kinds           []KindResult `json:"kinds"`

	groundTruthErr error
	ErrorMessage   string `json:"error,omitempty"`
}

// Duration returns how long the pass took.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Kind returns the result for kind, if that kind ran.
func (r *Report) Kind(kind Kind) (KindResult, bool) {
	for _, k := range r.Kinds {
		if k.Kind == kind {
			return k, true
		}
	}
	return KindResult{}, false
}

// TotalDeleted returns the number of resources deleted across all kinds.
func (r *Report) TotalDeleted() int {
	total := 0
	for _, k := range r.Kinds {
		total += len(k.Deleted)
	}
	return total
}

// Err returns every failure of the pass as a *PassError, or nil when the
// pass succeeded completely.
func (r *Report) Err() error {
	passErr := &PassError{}
	passErr.Add(r.groundTruthErr)
	for _, k := range r.Kinds {
		passErr.Add(k.Err)
	}
	if !passErr.HasErrors() {
		return nil
	}
	return passErr
}

// Aborted reports whether the pass stopped before touching any resource.
func (r *Report) Aborted() bool {
	return r.State == StateAbortedNoAction
}

// IsGroundTruthFailure reports whether err stems from a failed ground truth
// collection.
func IsGroundTruthFailure(err error) bool {
	var gtErr *GroundTruthError
	return errors.As(err, &gtErr)
}
