// Package metrics turns janitor pass reports into prometheus metrics.
//
// The janitor is a periodic job, so metrics are gauges describing the most
// recent pass. They live in a private registry and are written to a file for
// the node exporter textfile collector rather than served over HTTP.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/janitor/internal/janitor"
)

const namespace = "janitor"

// Failure stages.
const (
	StageScan   = "scan"
	StageDelete = "delete"
	StageSubmit = "submit"
)

// Recorder holds the metrics of one pass.
type Recorder struct {
	registry *prometheus.Registry

	resources       *prometheus.GaugeVec
	deleted         *prometheus.GaugeVec
	failures        *prometheus.GaugeVec
	groundTruthSize prometheus.Gauge
	duration        prometheus.Gauge
	aborted         prometheus.Gauge
	dryRun          prometheus.Gauge
	lastSuccess     prometheus.Gauge

	lastSuccessRegistered bool
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		resources: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "pass",
				Name:      "resources",
				Help:      "Resources scanned in the last pass by kind and classification",
			},
			[]string{"kind", "classification"},
		),
		deleted: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "pass",
				Name:      "deleted",
				Help:      "Resources deleted in the last pass by kind (would-be deletions in dry run)",
			},
			[]string{"kind"},
		),
		failures: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "pass",
				Name:      "failures",
				Help:      "Failures in the last pass by kind and stage",
			},
			[]string{"kind", "stage"},
		),
		groundTruthSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pass",
			Name:      "ground_truth_instances",
			Help:      "Number of live instances known to the last pass",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pass",
			Name:      "duration_seconds",
			Help:      "Duration of the last pass in seconds",
		}),
		aborted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pass",
			Name:      "aborted",
			Help:      "Whether the last pass was aborted before touching any resource (1) or not (0)",
		}),
		dryRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pass",
			Name:      "dry_run",
			Help:      "Whether the last pass ran in dry run mode (1) or not (0)",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last pass that finished without any failure",
		}),
	}

	r.registry.MustRegister(
		r.resources,
		r.deleted,
		r.failures,
		r.groundTruthSize,
		r.duration,
		r.aborted,
		r.dryRun,
	)
	return r
}

// Registry exposes the private registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records the outcome of a pass.
func (r *Recorder) Observe(report *janitor.Report) {
	r.groundTruthSize.Set(float64(report.GroundTruthSize))
	r.duration.Set(report.Duration().Seconds())
	r.aborted.Set(boolToFloat(report.Aborted()))
	r.dryRun.Set(boolToFloat(report.DryRun))

	for _, k := range report.Kinds {
		kind := string(k.Kind)
		r.resources.WithLabelValues(kind, janitor.Live.String()).Set(float64(k.Live))
		r.resources.WithLabelValues(kind, janitor.Orphaned.String()).Set(float64(k.Orphaned))
		r.resources.WithLabelValues(kind, janitor.Unrecognized.String()).Set(float64(k.Unrecognized))
		r.deleted.WithLabelValues(kind).Set(float64(len(k.Deleted)))

		scan, deleted, submit := failureStages(k)
		r.failures.WithLabelValues(kind, StageScan).Set(float64(scan))
		r.failures.WithLabelValues(kind, StageDelete).Set(float64(deleted))
		r.failures.WithLabelValues(kind, StageSubmit).Set(float64(submit))
	}

	// Only a clean pass moves the timestamp. It is registered on first use
	// so a failed pass does not report the epoch.
	if report.Err() == nil {
		if !r.lastSuccessRegistered {
			r.registry.MustRegister(r.lastSuccess)
			r.lastSuccessRegistered = true
		}
		r.lastSuccess.Set(float64(report.FinishedAt.Unix()))
	}
}

// WriteFile writes every metric to path in the text exposition format. The
// file is replaced atomically.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

func failureStages(k janitor.KindResult) (scan, deleted, submit int) {
	if k.Err == nil {
		return 0, 0, 0
	}
	var scanErr *janitor.ScanError
	if errors.As(k.Err, &scanErr) {
		scan = 1
	}
	var batchErr *janitor.BatchSubmitError
	if errors.As(k.Err, &batchErr) {
		submit = k.Failed
	} else {
		deleted = k.Failed
	}
	return scan, deleted, submit
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
