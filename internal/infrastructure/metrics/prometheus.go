// Package metrics exposes the operational counters of the checklist service
// to Prometheus.
package metrics

import (
	"net/http"

	"frota_checklist/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "frota_checklist"

// Recorder implements interfaces.IMetricsRecorder on a dedicated registry.
type Recorder struct {
	registry *prometheus.Registry

	wizardTransitions *prometheus.CounterVec
	finalized         *prometheus.CounterVec
	draftSaves        *prometheus.CounterVec
	blobUploads       *prometheus.CounterVec
	signedURLFailures prometheus.Counter
	reportExports     *prometheus.CounterVec
}

var _ interfaces.IMetricsRecorder = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		wizardTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_transitions_total",
			Help:      "Wizard step transitions by target step.",
		}, []string{"step"}),
		finalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checklist_finalize_total",
			Help:      "Finalize attempts by result.",
		}, []string{"result"}),
		draftSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draft_saves_total",
			Help:      "Draft and auto-saves by trigger and result.",
		}, []string{"trigger", "result"}),
		blobUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blob_uploads_total",
			Help:      "Files uploaded to the blob store by kind.",
		}, []string{"kind"}),
		signedURLFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signed_url_failures_total",
			Help:      "Signed URL requests that failed.",
		}),
		reportExports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_exports_total",
			Help:      "PDF exports by result.",
		}, []string{"result"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.wizardTransitions,
		r.finalized,
		r.draftSaves,
		r.blobUploads,
		r.signedURLFailures,
		r.reportExports,
	)
	return r
}

func (r *Recorder) WizardTransition(step string) {
	r.wizardTransitions.WithLabelValues(step).Inc()
}

func (r *Recorder) ChecklistFinalized(result string) {
	r.finalized.WithLabelValues(result).Inc()
}

func (r *Recorder) DraftSaved(trigger string, result string) {
	r.draftSaves.WithLabelValues(trigger, result).Inc()
}

func (r *Recorder) BlobUploaded(kind string) {
	r.blobUploads.WithLabelValues(kind).Inc()
}

func (r *Recorder) SignedURLFailed() {
	r.signedURLFailures.Inc()
}

func (r *Recorder) ReportExported(result string) {
	r.reportExports.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry is exposed for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
