package metrics

import (
	"errors"
	"regexp"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/zimphone/phone"
)

const DefaultNamespace = "zimphone"

var (
	ErrInvalidNamespace = errors.New("metrics: invalid namespace")

	namespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

type Options struct {
	// Namespace prefixes every metric name. Defaults to DefaultNamespace.
	Namespace string
	// Registerer defaults to a fresh registry.
	Registerer prometheus.Registerer
}

// Recorder is a phone.Observer backed by prometheus counters.
type Recorder struct {
	classifications *prometheus.CounterVec
	formatFailures  *prometheus.CounterVec
}

var _ phone.Observer = (*Recorder)(nil)

func New(opts Options) (*Recorder, error) {
	ns := strings.TrimSpace(opts.Namespace)
	if ns == "" {
		ns = DefaultNamespace
	}
	if !namespacePattern.MatchString(ns) {
		return nil, ErrInvalidNamespace
	}

	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	classifications, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Name:      "classifications_total",
		Help:      "Numbers classified, by resulting type.",
	}, []string{"type"}))
	if err != nil {
		return nil, err
	}

	formatFailures, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Name:      "format_failures_total",
		Help:      "Formatting calls rejected as invalid numbers, by operation.",
	}, []string{"op"}))
	if err != nil {
		return nil, err
	}

	return &Recorder{classifications: classifications, formatFailures: formatFailures}, nil
}

// registerCounterVec reuses an identical collector that is already registered.
func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

func (r *Recorder) ObserveClassification(t phone.NumberType) {
	r.classifications.WithLabelValues(t.String()).Inc()
}

func (r *Recorder) ObserveFormatFailure(op string) {
	r.formatFailures.WithLabelValues(op).Inc()
}
