// Package metrics exports dashboard figures in the Prometheus text format,
// for node_exporter's textfile collector.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/runoshun/ticktick/internal/domain"
)

const namespace = "tick"

// Exporter holds the gauges describing one dashboard summary.
// It uses its own registry so exports never include process metrics.
type Exporter struct {
	registry       *prometheus.Registry
	tasks          *prometheus.GaugeVec
	notifications  *prometheus.GaugeVec
	completionRate prometheus.Gauge
	overdue        prometheus.Gauge
	dueToday       prometheus.Gauge
	highPriority   prometheus.Gauge
	lastUpdate     prometheus.Gauge
}

// NewExporter creates an Exporter with all gauges registered.
func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		tasks: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tasks",
				Help:      "Number of tasks by status.",
			},
			[]string{"status"},
		),
		notifications: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "notifications",
				Help:      "Number of notifications by category.",
			},
			[]string{"category"},
		),
		completionRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "completion_rate_percent",
			Help:      "Rounded percentage of completed tasks.",
		}),
		overdue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks_overdue",
			Help:      "Pending tasks due before today.",
		}),
		dueToday: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks_due_today",
			Help:      "Pending tasks due today.",
		}),
		highPriority: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks_high_priority_pending",
			Help:      "High priority tasks that are not completed.",
		}),
		lastUpdate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "summary_timestamp_seconds",
			Help:      "Unix time the summary was computed at.",
		}),
	}

	e.registry.MustRegister(
		e.tasks,
		e.notifications,
		e.completionRate,
		e.overdue,
		e.dueToday,
		e.highPriority,
		e.lastUpdate,
	)
	return e
}

// Registry returns the registry the gauges are registered on.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Observe sets every gauge from s.
func (e *Exporter) Observe(s domain.Summary) {
	e.tasks.WithLabelValues(string(domain.StatusTodo)).Set(float64(s.Counts.Todo))
	e.tasks.WithLabelValues(string(domain.StatusInProgress)).Set(float64(s.Counts.InProgress))
	e.tasks.WithLabelValues(string(domain.StatusCompleted)).Set(float64(s.Counts.Completed))

	byCategory := map[domain.NotificationCategory]int{
		domain.NotifyOverdue:      0,
		domain.NotifyDueToday:     0,
		domain.NotifyDueTomorrow:  0,
		domain.NotifyHighPriority: 0,
	}
	for _, n := range s.Notifications {
		byCategory[n.Category]++
	}
	for category, count := range byCategory {
		e.notifications.WithLabelValues(string(category)).Set(float64(count))
	}

	e.completionRate.Set(float64(s.CompletionRate))
	e.overdue.Set(float64(len(s.Overdue)))
	e.dueToday.Set(float64(len(s.DueToday)))
	e.highPriority.Set(float64(len(s.HighPriorityPending)))
	e.lastUpdate.Set(float64(s.Now.Unix()))
}

// WriteTextfile writes the current gauge values to path atomically.
func (e *Exporter) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create textfile directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return fmt.Errorf("write textfile: %w", err)
	}
	return nil
}
