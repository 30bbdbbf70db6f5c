package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/ticktick/internal/domain"
)

// ExportMetricsInput contains the parameters for exporting metrics.
type ExportMetricsInput struct {
	Path string // Textfile path; empty only records the values
}

// ExportMetricsOutput contains the summary that was exported.
type ExportMetricsOutput struct {
	Summary domain.Summary
}

// ExportMetrics is the use case for publishing dashboard values as metrics.
type ExportMetrics struct {
	tasks    domain.TaskRepository
	clock    domain.Clock
	exporter domain.MetricsExporter
	opts     domain.SummaryOptions
}

// NewExportMetrics creates a new ExportMetrics use case.
func NewExportMetrics(tasks domain.TaskRepository, clock domain.Clock, exporter domain.MetricsExporter, opts domain.SummaryOptions) *ExportMetrics {
	return &ExportMetrics{
		tasks:    tasks,
		clock:    clock,
		exporter: exporter,
		opts:     opts,
	}
}

// Execute computes the summary, records it and writes the textfile.
func (uc *ExportMetrics) Execute(_ context.Context, in ExportMetricsInput) (*ExportMetricsOutput, error) {
	tasks, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	summary := domain.Summarize(tasks, uc.clock.Now(), uc.opts)
	uc.exporter.Observe(summary)

	if in.Path != "" {
		if err := uc.exporter.WriteTextfile(in.Path); err != nil {
			return nil, err
		}
	}
	return &ExportMetricsOutput{Summary: summary}, nil
}
