package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// WorkflowStep represents a single step in a composite workflow.
type WorkflowStep struct {
	Name    string
	Execute func(ctx context.Context) (string, error)
}

// WorkflowExecutor runs an ordered list of steps with short-circuit-on-failure
// semantics: the first failing step stops the workflow and is named in the
// error. There is no rollback, no retry, and no partial-success reporting
// beyond the accumulated progress log of the steps that completed.
type WorkflowExecutor struct {
	name  string
	steps []WorkflowStep
	log   *zap.Logger
}

// NewWorkflowExecutor creates a new workflow executor.
func NewWorkflowExecutor(name string, log *zap.Logger) *WorkflowExecutor {
	return &WorkflowExecutor{name: name, log: log}
}

// AddStep appends a step to the workflow.
func (w *WorkflowExecutor) AddStep(step WorkflowStep) {
	w.steps = append(w.steps, step)
}

// Execute runs the steps in order and returns the accumulated progress log.
// On failure the error names the failed step and its position.
func (w *WorkflowExecutor) Execute(ctx context.Context) (string, error) {
	var progress []string
	for i, step := range w.steps {
		w.log.Debug("workflow step starting",
			zap.String("workflow", w.name),
			zap.String("step", step.Name),
			zap.Int("index", i+1),
			zap.Int("total", len(w.steps)),
		)
		text, err := step.Execute(ctx)
		if err != nil {
			w.log.Debug("workflow step failed",
				zap.String("workflow", w.name),
				zap.String("step", step.Name),
				zap.Error(err),
			)
			return "", fmt.Errorf("step '%s' (%d/%d) failed: %w", step.Name, i+1, len(w.steps), err)
		}
		progress = append(progress, fmt.Sprintf("[%d/%d] %s: %s",
			i+1, len(w.steps), step.Name, firstLine(text)))
	}
	return strings.Join(progress, "\n"), nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
