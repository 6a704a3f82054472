package components

import (
	"fmt"
	"strings"

	"github.com/renato0307/kdash/internal/k8s"
	"github.com/renato0307/kdash/internal/resources"
	"github.com/renato0307/kdash/internal/ui"
	"github.com/renato0307/kdash/internal/workloads"
)

var kindTitles = map[k8s.ResourceKind]string{
	k8s.KindDeployment:  resources.DeploymentsText,
	k8s.KindReplicaSet:  resources.ReplicaSetsText,
	k8s.KindDaemonSet:   resources.DaemonSetsText,
	k8s.KindStatefulSet: resources.StatefulSetsText,
	k8s.KindPod:         resources.PodsText,
}

// WorkloadsSummary renders one line with the ready/total counts of each
// workload kind
type WorkloadsSummary struct {
	summaries []workloads.Summary
	width     int
	theme     *ui.Theme
}

func NewWorkloadsSummary(theme *ui.Theme) *WorkloadsSummary {
	return &WorkloadsSummary{theme: theme}
}

// SetSummaries replaces the summaries shown
func (s *WorkloadsSummary) SetSummaries(summaries []workloads.Summary) {
	s.summaries = summaries
}

func (s *WorkloadsSummary) SetWidth(width int) {
	s.width = width
}

// Text returns the unstyled summary line
func (s *WorkloadsSummary) Text() string {
	parts := make([]string, 0, len(s.summaries))
	for _, summary := range s.summaries {
		parts = append(parts, fmt.Sprintf("%s %s", kindTitles[summary.Kind], counts(summary)))
	}
	return resources.WorkloadsText + ": " + strings.Join(parts, " · ")
}

func (s *WorkloadsSummary) View() string {
	return s.theme.Summary.Width(s.width).Render(s.Text())
}

func counts(summary workloads.Summary) string {
	if !summary.Fetched {
		return resources.NotFetchedText
	}
	return fmt.Sprintf("%d/%d", summary.Ready, summary.Total)
}
