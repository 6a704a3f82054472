package workloads

import (
	"sync"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/renato0307/kdash/internal/flux"
	"github.com/renato0307/kdash/internal/k8s"
	"github.com/renato0307/kdash/internal/logging"
)

// Summary describes the last fetched list of one workload kind
type Summary struct {
	Kind      k8s.ResourceKind `json:"kind"`
	Fetched   bool             `json:"fetched"`
	Total     int              `json:"total"`
	Ready     int              `json:"ready"`
	FetchedAt time.Time        `json:"fetchedAt,omitzero"`
}

// Store keeps a summary of the latest list published for each workload kind.
// It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	summaries map[k8s.ResourceKind]Summary
	now       func() time.Time

	unsubscribe []func()
}

// NewStore subscribes a new store to every slot of actions
func NewStore(actions *Actions) *Store {
	s := &Store{
		summaries: make(map[k8s.ResourceKind]Summary),
		now:       time.Now,
	}

	s.unsubscribe = []func(){
		subscribe(actions.DeploymentsFetched(), func(l *appsv1.DeploymentList) {
			s.record(k8s.KindDeployment, len(l.Items), countReady(l.Items, deploymentReady))
		}),
		subscribe(actions.ReplicaSetsFetched(), func(l *appsv1.ReplicaSetList) {
			s.record(k8s.KindReplicaSet, len(l.Items), countReady(l.Items, replicaSetReady))
		}),
		subscribe(actions.DaemonSetsFetched(), func(l *appsv1.DaemonSetList) {
			s.record(k8s.KindDaemonSet, len(l.Items), countReady(l.Items, daemonSetReady))
		}),
		subscribe(actions.StatefulSetsFetched(), func(l *appsv1.StatefulSetList) {
			s.record(k8s.KindStatefulSet, len(l.Items), countReady(l.Items, statefulSetReady))
		}),
		subscribe(actions.PodsFetched(), func(l *corev1.PodList) {
			s.record(k8s.KindPod, len(l.Items), countReady(l.Items, podReady))
		}),
	}

	return s
}

// subscribe registers handler for non-nil payloads and returns its unsubscribe func
func subscribe[L any](action *flux.Action[*L], handler func(*L)) func() {
	sub := action.Subscribe(func(l *L) {
		if l != nil {
			handler(l)
		}
	})
	return func() { action.Unsubscribe(sub) }
}

func (s *Store) record(kind k8s.ResourceKind, total, ready int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summaries[kind] = Summary{
		Kind:      kind,
		Fetched:   true,
		Total:     total,
		Ready:     ready,
		FetchedAt: s.now(),
	}
	logging.Debug("workloads updated", "kind", kind, "total", total, "ready", ready)
}

// Summaries returns one summary per workload kind, in k8s.WorkloadKinds order.
// Kinds never published have Fetched set to false.
func (s *Store) Summaries() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kinds := k8s.WorkloadKinds()
	result := make([]Summary, 0, len(kinds))
	for _, kind := range kinds {
		summary, ok := s.summaries[kind]
		if !ok {
			summary = Summary{Kind: kind}
		}
		result = append(result, summary)
	}
	return result
}

// Get returns the summary of one kind
func (s *Store) Get(kind k8s.ResourceKind) (Summary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.summaries[kind]
	return summary, ok
}

// Close unsubscribes the store from all slots
func (s *Store) Close() {
	for _, unsubscribe := range s.unsubscribe {
		unsubscribe()
	}
	s.unsubscribe = nil
}

func countReady[T any](items []T, ready func(*T) bool) int {
	n := 0
	for i := range items {
		if ready(&items[i]) {
			n++
		}
	}
	return n
}

func desiredReplicas(replicas *int32) int32 {
	if replicas == nil {
		return 1
	}
	return *replicas
}

func deploymentReady(d *appsv1.Deployment) bool {
	return d.Status.ReadyReplicas >= desiredReplicas(d.Spec.Replicas)
}

func replicaSetReady(rs *appsv1.ReplicaSet) bool {
	return rs.Status.ReadyReplicas >= desiredReplicas(rs.Spec.Replicas)
}

func daemonSetReady(ds *appsv1.DaemonSet) bool {
	return ds.Status.NumberReady >= ds.Status.DesiredNumberScheduled
}

func statefulSetReady(ss *appsv1.StatefulSet) bool {
	return ss.Status.ReadyReplicas >= desiredReplicas(ss.Spec.Replicas)
}

func podReady(p *corev1.Pod) bool {
	return p.Status.Phase == corev1.PodRunning || p.Status.Phase == corev1.PodSucceeded
}
