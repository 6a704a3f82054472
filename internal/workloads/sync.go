package workloads

import (
	"context"
	"errors"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/renato0307/kdash/internal/k8s"
	"github.com/renato0307/kdash/internal/logging"
)

// Fetched holds the workload lists of one fetch round. A nil list means the
// kind failed to load.
type Fetched struct {
	Deployments  *appsv1.DeploymentList
	ReplicaSets  *appsv1.ReplicaSetList
	DaemonSets   *appsv1.DaemonSetList
	StatefulSets *appsv1.StatefulSetList
	Pods         *corev1.PodList
}

// Fetch lists every workload kind in namespace. A failing kind does not stop
// the others; all failures are joined into the returned error.
func Fetch(ctx context.Context, fetcher k8s.Fetcher, namespace string) (Fetched, error) {
	var fetched Fetched
	var errs []error

	track := func(kind k8s.ResourceKind, err error) {
		if err != nil {
			logging.Warn("failed to fetch workloads", "kind", kind, "namespace", namespace, "error", err)
			errs = append(errs, err)
		}
	}

	var err error
	fetched.Deployments, err = fetcher.ListDeployments(ctx, namespace)
	track(k8s.KindDeployment, err)
	fetched.ReplicaSets, err = fetcher.ListReplicaSets(ctx, namespace)
	track(k8s.KindReplicaSet, err)
	fetched.DaemonSets, err = fetcher.ListDaemonSets(ctx, namespace)
	track(k8s.KindDaemonSet, err)
	fetched.StatefulSets, err = fetcher.ListStatefulSets(ctx, namespace)
	track(k8s.KindStatefulSet, err)
	fetched.Pods, err = fetcher.ListPods(ctx, namespace)
	track(k8s.KindPod, err)

	return fetched, errors.Join(errs...)
}

// Publish announces every non-nil list on its slot
func (f Fetched) Publish(actions *Actions) {
	if f.Deployments != nil {
		actions.DeploymentsFetched().Publish(f.Deployments)
	}
	if f.ReplicaSets != nil {
		actions.ReplicaSetsFetched().Publish(f.ReplicaSets)
	}
	if f.DaemonSets != nil {
		actions.DaemonSetsFetched().Publish(f.DaemonSets)
	}
	if f.StatefulSets != nil {
		actions.StatefulSetsFetched().Publish(f.StatefulSets)
	}
	if f.Pods != nil {
		actions.PodsFetched().Publish(f.Pods)
	}
}

// Sync fetches all workload kinds and publishes what loaded
func Sync(ctx context.Context, fetcher k8s.Fetcher, actions *Actions, namespace string) error {
	var fetched Fetched
	var err error
	logging.Time("sync workloads", func() {
		fetched, err = Fetch(ctx, fetcher, namespace)
	})
	fetched.Publish(actions)
	return err
}
