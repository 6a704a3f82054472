package workloads

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/renato0307/kdash/internal/k8s"
)

// failingFetcher fails the pod and daemon set lists and delegates the rest
type failingFetcher struct {
	k8s.Fetcher
}

func (f failingFetcher) ListPods(context.Context, string) (*corev1.PodList, error) {
	return nil, errors.New("pods are forbidden")
}

func (f failingFetcher) ListDaemonSets(context.Context, string) (*appsv1.DaemonSetList, error) {
	return nil, errors.New("daemonsets are forbidden")
}

func staticFetcher(t *testing.T) *k8s.FixtureFetcher {
	t.Helper()

	pod := corev1.Pod{}
	pod.Namespace = "default"
	pod.Status.Phase = corev1.PodRunning

	f, err := k8s.NewStaticFetcher(
		&appsv1.DeploymentList{Items: []appsv1.Deployment{{}}},
		&appsv1.ReplicaSetList{Items: []appsv1.ReplicaSet{{}, {}}},
		&appsv1.DaemonSetList{Items: []appsv1.DaemonSet{{}}},
		&appsv1.StatefulSetList{Items: []appsv1.StatefulSet{{}}},
		&corev1.PodList{Items: []corev1.Pod{pod}},
	)
	require.NoError(t, err)
	return f
}

func TestSync_PublishesEveryKind(t *testing.T) {
	actions := NewActions()
	s := NewStore(actions)

	err := Sync(context.Background(), staticFetcher(t), actions, "")
	require.NoError(t, err)

	for _, summary := range s.Summaries() {
		assert.True(t, summary.Fetched, "kind %s", summary.Kind)
	}
	rs, _ := s.Get(k8s.KindReplicaSet)
	assert.Equal(t, 2, rs.Total)
}

func TestSync_PartialFailure(t *testing.T) {
	actions := NewActions()
	s := NewStore(actions)

	err := Sync(context.Background(), failingFetcher{staticFetcher(t)}, actions, "default")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pods are forbidden")
	assert.Contains(t, err.Error(), "daemonsets are forbidden")

	_, ok := s.Get(k8s.KindPod)
	assert.False(t, ok, "failed kinds are not published")
	_, ok = s.Get(k8s.KindDaemonSet)
	assert.False(t, ok)

	deploys, ok := s.Get(k8s.KindDeployment)
	require.True(t, ok)
	assert.Equal(t, 1, deploys.Total)
}

func TestFetch_NamespaceFilter(t *testing.T) {
	fetched, err := Fetch(context.Background(), staticFetcher(t), "default")
	require.NoError(t, err)

	require.NotNil(t, fetched.Pods)
	assert.Len(t, fetched.Pods.Items, 1)
	require.NotNil(t, fetched.Deployments)
	assert.Empty(t, fetched.Deployments.Items, "deployment fixture has no namespace")
}

func TestFetched_PublishSkipsNil(t *testing.T) {
	actions := NewActions()

	published := 0
	actions.PodsFetched().Subscribe(func(*corev1.PodList) { published++ })

	Fetched{}.Publish(actions)

	assert.Equal(t, 0, published)
}
