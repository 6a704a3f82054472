package workloads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
)

func TestActions_Key(t *testing.T) {
	assert.Equal(t, "workloads-actions", NewActions().Key())
}

func TestActions_PanicsBeforeInitialize(t *testing.T) {
	var a Actions

	slots := map[string]func(){
		"deployments":  func() { a.DeploymentsFetched() },
		"replicasets":  func() { a.ReplicaSetsFetched() },
		"daemonsets":   func() { a.DaemonSetsFetched() },
		"statefulsets": func() { a.StatefulSetsFetched() },
		"pods":         func() { a.PodsFetched() },
	}

	for name, use := range slots {
		t.Run(name, func(t *testing.T) {
			assert.PanicsWithError(t, ErrNotInitialized.Error(), use)
		})
	}
}

func TestActions_InitializeAllocatesAllSlots(t *testing.T) {
	var a Actions
	a.Initialize()

	assert.NotNil(t, a.DeploymentsFetched())
	assert.NotNil(t, a.ReplicaSetsFetched())
	assert.NotNil(t, a.DaemonSetsFetched())
	assert.NotNil(t, a.StatefulSetsFetched())
	assert.NotNil(t, a.PodsFetched())
}

func TestActions_PodsPublishWithoutSubscribers(t *testing.T) {
	a := NewActions()
	published := &corev1.PodList{Items: []corev1.Pod{{}}}

	assert.NotPanics(t, func() {
		a.PodsFetched().Publish(published)
	})

	var received []*corev1.PodList
	a.PodsFetched().Subscribe(func(l *corev1.PodList) {
		received = append(received, l)
	})
	assert.Empty(t, received, "late subscribers must not see earlier payloads")
}

func TestActions_TwoSubscribersSamePayload(t *testing.T) {
	a := NewActions()
	payload := &appsv1.DeploymentList{Items: []appsv1.Deployment{{}, {}}}

	var order []string
	var first, second *appsv1.DeploymentList
	a.DeploymentsFetched().Subscribe(func(l *appsv1.DeploymentList) {
		order = append(order, "first")
		first = l
	})
	a.DeploymentsFetched().Subscribe(func(l *appsv1.DeploymentList) {
		order = append(order, "second")
		second = l
	})

	a.DeploymentsFetched().Publish(payload)

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Same(t, payload, first)
	assert.Same(t, payload, second)
}

func TestActions_SlotsAreIndependent(t *testing.T) {
	a := NewActions()

	var pods, daemonSets int
	a.PodsFetched().Subscribe(func(*corev1.PodList) { pods++ })
	a.DaemonSetsFetched().Subscribe(func(*appsv1.DaemonSetList) { daemonSets++ })

	a.PodsFetched().Publish(&corev1.PodList{})

	assert.Equal(t, 1, pods)
	assert.Equal(t, 0, daemonSets)
}

func TestActions_ReinitializeDropsSubscriptions(t *testing.T) {
	a := NewActions()

	calls := 0
	a.PodsFetched().Subscribe(func(*corev1.PodList) { calls++ })
	old := a.PodsFetched()

	a.Initialize()
	a.PodsFetched().Publish(&corev1.PodList{})

	assert.Equal(t, 0, calls)
	require.NotSame(t, old, a.PodsFetched())
	assert.Equal(t, 0, a.PodsFetched().Len())
}
