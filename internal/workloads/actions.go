// Package workloads announces fetched workload lists (deployments, replica
// sets, daemon sets, stateful sets and pods) and keeps a summary of them.
package workloads

import (
	"errors"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/renato0307/kdash/internal/flux"
)

// ActionsKey identifies the workloads actions hub
const ActionsKey = "workloads-actions"

// ErrNotInitialized is the panic value when a slot is used before Initialize
var ErrNotInitialized = errors.New("workloads actions used before Initialize")

// Actions holds one "fetched" slot per workload kind. Fetch routines publish
// on the slots and stores subscribe to them.
//
// Initialize must be called once before any slot is used. Calling it again
// replaces every slot and silently drops existing subscriptions.
type Actions struct {
	deploymentsFetched  *flux.Action[*appsv1.DeploymentList]
	replicaSetsFetched  *flux.Action[*appsv1.ReplicaSetList]
	daemonSetsFetched   *flux.Action[*appsv1.DaemonSetList]
	statefulSetsFetched *flux.Action[*appsv1.StatefulSetList]
	podsFetched         *flux.Action[*corev1.PodList]
}

// NewActions returns an initialized hub
func NewActions() *Actions {
	a := &Actions{}
	a.Initialize()
	return a
}

// Key returns ActionsKey
func (a *Actions) Key() string {
	return ActionsKey
}

// Initialize allocates all slots
func (a *Actions) Initialize() {
	a.deploymentsFetched = flux.NewAction[*appsv1.DeploymentList]()
	a.replicaSetsFetched = flux.NewAction[*appsv1.ReplicaSetList]()
	a.daemonSetsFetched = flux.NewAction[*appsv1.DaemonSetList]()
	a.statefulSetsFetched = flux.NewAction[*appsv1.StatefulSetList]()
	a.podsFetched = flux.NewAction[*corev1.PodList]()
}

func (a *Actions) DeploymentsFetched() *flux.Action[*appsv1.DeploymentList] {
	return mustInit(a.deploymentsFetched)
}

func (a *Actions) ReplicaSetsFetched() *flux.Action[*appsv1.ReplicaSetList] {
	return mustInit(a.replicaSetsFetched)
}

func (a *Actions) DaemonSetsFetched() *flux.Action[*appsv1.DaemonSetList] {
	return mustInit(a.daemonSetsFetched)
}

func (a *Actions) StatefulSetsFetched() *flux.Action[*appsv1.StatefulSetList] {
	return mustInit(a.statefulSetsFetched)
}

func (a *Actions) PodsFetched() *flux.Action[*corev1.PodList] {
	return mustInit(a.podsFetched)
}

func mustInit[T any](action *flux.Action[T]) *flux.Action[T] {
	if action == nil {
		panic(ErrNotInitialized)
	}
	return action
}
