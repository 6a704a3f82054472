package k8s

import "k8s.io/apimachinery/pkg/runtime/schema"

// ResourceKind identifies a Kubernetes resource kind shown by the dashboard
type ResourceKind string

const (
	KindService     ResourceKind = "Service"
	KindDeployment  ResourceKind = "Deployment"
	KindReplicaSet  ResourceKind = "ReplicaSet"
	KindDaemonSet   ResourceKind = "DaemonSet"
	KindStatefulSet ResourceKind = "StatefulSet"
	KindPod         ResourceKind = "Pod"
)

var kindGVRs = map[ResourceKind]schema.GroupVersionResource{
	KindService:     {Group: "", Version: "v1", Resource: "services"},
	KindDeployment:  {Group: "apps", Version: "v1", Resource: "deployments"},
	KindReplicaSet:  {Group: "apps", Version: "v1", Resource: "replicasets"},
	KindDaemonSet:   {Group: "apps", Version: "v1", Resource: "daemonsets"},
	KindStatefulSet: {Group: "apps", Version: "v1", Resource: "statefulsets"},
	KindPod:         {Group: "", Version: "v1", Resource: "pods"},
}

// WorkloadKinds returns the workload kinds in display order
func WorkloadKinds() []ResourceKind {
	return []ResourceKind{KindDeployment, KindReplicaSet, KindDaemonSet, KindStatefulSet, KindPod}
}

// GVR returns the GroupVersionResource for the kind
func (k ResourceKind) GVR() (schema.GroupVersionResource, bool) {
	gvr, ok := kindGVRs[k]
	return gvr, ok
}

// ListKind returns the kind of the list object holding k, e.g. "PodList"
func (k ResourceKind) ListKind() string {
	return string(k) + "List"
}

// KindForListKind maps a list kind such as "ServiceList" back to its item kind
func KindForListKind(listKind string) (ResourceKind, bool) {
	for kind := range kindGVRs {
		if kind.ListKind() == listKind {
			return kind, true
		}
	}
	return "", false
}
