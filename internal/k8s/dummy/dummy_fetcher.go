// Package dummy provides fake cluster data for running the dashboard without
// a cluster.
package dummy

import (
	"strings"
	"time"

	"github.com/google/uuid"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/renato0307/kdash/internal/k8s"
)

// NewFetcher returns a fetcher serving a small, fixed set of fake resources.
// UIDs are random and upper-cased, like some API servers in the wild return.
func NewFetcher() *k8s.FixtureFetcher {
	now := time.Now()

	f, err := k8s.NewStaticFetcher(
		services(now),
		deployments(now),
		replicaSets(now),
		daemonSets(now),
		statefulSets(now),
		pods(now),
	)
	if err != nil {
		// Only reachable if the lists above are of an unsupported type
		panic(err)
	}
	return f
}

func meta(namespace, name string, age time.Duration, now time.Time) metav1.ObjectMeta {
	return metav1.ObjectMeta{
		Namespace:         namespace,
		Name:              name,
		UID:               types.UID(strings.ToUpper(uuid.NewString())),
		CreationTimestamp: metav1.NewTime(now.Add(-age)),
	}
}

func services(now time.Time) *corev1.ServiceList {
	return &corev1.ServiceList{
		Items: []corev1.Service{
			{
				ObjectMeta: meta("default", "kubernetes", 30*24*time.Hour, now),
				Spec: corev1.ServiceSpec{
					Type:      corev1.ServiceTypeClusterIP,
					ClusterIP: "10.96.0.1",
					Ports: []corev1.ServicePort{
						{Port: 443, TargetPort: intstr.FromInt32(6443), Protocol: corev1.ProtocolTCP},
					},
				},
			},
			{
				ObjectMeta: meta("default", "nginx", 24*time.Hour, now),
				Spec: corev1.ServiceSpec{
					Type:      corev1.ServiceTypeLoadBalancer,
					ClusterIP: "10.96.12.40",
					Ports: []corev1.ServicePort{
						{Port: 80, TargetPort: intstr.FromInt32(8080), NodePort: 30080, Protocol: corev1.ProtocolTCP},
						{Port: 443, TargetPort: intstr.FromInt32(8443), NodePort: 30443, Protocol: corev1.ProtocolTCP},
					},
				},
				Status: corev1.ServiceStatus{
					LoadBalancer: corev1.LoadBalancerStatus{
						Ingress: []corev1.LoadBalancerIngress{{IP: "34.120.8.17"}},
					},
				},
			},
			{
				ObjectMeta: meta("kube-system", "kube-dns", 30*24*time.Hour, now),
				Spec: corev1.ServiceSpec{
					Type:      corev1.ServiceTypeClusterIP,
					ClusterIP: "10.96.0.10",
					Ports: []corev1.ServicePort{
						{Name: "dns", Port: 53, TargetPort: intstr.FromString("dns"), Protocol: corev1.ProtocolUDP},
						{Name: "dns-tcp", Port: 53, TargetPort: intstr.FromString("dns-tcp"), Protocol: corev1.ProtocolTCP},
					},
				},
			},
			{
				ObjectMeta: meta("production", "api-gateway", 3*time.Hour, now),
				Spec: corev1.ServiceSpec{
					Type:      corev1.ServiceTypeNodePort,
					ClusterIP: "10.96.80.3",
					Ports: []corev1.ServicePort{
						{Port: 8080, TargetPort: intstr.FromInt32(8080), NodePort: 31080, Protocol: corev1.ProtocolTCP},
					},
				},
			},
			{
				ObjectMeta: meta("production", "payments-db", 45*time.Minute, now),
				Spec: corev1.ServiceSpec{
					Type:         corev1.ServiceTypeExternalName,
					ExternalName: "payments.db.internal",
				},
			},
		},
	}
}

func deployments(now time.Time) *appsv1.DeploymentList {
	return &appsv1.DeploymentList{
		Items: []appsv1.Deployment{
			deployment(meta("default", "nginx", 24*time.Hour, now), 3, 3),
			deployment(meta("kube-system", "coredns", 30*24*time.Hour, now), 2, 2),
			deployment(meta("production", "api-gateway", 3*time.Hour, now), 2, 1),
		},
	}
}

func deployment(m metav1.ObjectMeta, desired, ready int32) appsv1.Deployment {
	return appsv1.Deployment{
		ObjectMeta: m,
		Spec:       appsv1.DeploymentSpec{Replicas: &desired},
		Status:     appsv1.DeploymentStatus{Replicas: desired, ReadyReplicas: ready, AvailableReplicas: ready},
	}
}

func replicaSets(now time.Time) *appsv1.ReplicaSetList {
	return &appsv1.ReplicaSetList{
		Items: []appsv1.ReplicaSet{
			replicaSet(meta("default", "nginx-7d64f8d9c8", 24*time.Hour, now), 3, 3),
			replicaSet(meta("kube-system", "coredns-5d78c9869d", 30*24*time.Hour, now), 2, 2),
			replicaSet(meta("production", "api-gateway-6b9f8c7d5e", 3*time.Hour, now), 2, 1),
		},
	}
}

func replicaSet(m metav1.ObjectMeta, desired, ready int32) appsv1.ReplicaSet {
	return appsv1.ReplicaSet{
		ObjectMeta: m,
		Spec:       appsv1.ReplicaSetSpec{Replicas: &desired},
		Status:     appsv1.ReplicaSetStatus{Replicas: desired, ReadyReplicas: ready},
	}
}

func daemonSets(now time.Time) *appsv1.DaemonSetList {
	return &appsv1.DaemonSetList{
		Items: []appsv1.DaemonSet{
			{
				ObjectMeta: meta("kube-system", "kube-proxy", 30*24*time.Hour, now),
				Status:     appsv1.DaemonSetStatus{DesiredNumberScheduled: 3, NumberReady: 3},
			},
		},
	}
}

func statefulSets(now time.Time) *appsv1.StatefulSetList {
	replicas := int32(3)
	return &appsv1.StatefulSetList{
		Items: []appsv1.StatefulSet{
			{
				ObjectMeta: meta("production", "postgres", 10*24*time.Hour, now),
				Spec:       appsv1.StatefulSetSpec{Replicas: &replicas},
				Status:     appsv1.StatefulSetStatus{Replicas: replicas, ReadyReplicas: replicas},
			},
		},
	}
}

func pods(now time.Time) *corev1.PodList {
	return &corev1.PodList{
		Items: []corev1.Pod{
			pod(meta("default", "nginx-7d64f8d9c8-abc12", 24*time.Hour, now), corev1.PodRunning),
			pod(meta("default", "nginx-7d64f8d9c8-def34", 24*time.Hour, now), corev1.PodRunning),
			pod(meta("default", "nginx-7d64f8d9c8-ghi56", 24*time.Hour, now), corev1.PodRunning),
			pod(meta("kube-system", "coredns-5d78c9869d-xyz89", 30*24*time.Hour, now), corev1.PodRunning),
			pod(meta("production", "api-gateway-6b9f8c7d5e-qwert", 3*time.Hour, now), corev1.PodRunning),
			pod(meta("production", "api-gateway-6b9f8c7d5e-asdfg", 10*time.Minute, now), corev1.PodPending),
			pod(meta("production", "postgres-0", 10*24*time.Hour, now), corev1.PodRunning),
		},
	}
}

func pod(m metav1.ObjectMeta, phase corev1.PodPhase) corev1.Pod {
	return corev1.Pod{
		ObjectMeta: m,
		Status:     corev1.PodStatus{Phase: phase},
	}
}
