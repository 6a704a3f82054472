// Package services maps Kubernetes Service lists into the row model and
// column schema shown by the services list.
package services

import (
	"fmt"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
)

// ServiceRow is the view model of one Service in the services list
type ServiceRow struct {
	Package           string
	Type              string
	ClusterIP         string
	ExternalIP        string // "" when no load balancer ingress ip is known
	Port              string // "" when the service has no ports
	CreationTimestamp time.Time
	UID               string // always lower-cased, used as the row key

	// Service is the record the row was built from. Read-only.
	Service *corev1.Service
}

// BuildRows converts a service list into rows, preserving the list order.
// A nil list yields an empty slice.
//
// Every item must carry metadata.uid; rows are keyed by it.
func BuildRows(list *corev1.ServiceList) []ServiceRow {
	if list == nil {
		return []ServiceRow{}
	}

	rows := make([]ServiceRow, 0, len(list.Items))
	for i := range list.Items {
		svc := &list.Items[i]
		rows = append(rows, ServiceRow{
			Package:           svc.Name,
			Type:              string(svc.Spec.Type),
			ClusterIP:         svc.Spec.ClusterIP,
			ExternalIP:        externalIP(svc),
			Port:              port(svc),
			CreationTimestamp: svc.CreationTimestamp.Time,
			UID:               strings.ToLower(string(svc.UID)),
			Service:           svc,
		})
	}

	return rows
}

// externalIP returns the ip of the first load balancer ingress entry.
// Additional entries are not shown.
func externalIP(svc *corev1.Service) string {
	return firstOr(svc.Status.LoadBalancer.Ingress, func(in corev1.LoadBalancerIngress) string {
		return in.IP
	}, "")
}

// port returns the first service port formatted as
// port:targetPort:nodePort/protocol. Additional ports are not shown.
func port(svc *corev1.Service) string {
	return firstOr(svc.Spec.Ports, formatPort, "")
}

func formatPort(p corev1.ServicePort) string {
	return fmt.Sprintf("%d:%s:%d/%s", p.Port, p.TargetPort.String(), p.NodePort, p.Protocol)
}

// firstOr returns get(items[0]), or def when items is empty or the value
// extracted from the first item is the zero value.
func firstOr[T any, V comparable](items []T, get func(T) V, def V) V {
	if len(items) == 0 {
		return def
	}

	var zero V
	if v := get(items[0]); v != zero {
		return v
	}
	return def
}
