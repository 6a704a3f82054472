// Package resources holds the user-facing strings shown by the dashboard.
package resources

// Services list
const (
	ServicesDetailsText = "Services"
	PackageText         = "Package"
	TypeText            = "Type"
	ClusterIPText       = "Cluster IP"
	ExternalIPText      = "External IP"
	PortText            = "Port(s)"
	AgeText             = "Age"
)

// Workloads summary
const (
	WorkloadsText    = "Workloads"
	DeploymentsText  = "Deployments"
	ReplicaSetsText  = "Replica sets"
	DaemonSetsText   = "Daemon sets"
	StatefulSetsText = "Stateful sets"
	PodsText         = "Pods"
	NotFetchedText   = "-"
)
