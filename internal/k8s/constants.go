package k8s

import "time"

// Kubernetes client constants
const (
	// ListTimeout bounds a single list call against the API server. Large
	// clusters can return thousands of pods, so this is generous compared to a
	// UI refresh interval.
	ListTimeout = 30 * time.Second

	// ProtobufContentType is requested from the API server for list calls.
	ProtobufContentType = "application/vnd.kubernetes.protobuf"
)
