package k8s

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/renato0307/kdash/internal/logging"
	"github.com/renato0307/kdash/internal/messages"
)

// Fetcher lists the resources shown by the dashboard. An empty namespace
// lists across all namespaces.
type Fetcher interface {
	ListServices(ctx context.Context, namespace string) (*corev1.ServiceList, error)
	ListDeployments(ctx context.Context, namespace string) (*appsv1.DeploymentList, error)
	ListReplicaSets(ctx context.Context, namespace string) (*appsv1.ReplicaSetList, error)
	ListDaemonSets(ctx context.Context, namespace string) (*appsv1.DaemonSetList, error)
	ListStatefulSets(ctx context.Context, namespace string) (*appsv1.StatefulSetList, error)
	ListPods(ctx context.Context, namespace string) (*corev1.PodList, error)
}

// ClusterFetcher lists resources straight from the API server
type ClusterFetcher struct {
	client      kubernetes.Interface
	kubeconfig  string
	contextName string
}

// NewClusterFetcher connects to the cluster described by kubeconfig. An empty
// kubeconfig uses the default loading rules ($KUBECONFIG, ~/.kube/config) and
// an empty contextName uses the current context.
func NewClusterFetcher(kubeconfig, contextName string) (*ClusterFetcher, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		loadingRules.ExplicitPath = kubeconfig
	}
	configOverrides := &clientcmd.ConfigOverrides{}
	if contextName != "" {
		configOverrides.CurrentContext = contextName
	}

	clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules,
		configOverrides,
	)
	config, err := clientConfig.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("error building kubeconfig: %w", err)
	}
	if contextName == "" {
		if raw, err := clientConfig.RawConfig(); err == nil {
			contextName = raw.CurrentContext
		}
	}

	// Use protobuf for better performance
	config.ContentType = ProtobufContentType

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("error creating clientset: %w", err)
	}

	logging.Info("connected to cluster", "host", config.Host, "context", contextName)

	f := NewFetcherForClient(clientset)
	f.kubeconfig = kubeconfig
	f.contextName = contextName
	return f, nil
}

// NewFetcherForClient wraps an existing client
func NewFetcherForClient(client kubernetes.Interface) *ClusterFetcher {
	return &ClusterFetcher{client: client}
}

// GetKubeconfig returns the kubeconfig path the fetcher was built from
func (f *ClusterFetcher) GetKubeconfig() string {
	return f.kubeconfig
}

// GetContext returns the kubeconfig context the fetcher was built from,
// resolved to the current context when none was given
func (f *ClusterFetcher) GetContext() string {
	return f.contextName
}

func (f *ClusterFetcher) ListServices(ctx context.Context, namespace string) (*corev1.ServiceList, error) {
	return list(ctx, KindService, namespace, f.client.CoreV1().Services(namespace).List)
}

func (f *ClusterFetcher) ListDeployments(ctx context.Context, namespace string) (*appsv1.DeploymentList, error) {
	return list(ctx, KindDeployment, namespace, f.client.AppsV1().Deployments(namespace).List)
}

func (f *ClusterFetcher) ListReplicaSets(ctx context.Context, namespace string) (*appsv1.ReplicaSetList, error) {
	return list(ctx, KindReplicaSet, namespace, f.client.AppsV1().ReplicaSets(namespace).List)
}

func (f *ClusterFetcher) ListDaemonSets(ctx context.Context, namespace string) (*appsv1.DaemonSetList, error) {
	return list(ctx, KindDaemonSet, namespace, f.client.AppsV1().DaemonSets(namespace).List)
}

func (f *ClusterFetcher) ListStatefulSets(ctx context.Context, namespace string) (*appsv1.StatefulSetList, error) {
	return list(ctx, KindStatefulSet, namespace, f.client.AppsV1().StatefulSets(namespace).List)
}

func (f *ClusterFetcher) ListPods(ctx context.Context, namespace string) (*corev1.PodList, error) {
	return list(ctx, KindPod, namespace, f.client.CoreV1().Pods(namespace).List)
}

// list runs a typed List call bounded by ListTimeout
func list[L any](ctx context.Context, kind ResourceKind, namespace string, fn func(context.Context, metav1.ListOptions) (L, error)) (L, error) {
	ctx, cancel := context.WithTimeout(ctx, ListTimeout)
	defer cancel()

	what := string(kind)
	if gvr, ok := kind.GVR(); ok {
		what = gvr.Resource
	}

	timing := logging.Start("list " + what)
	result, err := fn(ctx, metav1.ListOptions{})
	logging.End(timing)
	if err != nil {
		var zero L
		return zero, messages.WrapError(err, "failed to list %s in namespace %q", what, namespace)
	}
	return result, nil
}
