package k8s

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
)

func objectMeta(namespace, name string) metav1.ObjectMeta {
	return metav1.ObjectMeta{Namespace: namespace, Name: name, UID: types.UID(namespace + "-" + name)}
}

func TestClusterFetcher_Lists(t *testing.T) {
	client := fake.NewClientset(
		&corev1.Service{ObjectMeta: objectMeta("default", "web")},
		&corev1.Service{ObjectMeta: objectMeta("prod", "api")},
		&appsv1.Deployment{ObjectMeta: objectMeta("default", "web")},
		&appsv1.ReplicaSet{ObjectMeta: objectMeta("default", "web-abc")},
		&appsv1.DaemonSet{ObjectMeta: objectMeta("kube-system", "proxy")},
		&appsv1.StatefulSet{ObjectMeta: objectMeta("prod", "db")},
		&corev1.Pod{ObjectMeta: objectMeta("default", "web-abc-1")},
		&corev1.Pod{ObjectMeta: objectMeta("prod", "db-0")},
	)
	f := NewFetcherForClient(client)
	ctx := context.Background()

	svcs, err := f.ListServices(ctx, "")
	require.NoError(t, err)
	assert.Len(t, svcs.Items, 2)

	svcs, err = f.ListServices(ctx, "prod")
	require.NoError(t, err)
	require.Len(t, svcs.Items, 1)
	assert.Equal(t, "api", svcs.Items[0].Name)

	deploys, err := f.ListDeployments(ctx, "")
	require.NoError(t, err)
	assert.Len(t, deploys.Items, 1)

	rss, err := f.ListReplicaSets(ctx, "")
	require.NoError(t, err)
	assert.Len(t, rss.Items, 1)

	dss, err := f.ListDaemonSets(ctx, "")
	require.NoError(t, err)
	assert.Len(t, dss.Items, 1)

	sss, err := f.ListStatefulSets(ctx, "")
	require.NoError(t, err)
	assert.Len(t, sss.Items, 1)

	pods, err := f.ListPods(ctx, "")
	require.NoError(t, err)
	assert.Len(t, pods.Items, 2)
}

func TestClusterFetcher_ListError(t *testing.T) {
	client := fake.NewClientset()
	client.PrependReactor("list", "pods", func(action k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, errors.New("pods is forbidden")
	})
	f := NewFetcherForClient(client)

	pods, err := f.ListPods(context.Background(), "prod")

	require.Error(t, err)
	assert.Nil(t, pods)
	assert.Contains(t, err.Error(), `failed to list pods in namespace "prod"`)
	assert.Contains(t, err.Error(), "pods is forbidden")
}

func TestClusterFetcher_ListErrorNamesResource(t *testing.T) {
	client := fake.NewClientset()
	client.PrependReactor("list", "replicasets", func(action k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, errors.New("replicasets is forbidden")
	})
	f := NewFetcherForClient(client)

	_, err := f.ListReplicaSets(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to list replicasets in namespace ""`)
}

func TestNewClusterFetcher_MissingKubeconfig(t *testing.T) {
	_, err := NewClusterFetcher("/nonexistent/kubeconfig", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error building kubeconfig")
}

const testKubeconfig = `apiVersion: v1
kind: Config
clusters:
- name: dev
  cluster:
    server: https://127.0.0.1:6443
- name: prod
  cluster:
    server: https://10.0.0.1:6443
users:
- name: admin
  user:
    token: secret
contexts:
- name: dev
  context:
    cluster: dev
    user: admin
- name: prod
  context:
    cluster: prod
    user: admin
current-context: dev
`

func TestNewClusterFetcher_ResolvesContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(testKubeconfig), 0o600))

	tests := []struct {
		name        string
		contextName string
		want        string
	}{
		{"current context", "", "dev"},
		{"explicit context", "prod", "prod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewClusterFetcher(path, tt.contextName)
			require.NoError(t, err)

			assert.Equal(t, tt.want, f.GetContext())
			assert.Equal(t, path, f.GetKubeconfig())
		})
	}
}
