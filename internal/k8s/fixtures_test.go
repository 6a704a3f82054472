package k8s

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
)

const fixturesYAML = `apiVersion: v1
kind: ServiceList
items:
- metadata:
    name: web
    namespace: default
    uid: 0F8E2A3C-AAAA-BBBB-CCCC-000000000001
    creationTimestamp: "2024-05-01T10:00:00Z"
  spec:
    type: LoadBalancer
    clusterIP: 10.0.0.1
    ports:
    - port: 80
      targetPort: 8080
      nodePort: 30080
      protocol: TCP
  status:
    loadBalancer:
      ingress:
      - ip: 34.1.2.3
- metadata:
    name: db
    namespace: prod
    uid: 0F8E2A3C-AAAA-BBBB-CCCC-000000000002
  spec:
    type: ClusterIP
    clusterIP: 10.0.0.2
---
apiVersion: v1
kind: PodList
items:
- metadata:
    name: web-1
    namespace: default
  status:
    phase: Running
---
apiVersion: apps/v1
kind: DeploymentList
items:
- metadata:
    name: web
    namespace: default
  spec:
    replicas: 2
`

func TestLoadFixtures(t *testing.T) {
	f, err := LoadFixtures(strings.NewReader(fixturesYAML))
	require.NoError(t, err)
	ctx := context.Background()

	svcs, err := f.ListServices(ctx, "")
	require.NoError(t, err)
	require.Len(t, svcs.Items, 2)

	web := svcs.Items[0]
	assert.Equal(t, "web", web.Name)
	assert.Equal(t, corev1.ServiceTypeLoadBalancer, web.Spec.Type)
	require.Len(t, web.Spec.Ports, 1)
	assert.Equal(t, int32(80), web.Spec.Ports[0].Port)
	assert.Equal(t, "8080", web.Spec.Ports[0].TargetPort.String())
	assert.Equal(t, int32(30080), web.Spec.Ports[0].NodePort)
	require.Len(t, web.Status.LoadBalancer.Ingress, 1)
	assert.Equal(t, "34.1.2.3", web.Status.LoadBalancer.Ingress[0].IP)
	assert.Equal(t, 2024, web.CreationTimestamp.Year())

	pods, err := f.ListPods(ctx, "")
	require.NoError(t, err)
	require.Len(t, pods.Items, 1)
	assert.Equal(t, corev1.PodRunning, pods.Items[0].Status.Phase)

	deploys, err := f.ListDeployments(ctx, "")
	require.NoError(t, err)
	require.Len(t, deploys.Items, 1)
	require.NotNil(t, deploys.Items[0].Spec.Replicas)
	assert.Equal(t, int32(2), *deploys.Items[0].Spec.Replicas)

	// Kinds missing from the file are empty
	sss, err := f.ListStatefulSets(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, sss.Items)
}

func TestLoadFixtures_NamespaceFilter(t *testing.T) {
	f, err := LoadFixtures(strings.NewReader(fixturesYAML))
	require.NoError(t, err)

	svcs, err := f.ListServices(context.Background(), "prod")
	require.NoError(t, err)
	require.Len(t, svcs.Items, 1)
	assert.Equal(t, "db", svcs.Items[0].Name)

	svcs, err = f.ListServices(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, svcs.Items)
}

func TestLoadFixtures_ReturnsCopies(t *testing.T) {
	f, err := LoadFixtures(strings.NewReader(fixturesYAML))
	require.NoError(t, err)

	svcs, err := f.ListServices(context.Background(), "")
	require.NoError(t, err)
	svcs.Items[0].Name = "mutated"

	again, err := f.ListServices(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "web", again.Items[0].Name)
}

func TestLoadFixtures_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errText string
	}{
		{
			name:    "unsupported kind",
			input:   "apiVersion: v1\nkind: ConfigMapList\nitems: []\n",
			errText: `unsupported kind "ConfigMapList"`,
		},
		{
			name:    "invalid yaml",
			input:   "kind: ServiceList\nitems: [\n",
			errText: "document 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFixtures(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadFixtures_EmptyDocuments(t *testing.T) {
	f, err := LoadFixtures(strings.NewReader("---\n---\n"))
	require.NoError(t, err)

	svcs, err := f.ListServices(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, svcs.Items)
}

func TestNewFixtureFetcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixturesYAML), 0o600))

	f, err := NewFixtureFetcher(path)
	require.NoError(t, err)

	pods, err := f.ListPods(context.Background(), "default")
	require.NoError(t, err)
	assert.Len(t, pods.Items, 1)

	_, err = NewFixtureFetcher(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewStaticFetcher(t *testing.T) {
	list := &corev1.ServiceList{Items: []corev1.Service{{}}}
	list.Items[0].Name = "web"

	f, err := NewStaticFetcher(list)
	require.NoError(t, err)

	svcs, err := f.ListServices(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, svcs.Items, 1)
	assert.Equal(t, "web", svcs.Items[0].Name)

	_, err = NewStaticFetcher("not a list")
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []ResourceKind{KindDeployment, KindReplicaSet, KindDaemonSet, KindStatefulSet, KindPod}, WorkloadKinds())

	gvr, ok := KindReplicaSet.GVR()
	require.True(t, ok)
	assert.Equal(t, "apps", gvr.Group)
	assert.Equal(t, "replicasets", gvr.Resource)

	_, ok = ResourceKind("Widget").GVR()
	assert.False(t, ok)

	kind, ok := KindForListKind("ServiceList")
	require.True(t, ok)
	assert.Equal(t, KindService, kind)

	_, ok = KindForListKind("Service")
	assert.False(t, ok)
}
