package k8s

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	"sigs.k8s.io/yaml"

	"github.com/renato0307/kdash/internal/logging"
)

// FixtureFetcher serves resource lists loaded from a YAML file instead of a
// cluster. The file holds one or more documents, each a typed list such as
//
//	apiVersion: v1
//	kind: ServiceList
//	items: [...]
//
// Kinds missing from the file are served as empty lists.
type FixtureFetcher struct {
	services     corev1.ServiceList
	deployments  appsv1.DeploymentList
	replicaSets  appsv1.ReplicaSetList
	daemonSets   appsv1.DaemonSetList
	statefulSets appsv1.StatefulSetList
	pods         corev1.PodList
}

// NewFixtureFetcher loads fixtures from path
func NewFixtureFetcher(path string) (*FixtureFetcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer f.Close()

	fetcher, err := LoadFixtures(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures from %s: %w", path, err)
	}
	return fetcher, nil
}

// LoadFixtures reads multi-document YAML from r
func LoadFixtures(r io.Reader) (*FixtureFetcher, error) {
	f := &FixtureFetcher{}
	reader := utilyaml.NewYAMLReader(bufio.NewReader(r))

	for doc := 1; ; doc++ {
		data, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		if len(bytes.TrimSpace(data)) == 0 {
			continue
		}
		if err := f.add(data); err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
	}

	return f, nil
}

func (f *FixtureFetcher) add(data []byte) error {
	var typeMeta metav1.TypeMeta
	if err := yaml.Unmarshal(data, &typeMeta); err != nil {
		return err
	}

	kind, ok := KindForListKind(typeMeta.Kind)
	if !ok {
		return fmt.Errorf("unsupported kind %q", typeMeta.Kind)
	}

	var target any
	switch kind {
	case KindService:
		target = &f.services
	case KindDeployment:
		target = &f.deployments
	case KindReplicaSet:
		target = &f.replicaSets
	case KindDaemonSet:
		target = &f.daemonSets
	case KindStatefulSet:
		target = &f.statefulSets
	case KindPod:
		target = &f.pods
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("invalid %s: %w", typeMeta.Kind, err)
	}

	logging.Debug("loaded fixture", "kind", typeMeta.Kind)
	return nil
}

// NewStaticFetcher serves the given lists, e.g. *corev1.ServiceList or
// *appsv1.PodList. Later lists of the same kind replace earlier ones.
func NewStaticFetcher(lists ...any) (*FixtureFetcher, error) {
	f := &FixtureFetcher{}
	for _, l := range lists {
		switch v := l.(type) {
		case *corev1.ServiceList:
			f.services = *v.DeepCopy()
		case *appsv1.DeploymentList:
			f.deployments = *v.DeepCopy()
		case *appsv1.ReplicaSetList:
			f.replicaSets = *v.DeepCopy()
		case *appsv1.DaemonSetList:
			f.daemonSets = *v.DeepCopy()
		case *appsv1.StatefulSetList:
			f.statefulSets = *v.DeepCopy()
		case *corev1.PodList:
			f.pods = *v.DeepCopy()
		default:
			return nil, fmt.Errorf("unsupported list type %T", l)
		}
	}
	return f, nil
}

func (f *FixtureFetcher) ListServices(_ context.Context, namespace string) (*corev1.ServiceList, error) {
	l := f.services.DeepCopy()
	l.Items = inNamespace(l.Items, namespace)
	return l, nil
}

func (f *FixtureFetcher) ListDeployments(_ context.Context, namespace string) (*appsv1.DeploymentList, error) {
	l := f.deployments.DeepCopy()
	l.Items = inNamespace(l.Items, namespace)
	return l, nil
}

func (f *FixtureFetcher) ListReplicaSets(_ context.Context, namespace string) (*appsv1.ReplicaSetList, error) {
	l := f.replicaSets.DeepCopy()
	l.Items = inNamespace(l.Items, namespace)
	return l, nil
}

func (f *FixtureFetcher) ListDaemonSets(_ context.Context, namespace string) (*appsv1.DaemonSetList, error) {
	l := f.daemonSets.DeepCopy()
	l.Items = inNamespace(l.Items, namespace)
	return l, nil
}

func (f *FixtureFetcher) ListStatefulSets(_ context.Context, namespace string) (*appsv1.StatefulSetList, error) {
	l := f.statefulSets.DeepCopy()
	l.Items = inNamespace(l.Items, namespace)
	return l, nil
}

func (f *FixtureFetcher) ListPods(_ context.Context, namespace string) (*corev1.PodList, error) {
	l := f.pods.DeepCopy()
	l.Items = inNamespace(l.Items, namespace)
	return l, nil
}

// inNamespace keeps the items in namespace, or all items when namespace is empty
func inNamespace[T any, PT interface {
	*T
	GetNamespace() string
}](items []T, namespace string) []T {
	if namespace == "" {
		return items
	}

	kept := make([]T, 0, len(items))
	for i := range items {
		if PT(&items[i]).GetNamespace() == namespace {
			kept = append(kept, items[i])
		}
	}
	return kept
}
