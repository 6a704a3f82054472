package k8s

import (
	"fmt"
	"sort"

	"k8s.io/client-go/tools/clientcmd"
)

// ListContexts returns the contexts of a kubeconfig sorted by name. An empty
// path uses the default loading rules ($KUBECONFIG, ~/.kube/config).
func ListContexts(kubeconfigPath string) ([]Context, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfigPath != "" {
		loadingRules.ExplicitPath = kubeconfigPath
	}

	config, err := loadingRules.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	contexts := make([]Context, 0, len(config.Contexts))
	for name, ctx := range config.Contexts {
		contexts = append(contexts, Context{
			Name:      name,
			Cluster:   ctx.Cluster,
			User:      ctx.AuthInfo,
			Namespace: ctx.Namespace,
			Current:   name == config.CurrentContext,
		})
	}

	// Map iteration order is random
	sort.Slice(contexts, func(i, j int) bool {
		return contexts[i].Name < contexts[j].Name
	})

	return contexts, nil
}
