package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/renato0307/kdash/internal/k8s"
)

func newContextsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "contexts",
		Short: "List the contexts of the kubeconfig",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contexts, err := k8s.ListContexts(opts.kubeconfig)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderContexts(contexts))
			return err
		},
	}
}

func renderContexts(contexts []k8s.Context) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("CURRENT", "NAME", "CLUSTER", "USER", "NAMESPACE")

	for _, c := range contexts {
		current := ""
		if c.Current {
			current = "*"
		}
		t.Row(current, c.Name, c.Cluster, c.User, c.Namespace)
	}

	return t.String()
}
