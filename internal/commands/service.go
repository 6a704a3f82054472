package commands

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"

	"github.com/renato0307/kdash/internal/logging"
	"github.com/renato0307/kdash/internal/services"
	"github.com/renato0307/kdash/internal/types"
)

// NotifyFunc delivers a status message to the UI
type NotifyFunc func(types.StatusMsg)

// CopyClusterIP returns a row handler that copies the cluster IP of the
// invoked service and reports the outcome through notify
func CopyClusterIP(notify NotifyFunc) services.ItemInvokedFunc {
	return func(item *services.ServiceRow, index int, event any) {
		if item == nil {
			return
		}

		ip := item.ClusterIP
		if ip == "" || ip == corev1.ClusterIPNone {
			notify(types.ErrorStatusMsg(fmt.Sprintf("Copy failed: %s has no cluster IP", item.Package)))
			return
		}

		text, err := CopyToClipboard(ip)
		if err != nil {
			logging.Warn("clipboard write failed", "service", item.Package, "error", err)
			notify(types.ErrorStatusMsg(fmt.Sprintf("Copy failed: %v", err)))
			return
		}

		logging.Debug("cluster IP copied", "service", item.Package, "row", index)
		notify(types.SuccessMsg(text))
	}
}
