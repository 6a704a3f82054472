// Package messages defines how kdash reports errors, successes and
// informational messages across layers.
//
// # Fetch Layer (internal/k8s, internal/workloads)
//
// Return standard Go errors wrapped with the operation and namespace that
// failed. The fetch layer never depends on UI concerns.
//
//	list, err := f.client.CoreV1().Services(namespace).List(ctx, opts)
//	if err != nil {
//	    return nil, messages.WrapError(err, "failed to list services in namespace %q", namespace)
//	}
//
// When several kinds are fetched together, a failing kind is logged with
// logging.Warn and the rest still load. Failures are combined with
// errors.Join so callers can report all of them at once.
//
// # Command Layer (internal/commands)
//
// Return a types.StatusMsg (or a tea.Cmd producing one via ErrorCmd,
// SuccessCmd and InfoCmd). Keep messages short and start with what failed:
//
//	"Copy failed: no cluster IP for nginx"
//
// # UI Layer (internal/app, internal/components, internal/screens)
//
// Display status messages through the StatusBar component. It clears after
// components.StatusBarDisplayDuration.
//
// # HTTP Layer (internal/httpserver)
//
// Log the wrapped error and answer with a JSON body {"error": "..."} and a
// 5xx status. Never leak a stack trace to the client.
package messages
