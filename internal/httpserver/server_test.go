package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	apitypes "k8s.io/apimachinery/pkg/types"

	"github.com/renato0307/kdash/internal/httpserver/handlers"
	"github.com/renato0307/kdash/internal/k8s"
	"github.com/renato0307/kdash/internal/workloads"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeRefresher struct {
	accept bool
	calls  int
}

func (f *fakeRefresher) Trigger() bool {
	f.calls++
	return f.accept
}

type failingFetcher struct {
	k8s.Fetcher
}

func (failingFetcher) ListServices(context.Context, string) (*corev1.ServiceList, error) {
	return nil, errors.New("services are forbidden")
}

func testDeps(t *testing.T) (handlers.Deps, *workloads.Actions) {
	t.Helper()

	svc := func(namespace, name string) corev1.Service {
		return corev1.Service{
			ObjectMeta: metav1.ObjectMeta{
				Namespace:         namespace,
				Name:              name,
				UID:               apitypes.UID("ABC-" + strings.ToUpper(name)),
				CreationTimestamp: metav1.NewTime(fixedNow.Add(-5 * time.Minute)),
			},
			Spec: corev1.ServiceSpec{Type: corev1.ServiceTypeClusterIP, ClusterIP: "10.96.0.10"},
		}
	}

	f, err := k8s.NewStaticFetcher(&corev1.ServiceList{Items: []corev1.Service{
		svc("default", "nginx"),
		svc("kube-system", "kube-dns"),
	}})
	require.NoError(t, err)

	actions := workloads.NewActions()
	return handlers.Deps{
		Fetcher:   f,
		Store:     workloads.NewStore(actions),
		Refresher: &fakeRefresher{accept: true},
		Context:   "kind-dev",
		Namespace: "default",
		StartTime: fixedNow.Add(-time.Minute),
		TimeNow:   func() time.Time { return fixedNow },
	}, actions
}

func do(t *testing.T, d handlers.Deps, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewRouter(d).ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	d, _ := testDeps(t)

	rec := do(t, d, http.MethodGet, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "kind-dev", body["context"])
	assert.InDelta(t, 60.0, body["uptime_seconds"], 0.001)
}

func TestServices(t *testing.T) {
	d, _ := testDeps(t)

	rec := do(t, d, http.MethodGet, "/api/services")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Services", body["heading"])

	columns := body["columns"].([]any)
	require.Len(t, columns, 6)
	first := columns[0].(map[string]any)
	assert.Equal(t, "package-col", first["key"])
	assert.Equal(t, "sc-col-header first-col-header", first["headerClassName"])
	assert.EqualValues(t, 140, first["minWidth"])

	rows := body["rows"].([]any)
	require.Len(t, rows, 1, "default namespace only")
	row := rows[0].(map[string]any)
	assert.Equal(t, "nginx", row["package-col"])
	assert.Equal(t, "ClusterIP", row["type-col"])
	assert.Equal(t, "10.96.0.10", row["cluster-ip-col"])
	assert.Equal(t, "abc-nginx", row["uid"])
	assert.NotNil(t, row["service"])

	age := row["age-col"].(map[string]any)
	assert.Equal(t, "5m", age["text"])
	assert.Equal(t, fixedNow.Format(time.RFC3339), age["endDate"])
}

func TestServices_AllNamespaces(t *testing.T) {
	d, _ := testDeps(t)

	rec := do(t, d, http.MethodGet, "/api/services?namespace=")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["rows"], 2)
}

func TestServices_ExplicitNamespace(t *testing.T) {
	d, _ := testDeps(t)

	rec := do(t, d, http.MethodGet, "/api/services?namespace=kube-system")

	rows := decode(t, rec)["rows"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "kube-dns", rows[0].(map[string]any)["package-col"])
}

func TestServices_FetchError(t *testing.T) {
	d, _ := testDeps(t)
	d.Fetcher = failingFetcher{}

	rec := do(t, d, http.MethodGet, "/api/services")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "services are forbidden", decode(t, rec)["error"])
}

func TestWorkloads(t *testing.T) {
	d, actions := testDeps(t)
	actions.PodsFetched().Publish(&corev1.PodList{Items: []corev1.Pod{
		{Status: corev1.PodStatus{Phase: corev1.PodRunning}},
	}})
	actions.DeploymentsFetched().Publish(&appsv1.DeploymentList{})

	rec := do(t, d, http.MethodGet, "/api/workloads")

	require.Equal(t, http.StatusOK, rec.Code)
	summaries := decode(t, rec)["workloads"].([]any)
	require.Len(t, summaries, 5)

	deployments := summaries[0].(map[string]any)
	assert.Equal(t, "Deployment", deployments["kind"])
	assert.Equal(t, true, deployments["fetched"])

	replicaSets := summaries[1].(map[string]any)
	assert.Equal(t, false, replicaSets["fetched"])
	assert.NotContains(t, replicaSets, "fetchedAt")

	pods := summaries[4].(map[string]any)
	assert.EqualValues(t, 1, pods["total"])
	assert.EqualValues(t, 1, pods["ready"])
}

func TestRefreshWorkloads(t *testing.T) {
	d, _ := testDeps(t)
	refresher := &fakeRefresher{accept: true}
	d.Refresher = refresher

	rec := do(t, d, http.MethodPost, "/api/workloads/refresh")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, refresher.calls)

	refresher.accept = false
	rec = do(t, d, http.MethodPost, "/api/workloads/refresh")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "refresh already in progress", decode(t, rec)["error"])
}

func TestRefreshWorkloads_GetNotAllowed(t *testing.T) {
	d, _ := testDeps(t)

	rec := do(t, d, http.MethodGet, "/api/workloads/refresh")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestIDHeaderIsAccepted(t *testing.T) {
	d, _ := testDeps(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc")
	rec := httptest.NewRecorder()
	NewRouter(d).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNew_DefaultAddr(t *testing.T) {
	d, _ := testDeps(t)

	assert.Equal(t, DefaultListenAddr, New("", d).Addr())
	assert.Equal(t, ":9090", New(":9090", d).Addr())
}
