package steps

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/client-go/rest"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/hiberbee/kube-bdd/internal/cluster"
	"github.com/hiberbee/kube-bdd/internal/executioncontext"
	"github.com/hiberbee/kube-bdd/internal/scenariocache"
)

const testMasterURL = "https://cluster.example.com"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pod(namespace, name, image string) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Namespace: namespace, Name: name, Labels: map[string]string{"app": name}},
		Spec:       corev1.PodSpec{Containers: []corev1.Container{{Name: "main", Image: image}}},
	}
}

func namespace(name string) *corev1.Namespace {
	return &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: name}}
}

func fixtures() []runtime.Object {
	return []runtime.Object{
		namespace("default"),
		namespace("kube-system"),
		pod("default", "web-0", "nginx:1.27"),
		pod("default", "web-1", "nginx:1.27"),
		pod("kube-system", "coredns", "coredns:1.11"),
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "web"}},
		&corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Namespace: "kube-system", Name: "coredns"}},
	}
}

func newTestCluster(objects ...runtime.Object) (*cluster.Cluster, *fake.Clientset) {
	clientset := fake.NewSimpleClientset(objects...)
	raw := clientcmdapi.NewConfig()
	raw.CurrentContext = "staging"
	return cluster.New(clientset, &rest.Config{Host: testMasterURL}, raw), clientset
}

func newTestFeature(t *testing.T, c ClusterClient) *Feature {
	t.Helper()
	ec := executioncontext.NewExecutionContext("run", t.Name(), t.Name(), newTestLogger(), scenariocache.New(t.Name()))
	return NewFeature(c, ec, filepath.Join(t.TempDir(), ".Brewfile.lock.json"))
}

func writeBrewfileLock(t *testing.T, f *Feature, content string) {
	t.Helper()
	if err := os.WriteFile(f.brewfileLock, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write lock file: %v", err)
	}
}
