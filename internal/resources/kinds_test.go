package resources

import (
	"context"
	"regexp"
	"testing"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
)

func meta(namespace, name string) metav1.ObjectMeta {
	return metav1.ObjectMeta{Namespace: namespace, Name: name}
}

func fixtures() []runtime.Object {
	return []runtime.Object{
		&corev1.Pod{ObjectMeta: meta("default", "web")},
		&corev1.Pod{ObjectMeta: meta("kube-system", "coredns")},
		&corev1.Service{ObjectMeta: meta("default", "web")},
		&corev1.Secret{ObjectMeta: meta("default", "token")},
		&corev1.ConfigMap{ObjectMeta: meta("kube-system", "kube-proxy")},
		&networkingv1.Ingress{ObjectMeta: meta("default", "web")},
		&appsv1.Deployment{ObjectMeta: meta("default", "web")},
		&appsv1.ReplicaSet{ObjectMeta: meta("default", "web-5d9c")},
		&appsv1.DaemonSet{ObjectMeta: meta("kube-system", "kube-proxy")},
		&appsv1.StatefulSet{ObjectMeta: meta("default", "db")},
	}
}

func TestResolve(t *testing.T) {
	clientset := fake.NewSimpleClientset(fixtures()...)

	testCases := []struct {
		phrase string
		kind   Kind
		names  []string
	}{
		{"pods", Pods, []string{"default/web", "kube-system/coredns"}},
		{"services", Services, []string{"default/web"}},
		{"ingresses", Ingresses, []string{"default/web"}},
		{"deployments", Deployments, []string{"default/web"}},
		{"replica sets", ReplicaSets, []string{"default/web-5d9c"}},
		{"daemon sets", DaemonSets, []string{"kube-system/kube-proxy"}},
		{"stateful sets", StatefulSets, []string{"default/db"}},
		{"secrets", Secrets, []string{"default/token"}},
		{"config maps", ConfigMaps, []string{"kube-system/kube-proxy"}},
		{"Config_Maps", ConfigMaps, []string{"kube-system/kube-proxy"}},
	}

	for _, tc := range testCases {
		t.Run(tc.phrase, func(t *testing.T) {
			operation := Resolve(clientset, tc.phrase)()
			if operation.Kind() != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, operation.Kind())
			}
			items, err := operation.List(context.Background(), "")
			if err != nil {
				t.Fatalf("List returned error: %v", err)
			}
			list := &List{Kind: operation.Kind(), Items: items}
			if !sameNames(list.Names(), tc.names) {
				t.Fatalf("expected %v, got %v", tc.names, list.Names())
			}
		})
	}
}

func TestResolveFallsBackToPods(t *testing.T) {
	clientset := fake.NewSimpleClientset(fixtures()...)

	for _, phrase := range []string{"widgets", "", "cron jobs"} {
		operation := Resolve(clientset, phrase)()
		if operation.Kind() != Pods {
			t.Fatalf("expected %q to resolve to pods, got %s", phrase, operation.Kind())
		}
	}
	if _, ok := Lookup("widgets"); ok {
		t.Fatalf("expected strict lookup of widgets to fail")
	}
}

func TestListRestrictsToNamespace(t *testing.T) {
	clientset := fake.NewSimpleClientset(fixtures()...)

	items, err := Resolve(clientset, "pods")().List(context.Background(), "kube-system")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 || items[0].GetName() != "coredns" {
		t.Fatalf("expected only coredns in kube-system, got %v", (&List{Items: items}).Names())
	}
}

func TestProviderIsFreshPerCall(t *testing.T) {
	clientset := fake.NewSimpleClientset()
	provider := Resolve(clientset, "secrets")
	if provider() == provider() {
		t.Fatalf("expected a new operation per call")
	}
}

func TestPhrases(t *testing.T) {
	phrases := Phrases()
	if len(phrases) != 9 {
		t.Fatalf("expected 9 phrases, got %d", len(phrases))
	}
	if phrases[0] != "config maps" {
		t.Fatalf("expected sorted phrases, got %v", phrases)
	}
}

func TestNilListIsEmpty(t *testing.T) {
	var list *List
	if list.Len() != 0 || list.Names() != nil {
		t.Fatalf("expected nil list to be empty")
	}
	if NewList().Len() != 0 {
		t.Fatalf("expected new list to be empty")
	}
}

func sameNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[string]int, len(got))
	for _, name := range got {
		seen[name]++
	}
	for _, name := range want {
		if seen[name] == 0 {
			return false
		}
		seen[name]--
	}
	return true
}

func TestPatternMatchesBoundaryForms(t *testing.T) {
	pattern := regexp.MustCompile(`^` + Pattern + `$`)
	testCases := []struct {
		input string
		kind  Kind
	}{
		{"pods", Pods},
		{"PODS", Pods},
		{"config_maps", ConfigMaps},
		{"Config Maps", ConfigMaps},
		{"replica_sets", ReplicaSets},
		{"Stateful_Sets", StatefulSets},
	}
	for _, tc := range testCases {
		match := pattern.FindStringSubmatch(tc.input)
		if match == nil {
			t.Fatalf("expected %q to match", tc.input)
		}
		if kind, ok := Lookup(match[1]); !ok || kind != tc.kind {
			t.Fatalf("expected %q to resolve to %s, got %s", tc.input, tc.kind, kind)
		}
	}
	if pattern.MatchString("configmaps") {
		t.Fatalf("expected configmaps not to match")
	}
}
