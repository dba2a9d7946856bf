// Package resources maps the resource-kind phrases used in feature files to
// list operations on a Kubernetes clientset.
package resources

import (
	"context"
	"sort"
	"strings"

	"github.com/samber/lo"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
)

// Kind names a listable resource type.
type Kind string

const (
	Pods         Kind = "pods"
	Services     Kind = "services"
	Ingresses    Kind = "ingresses"
	Deployments  Kind = "deployments"
	ReplicaSets  Kind = "replicasets"
	DaemonSets   Kind = "daemonsets"
	StatefulSets Kind = "statefulsets"
	Secrets      Kind = "secrets"
	ConfigMaps   Kind = "configmaps"
)

// Pattern matches every resource-kind phrase at a step boundary, in any case
// and with a space or underscore between words.
const Pattern = `((?i:pods|services|ingresses|deployments|replica[ _]sets|daemon[ _]sets|stateful[ _]sets|secrets|config[ _]maps))`

// Object is any typed item returned by a list call.
type Object interface {
	metav1.Object
	runtime.Object
}

// Operation lists one kind of resource. An empty namespace lists across all
// namespaces.
type Operation interface {
	Kind() Kind
	List(ctx context.Context, namespace string) ([]Object, error)
}

// Provider yields the operation bound to a resolved phrase.
type Provider func() Operation

var vocabulary = map[string]Kind{
	"pods":          Pods,
	"services":      Services,
	"ingresses":     Ingresses,
	"deployments":   Deployments,
	"replica sets":  ReplicaSets,
	"daemon sets":   DaemonSets,
	"stateful sets": StatefulSets,
	"secrets":       Secrets,
	"config maps":   ConfigMaps,
}

var accessors = map[Kind]func(kubernetes.Interface) Operation{
	Pods:         podsOperation,
	Services:     servicesOperation,
	Ingresses:    ingressesOperation,
	Deployments:  deploymentsOperation,
	ReplicaSets:  replicaSetsOperation,
	DaemonSets:   daemonSetsOperation,
	StatefulSets: statefulSetsOperation,
	Secrets:      secretsOperation,
	ConfigMaps:   configMapsOperation,
}

func normalize(value string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(strings.ToLower(value), "_", " ")), " ")
}

// Lookup returns the kind named by phrase without falling back.
func Lookup(phrase string) (Kind, bool) {
	kind, ok := vocabulary[normalize(phrase)]
	return kind, ok
}

// Phrases returns the recognized phrases, sorted.
func Phrases() []string {
	phrases := lo.Keys(vocabulary)
	sort.Strings(phrases)
	return phrases
}

// Resolve binds phrase to the matching accessor of client. Phrases outside the
// vocabulary resolve to pods. Nothing is listed until the operation is used.
func Resolve(client kubernetes.Interface, phrase string) Provider {
	kind, ok := Lookup(phrase)
	if !ok {
		kind = Pods
	}
	build := accessors[kind]
	return func() Operation {
		return build(client)
	}
}
