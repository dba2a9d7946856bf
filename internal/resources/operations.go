package resources

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// lister is the List half of every typed namespaced client in client-go.
type lister[L any] interface {
	List(ctx context.Context, opts metav1.ListOptions) (*L, error)
}

type operation[L any] struct {
	kind  Kind
	in    func(namespace string) lister[L]
	items func(list *L) []Object
}

func (o *operation[L]) Kind() Kind {
	return o.kind
}

func (o *operation[L]) List(ctx context.Context, namespace string) ([]Object, error) {
	list, err := o.in(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	return o.items(list), nil
}

func objects[T any, P interface {
	*T
	Object
}](items []T) []Object {
	out := make([]Object, 0, len(items))
	for i := range items {
		out = append(out, P(&items[i]))
	}
	return out
}

func podsOperation(c kubernetes.Interface) Operation {
	return &operation[corev1.PodList]{
		kind:  Pods,
		in:    func(ns string) lister[corev1.PodList] { return c.CoreV1().Pods(ns) },
		items: func(l *corev1.PodList) []Object { return objects(l.Items) },
	}
}

func servicesOperation(c kubernetes.Interface) Operation {
	return &operation[corev1.ServiceList]{
		kind:  Services,
		in:    func(ns string) lister[corev1.ServiceList] { return c.CoreV1().Services(ns) },
		items: func(l *corev1.ServiceList) []Object { return objects(l.Items) },
	}
}

func secretsOperation(c kubernetes.Interface) Operation {
	return &operation[corev1.SecretList]{
		kind:  Secrets,
		in:    func(ns string) lister[corev1.SecretList] { return c.CoreV1().Secrets(ns) },
		items: func(l *corev1.SecretList) []Object { return objects(l.Items) },
	}
}

func configMapsOperation(c kubernetes.Interface) Operation {
	return &operation[corev1.ConfigMapList]{
		kind:  ConfigMaps,
		in:    func(ns string) lister[corev1.ConfigMapList] { return c.CoreV1().ConfigMaps(ns) },
		items: func(l *corev1.ConfigMapList) []Object { return objects(l.Items) },
	}
}

func ingressesOperation(c kubernetes.Interface) Operation {
	return &operation[networkingv1.IngressList]{
		kind:  Ingresses,
		in:    func(ns string) lister[networkingv1.IngressList] { return c.NetworkingV1().Ingresses(ns) },
		items: func(l *networkingv1.IngressList) []Object { return objects(l.Items) },
	}
}

func deploymentsOperation(c kubernetes.Interface) Operation {
	return &operation[appsv1.DeploymentList]{
		kind:  Deployments,
		in:    func(ns string) lister[appsv1.DeploymentList] { return c.AppsV1().Deployments(ns) },
		items: func(l *appsv1.DeploymentList) []Object { return objects(l.Items) },
	}
}

func replicaSetsOperation(c kubernetes.Interface) Operation {
	return &operation[appsv1.ReplicaSetList]{
		kind:  ReplicaSets,
		in:    func(ns string) lister[appsv1.ReplicaSetList] { return c.AppsV1().ReplicaSets(ns) },
		items: func(l *appsv1.ReplicaSetList) []Object { return objects(l.Items) },
	}
}

func daemonSetsOperation(c kubernetes.Interface) Operation {
	return &operation[appsv1.DaemonSetList]{
		kind:  DaemonSets,
		in:    func(ns string) lister[appsv1.DaemonSetList] { return c.AppsV1().DaemonSets(ns) },
		items: func(l *appsv1.DaemonSetList) []Object { return objects(l.Items) },
	}
}

func statefulSetsOperation(c kubernetes.Interface) Operation {
	return &operation[appsv1.StatefulSetList]{
		kind:  StatefulSets,
		in:    func(ns string) lister[appsv1.StatefulSetList] { return c.AppsV1().StatefulSets(ns) },
		items: func(l *appsv1.StatefulSetList) []Object { return objects(l.Items) },
	}
}
