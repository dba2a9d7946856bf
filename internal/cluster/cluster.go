// Package cluster is the handle on the cluster the feature files talk to.
package cluster

import (
	"context"
	"log/slog"
	"sync"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/hiberbee/kube-bdd/internal/config"
	"github.com/hiberbee/kube-bdd/internal/constants"
	"github.com/hiberbee/kube-bdd/internal/messages"
	"github.com/hiberbee/kube-bdd/internal/steperrors"
)

// Cluster wraps the client-go clientset together with the REST and kubeconfig
// settings it was built from. All step code goes through it, so switching to a
// different client only touches this package.
type Cluster struct {
	mu         sync.RWMutex
	clientset  kubernetes.Interface
	restConfig *rest.Config
	rawConfig  *clientcmdapi.Config
	logger     *slog.Logger
}

// New wraps an existing clientset. rawConfig may be nil.
func New(clientset kubernetes.Interface, restConfig *rest.Config, rawConfig *clientcmdapi.Config) *Cluster {
	if restConfig == nil {
		restConfig = &rest.Config{}
	}
	if rawConfig == nil {
		rawConfig = clientcmdapi.NewConfig()
	}
	return &Cluster{
		clientset:  clientset,
		restConfig: restConfig,
		rawConfig:  rawConfig,
		logger:     slog.New(slog.DiscardHandler),
	}
}

// NewFromConfig builds a clientset from the in-cluster config when enabled and
// available, then from the kubeconfig loading rules.
func NewFromConfig(cfg *config.KubernetesConfig, logger *slog.Logger) (*Cluster, error) {
	if cfg.InCluster {
		restConfig, err := rest.InClusterConfig()
		if err == nil {
			clientset, err := kubernetes.NewForConfig(restConfig)
			if err != nil {
				return nil, err
			}
			logger.Info("Using in-cluster configuration", constants.LOG_MASTER_URL, restConfig.Host)
			return New(clientset, restConfig, nil).WithLogger(logger), nil
		}
		logger.Warn("In-cluster configuration unavailable, falling back to kubeconfig", constants.LOG_ERROR, err.Error())
	}

	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if cfg.Kubeconfig != "" {
		loadingRules.ExplicitPath = cfg.Kubeconfig
	}
	configOverrides := &clientcmd.ConfigOverrides{CurrentContext: cfg.Context}
	clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, configOverrides)

	rawConfig, err := clientConfig.RawConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Context != "" {
		rawConfig.CurrentContext = cfg.Context
	}
	restConfig, err := clientConfig.ClientConfig()
	if err != nil {
		return nil, err
	}
	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, err
	}

	logger.Info("Using kubeconfig", constants.LOG_CONTEXT, rawConfig.CurrentContext, constants.LOG_MASTER_URL, restConfig.Host)
	return New(clientset, restConfig, &rawConfig).WithLogger(logger), nil
}

func (c *Cluster) WithLogger(logger *slog.Logger) *Cluster {
	c.logger = logger
	return c
}

// Clientset returns the underlying client-go clientset.
func (c *Cluster) Clientset() kubernetes.Interface {
	return c.clientset
}

// MasterURL is the API server endpoint the clientset talks to.
func (c *Cluster) MasterURL() string {
	return c.restConfig.Host
}

// CurrentContext returns the active kubeconfig context name.
func (c *Cluster) CurrentContext() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rawConfig.CurrentContext
}

// SetCurrentContext records name as the active context. The name is not
// checked against the kubeconfig or the server.
func (c *Cluster) SetCurrentContext(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Debug("Setting current context", constants.LOG_CONTEXT, name, "previous", c.rawConfig.CurrentContext)
	c.rawConfig.CurrentContext = name
}

// Namespace looks up the namespace with exactly this name.
func (c *Cluster) Namespace(ctx context.Context, name string) (*corev1.Namespace, error) {
	namespace, err := c.clientset.CoreV1().Namespaces().Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, steperrors.NewStepError(messages.NamespaceNotFound, "Name", name)
		}
		return nil, steperrors.NewStepErrorWithCause(err, messages.ClusterRequestFailed, "Operation", "get namespace "+name)
	}
	return namespace, nil
}
