// Package steps implements the sentences available to feature files and
// registers them with godog.
package steps

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/samber/lo"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/hiberbee/kube-bdd/internal/constants"
	"github.com/hiberbee/kube-bdd/internal/executioncontext"
	"github.com/hiberbee/kube-bdd/internal/messages"
	"github.com/hiberbee/kube-bdd/internal/phrase"
	"github.com/hiberbee/kube-bdd/internal/projection"
	"github.com/hiberbee/kube-bdd/internal/resources"
	"github.com/hiberbee/kube-bdd/internal/scenariocache"
	"github.com/hiberbee/kube-bdd/internal/steperrors"
)

// ClusterClient is the part of *cluster.Cluster the steps use.
type ClusterClient interface {
	Clientset() kubernetes.Interface
	MasterURL() string
	Namespace(ctx context.Context, name string) (*corev1.Namespace, error)
	SetCurrentContext(name string)
}

// Feature runs the steps of one scenario. The only state it keeps between
// steps is what it writes to the scenario cache.
type Feature struct {
	cluster      ClusterClient
	ec           *executioncontext.ExecutionContext
	brewfileLock string
	lookPath     func(file string) (string, error)
}

func NewFeature(cluster ClusterClient, ec *executioncontext.ExecutionContext, brewfileLock string) *Feature {
	return &Feature{
		cluster:      cluster,
		ec:           ec,
		brewfileLock: brewfileLock,
		lookPath:     exec.LookPath,
	}
}

func (f *Feature) cache() *scenariocache.Cache {
	return f.ec.Cache
}

// SelectNamespace fails when the namespace does not exist. Later fetches are
// restricted to it.
func (f *Feature) SelectNamespace(ctx context.Context, name string) (*corev1.Namespace, error) {
	namespace, err := f.cluster.Namespace(ctx, name)
	if err != nil {
		return nil, err
	}
	f.cache().Put(scenariocache.NamespaceKey, namespace)
	f.ec.Logger.Debug("Selected namespace", constants.LOG_NAMESPACE, namespace.Name)
	return namespace, nil
}

// SelectContext switches the active kubeconfig context. The name is not
// validated.
func (f *Feature) SelectContext(name string) {
	f.cluster.SetCurrentContext(name)
	f.ec.Logger.Debug("Selected context", constants.LOG_CONTEXT, name)
}

func (f *Feature) selectedNamespace() string {
	value, ok := f.cache().Lookup(scenariocache.NamespaceKey)
	if !ok {
		return ""
	}
	if namespace, ok := value.(*corev1.Namespace); ok && namespace != nil {
		return namespace.Name
	}
	return ""
}

// FetchResources lists the provider's kind in the selected namespace, or in
// all namespaces when none was selected, and replaces the cached list.
func (f *Feature) FetchResources(ctx context.Context, provider resources.Provider) (*resources.List, error) {
	operation := provider()
	namespace := f.selectedNamespace()

	items, err := operation.List(ctx, namespace)
	if err != nil {
		return nil, steperrors.NewStepErrorWithCause(err, messages.ClusterRequestFailed, "Operation", "list "+string(operation.Kind()))
	}
	list := &resources.List{Kind: operation.Kind(), Namespace: namespace, Items: items}
	f.cache().Put(scenariocache.ResourcesKey, list)

	f.ec.Logger.Debug("Fetched resources",
		constants.LOG_KIND, operation.Kind(),
		constants.LOG_NAMESPACE, namespace,
		constants.LOG_COUNT, list.Len(),
	)
	return list, nil
}

// AssertMasterURL checks whether the master url contains host, as the
// variant says it should.
func (f *Feature) AssertMasterURL(variant phrase.Variant, host string) error {
	url := f.cluster.MasterURL()
	contains := strings.Contains(url, host)
	if contains != variant.Yes() {
		return steperrors.NewStepError(messages.MasterURLMismatch,
			"URL", url,
			"Phrase", variant.Phrase(),
			"Host", host,
			"Expected", fmt.Sprintf("contains=%t", variant.Yes()),
			"Actual", fmt.Sprintf("contains=%t", contains),
		)
	}
	return nil
}

func (f *Feature) cachedList(value any) (*resources.List, error) {
	list, ok := value.(*resources.List)
	if !ok {
		return nil, steperrors.NewStepError(messages.CacheEntryInvalid,
			"Key", scenariocache.ResourcesKey,
			"Actual", fmt.Sprintf("%T", value),
			"Expected", fmt.Sprintf("%T", list),
		)
	}
	return list, nil
}

// AssertResourceField passes when any fetched item has a field at path whose
// string form contains value. Without a prior fetch the list is empty and the
// assertion fails. Both variants are accepted but do not change the check.
func (f *Feature) AssertResourceField(has phrase.Variant, path string, equal phrase.Variant, value string) error {
	list, err := f.cachedList(f.cache().Get(scenariocache.ResourcesKey, func() any {
		return resources.NewList()
	}))
	if err != nil {
		return err
	}
	f.ec.Logger.Debug("Matching resource field",
		constants.LOG_KIND, list.Kind,
		constants.LOG_COUNT, list.Len(),
		"path", path,
		"has", has.String(),
		"equal", equal.String(),
	)

	var seen []string
	for _, item := range list.Items {
		projected, ok, err := projection.Field(item, path)
		if err != nil {
			return steperrors.NewStepErrorWithCause(err, messages.ResourceConversionFailed,
				"Kind", list.Kind,
				"Name", item.GetNamespace()+"/"+item.GetName(),
			)
		}
		if !ok {
			continue
		}
		if strings.Contains(projected, value) {
			return nil
		}
		seen = append(seen, projected)
	}

	kind := string(list.Kind)
	if kind == "" {
		kind = "resources"
	}
	return steperrors.NewStepError(messages.FieldNotMatched,
		"Count", list.Len(),
		"Kind", kind,
		"Path", path,
		"Value", value,
		"Actual", fmt.Sprintf("%q", lo.Uniq(seen)),
	)
}

// AssertListSize requires a fetched list of at least n items. The variant is
// accepted but does not change the check.
func (f *Feature) AssertListSize(variant phrase.Variant, n int) error {
	value, ok := f.cache().Lookup(scenariocache.ResourcesKey)
	if !ok {
		return steperrors.NewStepError(messages.CacheEntryMissing,
			"Key", scenariocache.ResourcesKey,
			"Step", "I get <resources>",
		)
	}
	list, err := f.cachedList(value)
	if err != nil {
		return err
	}
	f.ec.Logger.Debug("Checking list size", constants.LOG_COUNT, list.Len(), "minimum", n, "variant", variant.String())
	if list.Len() < n {
		return steperrors.NewStepError(messages.ListSizeMismatch, "Expected", n, "Actual", list.Len())
	}
	return nil
}

// AssertDependencyInstalled checks the Brewfile lock file mentions dependency.
func (f *Feature) AssertDependencyInstalled(dependency string) error {
	content, err := os.ReadFile(f.brewfileLock)
	if err != nil {
		return steperrors.NewStepErrorWithCause(err, messages.FileReadFailed, "File", f.brewfileLock)
	}
	if !strings.Contains(string(content), dependency) {
		return steperrors.NewStepError(messages.DependencyMissing, "File", f.brewfileLock, "Dependency", dependency)
	}
	return nil
}

// AssertCommandExecutable checks whether the program of command resolves on
// PATH, as the variant says it should. Nothing is run.
func (f *Feature) AssertCommandExecutable(command string, variant phrase.Variant) error {
	executable := false
	if fields := strings.Fields(command); len(fields) > 0 {
		_, err := f.lookPath(fields[0])
		executable = err == nil
	}
	if executable != variant.Yes() {
		return steperrors.NewStepError(messages.CommandExecutable,
			"Command", command,
			"Phrase", variant.Phrase(),
			"Actual", executable,
		)
	}
	return nil
}
