// Package projection reads a single field out of a typed resource item.
//
// Paths are either dotted (spec.containers.0.image), evaluated with gabs over
// the item's unstructured form, or JSONPath expressions starting with $.
package projection

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jeffail/gabs/v2"
	"github.com/PaesslerAG/jsonpath"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/hiberbee/kube-bdd/internal/resources"
)

// Unstructured converts obj to the map form its JSON encoding produces.
func Unstructured(obj resources.Object) (map[string]any, error) {
	return runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
}

// Field returns the string form of the value at path. ok is false when the
// path does not resolve or resolves to null. err is only set for a path that
// cannot be parsed or an object that cannot be converted.
func Field(obj resources.Object, path string) (value string, ok bool, err error) {
	content, err := Unstructured(obj)
	if err != nil {
		return "", false, err
	}
	return Lookup(content, path)
}

// Lookup is Field over an already converted object.
func Lookup(content map[string]any, path string) (string, bool, error) {
	var (
		found any
		ok    bool
	)
	if strings.HasPrefix(path, "$") {
		eval, err := jsonpath.New(path)
		if err != nil {
			return "", false, fmt.Errorf("invalid path %q: %w", path, err)
		}
		// evaluation fails on unknown keys and out of range indices
		result, err := eval(context.Background(), content)
		found, ok = result, err == nil
	} else {
		container := gabs.Wrap(content)
		if container.ExistsP(path) {
			found, ok = container.Path(path).Data(), true
		}
	}
	if !ok || found == nil {
		return "", false, nil
	}
	return format(found), true, nil
}

func format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any, []any:
		return gabs.Wrap(v).String()
	default:
		return fmt.Sprint(v)
	}
}
