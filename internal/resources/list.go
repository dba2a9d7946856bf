package resources

import (
	"github.com/samber/lo"
)

// List is the result of one fetch step.
type List struct {
	Kind      Kind
	Namespace string
	Items     []Object
}

// NewList returns an empty list of no particular kind.
func NewList() *List {
	return &List{Items: []Object{}}
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Names returns namespace/name for every item.
func (l *List) Names() []string {
	if l == nil {
		return nil
	}
	return lo.Map(l.Items, func(item Object, _ int) string {
		if item.GetNamespace() == "" {
			return item.GetName()
		}
		return item.GetNamespace() + "/" + item.GetName()
	})
}
