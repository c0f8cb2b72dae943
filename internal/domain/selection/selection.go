// Package selection implements the preferred-font selection rule.
package selection

import "github.com/bnema/plotfont/internal/domain/entity"

// Result is a successful selection: the chosen family, the file it resolves
// to, and the style batch to apply for it.
type Result struct {
	Family string
	Path   string
	Batch  entity.StyleBatch
}

// Select walks the preferred families in priority order and returns the
// first one present in the registry. The registry's own ordering is
// irrelevant; only the position in preferred decides. Pure: no side
// effects, total over any registry including an empty one.
func Select(preferred []string, registry entity.Registry) (Result, bool) {
	for _, family := range preferred {
		if path, ok := registry.Lookup(family); ok {
			return Result{
				Family: family,
				Path:   path,
				Batch:  entity.NewStyleBatch(family),
			}, true
		}
	}
	return Result{}, false
}
