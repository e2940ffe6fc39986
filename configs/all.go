package configs

import (
	"fmt"
	"iter"

	"cuelang.org/go/cue"
)

// All decodes the value at path from every file defining it, keyed by file path, in precedence order.
func All[T any](loader Loader, path string) iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		roots, err := loader.getRoots()
		if err != nil {
			panic(err)
		}
		cuePath := cue.ParsePath(path)
		for i, root := range roots {
			value := root.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(fmt.Errorf("decode %s in %s: %w", path, loader.paths[i], err))
			}
			if !yield(loader.paths[i], v) {
				return
			}
		}
	}
}
