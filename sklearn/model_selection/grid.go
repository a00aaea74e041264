package model_selection

import (
	"sort"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// ParamGrid maps a hyperparameter name to the values to try.
type ParamGrid map[string][]interface{}

// ParameterGrid expands grids into every combination of their values, grid
// by grid. Within a grid keys are sorted and the last key varies fastest.
// An empty grid contributes a single empty combination.
func ParameterGrid(grids ...ParamGrid) ([]map[string]interface{}, error) {
	var out []map[string]interface{}
	for _, grid := range grids {
		keys := make([]string, 0, len(grid))
		for k, values := range grid {
			if len(values) == 0 {
				return nil, errors.NewValidationError(k, "parameter grid values must be a non-empty list", values)
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)

		combos := []map[string]interface{}{{}}
		for _, k := range keys {
			next := make([]map[string]interface{}, 0, len(combos)*len(grid[k]))
			for _, c := range combos {
				for _, v := range grid[k] {
					m := make(map[string]interface{}, len(c)+1)
					for ck, cv := range c {
						m[ck] = cv
					}
					m[k] = v
					next = append(next, m)
				}
			}
			combos = next
		}
		out = append(out, combos...)
	}
	return out, nil
}
