package main

import (
	"sort"

	"github.com/posener/complete"
)

var skillCompleter = complete.PredictFunc(func(a complete.Args) []string {
	names := make([]string, 0, len(skillPrompts))
	for name := range skillPrompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return complete.PredictSet(names...).Predict(a)
})
