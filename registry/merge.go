package registry

// mergeListers invokes the listers in discovery order and merges their
// mappings into one superclass→modules mapping. Module lists for the same
// superclass key accumulate across listers — keys are never overwritten.
// Exact duplicate modules are dropped, first occurrence wins, relative
// order is otherwise preserved.
func mergeListers(listers []Lister) map[string][]string {
	merged := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, lister := range listers {
		for super, moduleList := range lister() {
			if seen[super] == nil {
				seen[super] = make(map[string]bool)
			}
			for _, module := range moduleList {
				if seen[super][module] {
					continue
				}
				seen[super][module] = true
				merged[super] = append(merged[super], module)
			}
		}
	}
	return merged
}
