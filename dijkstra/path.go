package dijkstra

// ReconstructPath walks came-from back-pointers from target to source and
// returns the path source..target. It returns nil if the chain breaks before
// reaching source, and []N{source} when target == source.
func ReconstructPath[N comparable](prev map[N]N, source, target N) []N {
	path := []N{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
		if len(path) > len(prev)+1 {
			return nil // cycle in a hand-built map
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
