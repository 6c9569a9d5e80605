package utils

// PairKey builds the canonical key for an unordered pair of user ids.
// The ids are sorted before joining, so PairKey(a, b) == PairKey(b, a) and
// the result can back a uniqueness constraint in storage.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "#" + b
}

// SortPair returns the two ids in canonical order
func SortPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
