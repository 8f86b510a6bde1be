package common

import "context"

// BatchLoad fetches values for a set of keys in one batched lookup and
// indexes the result by key. It is the shared answer to the N+1 pattern:
// collect the foreign keys across a result set, issue a single query, then
// join in memory.
//
// Keys are deduplicated before fetching. Missing keys are simply absent from
// the returned map.
func BatchLoad[K comparable, V any](
	ctx context.Context,
	keys []K,
	fetch func(ctx context.Context, keys []K) ([]V, error),
	keyOf func(v V) K,
) (map[K]V, error) {
	unique := Dedupe(keys)
	if len(unique) == 0 {
		return map[K]V{}, nil
	}

	values, err := fetch(ctx, unique)
	if err != nil {
		return nil, err
	}

	out := make(map[K]V, len(values))
	for _, v := range values {
		out[keyOf(v)] = v
	}
	return out, nil
}

// Dedupe returns keys with duplicates removed, preserving first-seen order.
func Dedupe[K comparable](keys []K) []K {
	seen := make(map[K]struct{}, len(keys))
	out := make([]K, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
