// Package bounds provides the pure arithmetic behind page slicing and the
// deterministic fingerprinting used for cache keys.
//
// All functions are stateless and side-effect free. The pagination engine
// in pkg/paginator is the only intended consumer, but the functions are
// exported because they are useful on their own (e.g. for building page
// selectors in UIs).
//
// # Bounds
//
//	total := bounds.TotalPages(50, 10)        // 5
//	start := bounds.StartIndex(2, 10)         // 10
//	end := bounds.EndIndex(2, 10, 50)         // 20
//	ok := bounds.IsValidPage(2, total)        // true
//
// # Fingerprints
//
// A fingerprint is a deterministic cache key derived from the collection
// content and the pagination parameters:
//
//	fp := bounds.Fingerprint(orders, bounds.Key{Page: 1, PageSize: 10})
//
// Two calls with structurally equal data and equal parameters yield the
// same fingerprint. The hash is xxhash64 over the JSON serialization;
// it is fast and well distributed but not cryptographic, so pathological
// collisions are theoretically possible (an accepted trade-off).
package bounds
