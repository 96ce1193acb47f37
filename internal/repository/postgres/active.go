package postgres

// activeOnly is the shared active-record predicate. Every read path and
// every aggregate appends it, so soft-deleted rows never appear in results
// or influence derived values. Keeping it in one place instead of spelling
// the flag out per query prevents the filters from drifting apart.
const activeOnly = "is_active = TRUE"
