// internal/types/types.go
package types

// EntityID identifies one live entity. IDs are issued sequentially by the
// registry and never reused within a run.
type EntityID uint64
