// internal/types/types.go
package types

// EntityID — идентификатор сущности, уникальный в пределах одного мира.
type EntityID uint64
