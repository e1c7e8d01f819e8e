package types

// EntityID — стабильный дескриптор сущности в ECS. Ноль означает "нет сущности".
type EntityID uint64
