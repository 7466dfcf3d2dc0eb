// Package kernel contains shared value objects used across the domain model.
// Its central type is UUID, the identifier for all entities and aggregates.
// Kernel types are immutable, validated at construction, and carry no
// dependencies on other domain packages.
package kernel
