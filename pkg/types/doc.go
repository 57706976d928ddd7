// Package types defines the Recipe entity, the raw content-service wire
// shapes, filter criteria, configuration, and standard errors for the
// pantry catalog engine.
package types
