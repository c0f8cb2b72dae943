// Package port defines the interfaces between the application use cases and
// the infrastructure adapters. Use cases depend on these boundaries instead
// of importing infrastructure packages.
package port
