// Package types defines the table model, stored-file records, configuration,
// and standard errors for the datastore storage system.
package types
