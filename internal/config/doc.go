// Package config provides configuration loading, merging, and validation
// facilities for TidyFinder.
//
// Configuration is assembled from multiple sources; for every field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Platform defaults (see [Defaults])
//
// The main entry point is [GetStructuredConfig]. Positional arguments left
// after flag parsing are exposed as [StructuredConfig.Command].
package config
