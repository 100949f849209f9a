// Package config provides configuration loading, merging, and validation
// facilities for the farmer.
//
// Configuration is assembled from multiple sources. Earlier sources win for
// non-zero fields:
//  1. Environment variables (a .env file next to the executable is loaded
//     into the environment first)
//  2. Config file named by CONFIG (JSON, TOML or YAML, chosen by extension)
//  3. Built-in defaults of the selected [Mode]
//
// There are no command-line flags: the entry point alone selects the [Mode].
//
// The main entry point is [GetFarmerConfig], which returns the immutable
// [FarmerConfig] view handed to the rest of the application.
package config
