// Package registry resolves symbolic names to the object keys that back them.
//
// Clients rarely ask for raw object keys; they ask for a "view" or a
// "feature" by name. The registry holds those mappings and resolves them
// synchronously, before any load is attempted. A name nobody registered fails
// with *UnknownResourceError.
//
// # Sources
//
// Mappings are merged from up to three sources at startup, later overriding
// earlier per (kind, name):
//
//  1. In-code registration via Register.
//  2. A manifest file (YAML/JSON, read through viper) with "views" and
//     "features" maps, see LoadManifest.
//  3. The registry_entries database table, see LoadFromDB. The database is
//     optional, matching the rest of the application.
package registry
