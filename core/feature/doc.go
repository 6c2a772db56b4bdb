// Package feature provides the plugin-like feature loading system.
//
// It allows the application to register and initialize features (modules)
// at startup. Each feature implements the Feature interface, which defines
// its lifecycle hooks and route registration logic.
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Initialization and loading of enabled features via LoadAll()
//
// This architecture promotes modularity, allowing features like 'assets' or
// 'preload' to be developed and tested in isolation.
package feature
