// Package config defines the intermediate representation (IR) consumed by the
// sysforge pipeline, plus the loaders that produce it.
//
// # The IR
//
// Configuration is an immutable tree of typed value objects describing the
// desired state of a machine: packages, services, users, boot configuration,
// security policy, network, storage, hardware and containers. It is built
// once per compilation run from a JSON or YAML file and then shared read-only
// by the validator and the generator. The tree holds no behavior and no
// cross-subsystem pointers; relationships between subsystems are expressed by
// name string only.
//
// # Loaders
//
// Load reads and decodes a machine configuration file and applies defaults.
// LoadSettings reads the tool's own settings (default output directory, log
// level) from ~/.config/sysforge/config.yaml.
//
// Producing the machine configuration file from a higher-level declarative
// syntax is out of scope for this package; it consumes an already-built tree.
package config
