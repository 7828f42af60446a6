// Package generate lowers a validated configuration tree into imperative
// provisioning artifacts: shell scripts, service-manager unit descriptions
// and flat config files.
//
// # Determinism
//
// Generate walks a fixed, explicit list of per-subsystem generators; it
// never iterates a Go map to decide emission order, and every IR collection
// whose order is not meaningful is sorted before emission. Identical trees
// therefore yield byte-identical artifact sets in identical order.
//
// # Script contract
//
// Every script begins with the same safety header (errexit, nounset,
// pipefail) and a log_phase helper that brackets each phase in the output.
// Operations are idempotent: named resources that might already exist are
// removed before being recreated, so rerunning a script converges rather
// than fails.
//
// # Leniency
//
// An IR selecting a backend the generator does not support (for example an
// unknown boot loader) produces an inert placeholder script containing an
// explanatory comment instead of an error. The compile command's --strict
// flag is the place where stricter behavior is enforced.
//
// Generation is pure in-memory; WriteArtifacts is the one function that
// touches the filesystem.
package generate
