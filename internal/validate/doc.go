// Package validate enforces the structural invariants of the configuration
// IR and reports the complete set of violations.
//
// # Contract
//
// Validate is a pure function over the tree: it never touches the
// filesystem, never returns early, and runs every applicable rule in every
// subsystem regardless of earlier failures, so a single call surfaces every
// defect at once. Violations come back as ValidationError values, a sealed
// sum type with one variant per broken rule; each variant carries the exact
// offending value.
//
// # Rule families
//
//   - Path fields must be absolute, contain no ".." segment and stay inside
//     the [a-zA-Z0-9/_.-] character class.
//   - Catalogued identifier fields (splash themes, initramfs hooks) accept
//     catalogue members and anything matching the generic identifier grammar;
//     these are two independent acceptance paths.
//   - Uniqueness rules (boot entry titles, user names, repository names)
//     yield exactly one error per duplicated key, not one per duplicate
//     element.
//   - Optional sub-configs (Secure Boot keys, swap) are validated only when
//     present; absence is never an error.
package validate
