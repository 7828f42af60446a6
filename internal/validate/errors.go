package validate

import "fmt"

// ValidationError is the sealed interface implemented by every validation
// error variant. Each variant corresponds to exactly one violated rule and
// carries the exact offending value.
//
// Validators return ValidationError values as data; they never panic and
// never return Go errors through other channels.
type ValidationError interface {
	error

	// Field returns the dotted path of the offending field within the
	// configuration tree, e.g. "boot.entries.title".
	Field() string

	// sealed prevents implementations outside this package so that call
	// sites can match exhaustively over the known variants.
	sealed()
}

// InvalidPath reports a path field that violates the path grammar: paths
// must be absolute, contain no ".." segment and consist of characters from
// [a-zA-Z0-9/_.-].
type InvalidPath struct {
	FieldPath string
	Value     string
	Reason    string
}

func (e InvalidPath) Field() string { return e.FieldPath }
func (e InvalidPath) sealed()       {}
func (e InvalidPath) Error() string {
	return fmt.Sprintf("%s: invalid path %q: %s", e.FieldPath, e.Value, e.Reason)
}

// InvalidCertificatePath reports a Secure Boot certificate path that
// violates the path grammar.
type InvalidCertificatePath struct {
	FieldPath string
	Value     string
	Reason    string
}

func (e InvalidCertificatePath) Field() string { return e.FieldPath }
func (e InvalidCertificatePath) sealed()       {}
func (e InvalidCertificatePath) Error() string {
	return fmt.Sprintf("%s: invalid certificate path %q: %s", e.FieldPath, e.Value, e.Reason)
}

// InvalidKernelParameter reports a kernel command-line parameter containing
// whitespace or characters outside the parameter grammar.
type InvalidKernelParameter struct {
	Value string
}

func (e InvalidKernelParameter) Field() string { return "boot.kernelParameters" }
func (e InvalidKernelParameter) sealed()       {}
func (e InvalidKernelParameter) Error() string {
	return fmt.Sprintf("boot.kernelParameters: invalid kernel parameter %q", e.Value)
}

// ConflictingBootEntries reports a boot entry title used by more than one
// entry. Exactly one error is emitted per duplicated title.
type ConflictingBootEntries struct {
	Title string
	Count int
}

func (e ConflictingBootEntries) Field() string { return "boot.entries.title" }
func (e ConflictingBootEntries) sealed()       {}
func (e ConflictingBootEntries) Error() string {
	return fmt.Sprintf("boot.entries.title: %d entries share the title %q", e.Count, e.Title)
}

// InvalidSplashTheme reports a boot splash theme that is neither in the
// known theme catalogue nor a valid generic identifier.
type InvalidSplashTheme struct {
	Value string
}

func (e InvalidSplashTheme) Field() string { return "boot.splashTheme" }
func (e InvalidSplashTheme) sealed()       {}
func (e InvalidSplashTheme) Error() string {
	return fmt.Sprintf("boot.splashTheme: unknown splash theme %q", e.Value)
}

// InvalidInitramfsHook reports an initramfs hook that is neither in the
// known hook catalogue nor a valid generic identifier.
type InvalidInitramfsHook struct {
	Value string
}

func (e InvalidInitramfsHook) Field() string { return "boot.initramfsHooks" }
func (e InvalidInitramfsHook) sealed()       {}
func (e InvalidInitramfsHook) Error() string {
	return fmt.Sprintf("boot.initramfsHooks: unknown initramfs hook %q", e.Value)
}

// InvalidModuleName reports a kernel module name outside the module name
// grammar.
type InvalidModuleName struct {
	FieldPath string
	Value     string
}

func (e InvalidModuleName) Field() string { return e.FieldPath }
func (e InvalidModuleName) sealed()       {}
func (e InvalidModuleName) Error() string {
	return fmt.Sprintf("%s: invalid kernel module name %q", e.FieldPath, e.Value)
}

// InvalidUsername reports a user name that does not follow the account name
// grammar accepted by useradd.
type InvalidUsername struct {
	Value string
}

func (e InvalidUsername) Field() string { return "users.name" }
func (e InvalidUsername) sealed()       {}
func (e InvalidUsername) Error() string {
	return fmt.Sprintf("users.name: invalid user name %q", e.Value)
}

// DuplicateUser reports a user name declared more than once. Exactly one
// error is emitted per duplicated name.
type DuplicateUser struct {
	Name  string
	Count int
}

func (e DuplicateUser) Field() string { return "users.name" }
func (e DuplicateUser) sealed()       {}
func (e DuplicateUser) Error() string {
	return fmt.Sprintf("users.name: %d users share the name %q", e.Count, e.Name)
}

// InvalidSELinuxMode reports an SELinux mode outside the known set.
type InvalidSELinuxMode struct {
	Value string
}

func (e InvalidSELinuxMode) Field() string { return "security.selinux" }
func (e InvalidSELinuxMode) sealed()       {}
func (e InvalidSELinuxMode) Error() string {
	return fmt.Sprintf("security.selinux: invalid SELinux mode %q", e.Value)
}

// InvalidSysctlKey reports a sysctl key outside the dotted key grammar.
type InvalidSysctlKey struct {
	Value string
}

func (e InvalidSysctlKey) Field() string { return "security.sysctl" }
func (e InvalidSysctlKey) sealed()       {}
func (e InvalidSysctlKey) Error() string {
	return fmt.Sprintf("security.sysctl: invalid sysctl key %q", e.Value)
}

// InvalidInterfaceName reports a network interface name the kernel would
// reject.
type InvalidInterfaceName struct {
	Value string
}

func (e InvalidInterfaceName) Field() string { return "network.interfaces.name" }
func (e InvalidInterfaceName) sealed()       {}
func (e InvalidInterfaceName) Error() string {
	return fmt.Sprintf("network.interfaces.name: invalid interface name %q", e.Value)
}

// InvalidFirewallPort reports a firewall rule port outside 1-65535.
type InvalidFirewallPort struct {
	Port int
}

func (e InvalidFirewallPort) Field() string { return "network.firewallRules.port" }
func (e InvalidFirewallPort) sealed()       {}
func (e InvalidFirewallPort) Error() string {
	return fmt.Sprintf("network.firewallRules.port: port %d out of range", e.Port)
}

// InvalidImageReference reports a container image reference outside the OCI
// reference grammar.
type InvalidImageReference struct {
	Container string
	Value     string
}

func (e InvalidImageReference) Field() string { return "containers.image" }
func (e InvalidImageReference) sealed()       {}
func (e InvalidImageReference) Error() string {
	return fmt.Sprintf("containers.image: container %q has invalid image reference %q", e.Container, e.Value)
}

// DuplicateRepository reports a repository name declared more than once.
// Exactly one error is emitted per duplicated name.
type DuplicateRepository struct {
	Name  string
	Count int
}

func (e DuplicateRepository) Field() string { return "repositories.name" }
func (e DuplicateRepository) sealed()       {}
func (e DuplicateRepository) Error() string {
	return fmt.Sprintf("repositories.name: %d repositories share the name %q", e.Count, e.Name)
}

// UnknownLayerDependency reports a package layer depending on a layer name
// that is not declared anywhere in the configuration.
type UnknownLayerDependency struct {
	Layer     string
	DependsOn string
}

func (e UnknownLayerDependency) Field() string { return "packages.layers.dependsOn" }
func (e UnknownLayerDependency) sealed()       {}
func (e UnknownLayerDependency) Error() string {
	return fmt.Sprintf("packages.layers.dependsOn: layer %q depends on unknown layer %q", e.Layer, e.DependsOn)
}
