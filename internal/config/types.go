package config

// Configuration is the root of the intermediate representation: an immutable
// tree of typed value objects describing the desired state of one machine.
//
// Subsystems never hold live references to each other; cross-subsystem
// relationships (a package layer depending on another layer, a service
// ordered after another service) are expressed by name string and resolved
// at validation/generation time.
type Configuration struct {
	Hostname string `json:"hostname,omitempty"`
	Timezone string `json:"timezone,omitempty"`

	Repositories []Repository   `json:"repositories,omitempty"`
	Packages     PackagesConfig `json:"packages,omitempty"`
	Services     []ServiceUnit  `json:"services,omitempty"`
	Users        []User         `json:"users,omitempty"`
	Boot         BootConfig     `json:"boot,omitempty"`
	Security     SecurityConfig `json:"security,omitempty"`
	Network      NetworkConfig  `json:"network,omitempty"`
	Storage      StorageConfig  `json:"storage,omitempty"`
	Hardware     HardwareConfig `json:"hardware,omitempty"`
	Containers   []Container    `json:"containers,omitempty"`
}

// Repository describes a package repository to configure before installation.
type Repository struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	GPGKeyPath string `json:"gpgKeyPath,omitempty"` // Path to the signing key on the target system
	Enabled    bool   `json:"enabled"`
}

// PackagesConfig describes the desired package set.
type PackagesConfig struct {
	Install []string       `json:"install,omitempty"`
	Remove  []string       `json:"remove,omitempty"`
	Layers  []PackageLayer `json:"layers,omitempty"`
}

// PackageLayer is a named group of packages that can depend on other layers.
// Dependencies are by layer name only.
type PackageLayer struct {
	Name      string   `json:"name"`
	Packages  []string `json:"packages,omitempty"`
	DependsOn []string `json:"dependsOn,omitempty"`
}

// ServiceUnit describes a managed service for the target init system.
type ServiceUnit struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	ExecStart   string            `json:"execStart"`
	Restart     string            `json:"restart,omitempty"`  // e.g. "on-failure"
	After       []string          `json:"after,omitempty"`    // Unit ordering, by name
	WantedBy    string            `json:"wantedBy,omitempty"` // Install target
	Environment map[string]string `json:"environment,omitempty"`
	Enabled     bool              `json:"enabled"`
}

// User describes a system account to provision.
type User struct {
	Name   string   `json:"name"`
	UID    int      `json:"uid,omitempty"`
	Groups []string `json:"groups,omitempty"`
	Shell  string   `json:"shell,omitempty"`
	Home   string   `json:"home,omitempty"`
	System bool     `json:"system,omitempty"`
}

// BootConfig describes the boot loader, its entries and early-boot tuning.
type BootConfig struct {
	// Loader selects the boot-loader backend, e.g. "systemd-boot" or "grub".
	Loader           string      `json:"loader,omitempty"`
	TimeoutSeconds   int         `json:"timeoutSeconds,omitempty"`
	Entries          []BootEntry `json:"entries,omitempty"`
	KernelParameters []string    `json:"kernelParameters,omitempty"`
	SplashTheme      string      `json:"splashTheme,omitempty"`
	InitramfsHooks   []string    `json:"initramfsHooks,omitempty"`
}

// BootEntry is a single boot menu entry. Titles must be unique across the
// configuration.
type BootEntry struct {
	Title   string   `json:"title"`
	Kernel  string   `json:"kernel"`
	Initrd  string   `json:"initrd,omitempty"`
	Options []string `json:"options,omitempty"`
	Default bool     `json:"default,omitempty"`
}

// SecurityConfig describes the security policy for the machine.
type SecurityConfig struct {
	SELinux    string            `json:"selinux,omitempty"` // "enforcing", "permissive" or "disabled"
	SecureBoot *SecureBootConfig `json:"secureBoot,omitempty"`
	Sysctl     map[string]string `json:"sysctl,omitempty"`
}

// SecureBootConfig holds the certificate paths for Secure Boot key
// enrollment. The whole block is optional; when absent no Secure Boot
// artifacts are generated.
type SecureBootConfig struct {
	PKCertPath  string `json:"pkCertPath"`
	KEKCertPath string `json:"kekCertPath"`
	DBCertPath  string `json:"dbCertPath"`
}

// NetworkConfig describes interfaces, name resolution and firewall rules.
type NetworkConfig struct {
	Interfaces    []NetworkInterface `json:"interfaces,omitempty"`
	Nameservers   []string           `json:"nameservers,omitempty"`
	FirewallRules []FirewallRule     `json:"firewallRules,omitempty"`
}

// NetworkInterface configures one link. Address is CIDR notation and is
// ignored when DHCP is set.
type NetworkInterface struct {
	Name    string `json:"name"`
	DHCP    bool   `json:"dhcp,omitempty"`
	Address string `json:"address,omitempty"`
	Gateway string `json:"gateway,omitempty"`
	MTU     int    `json:"mtu,omitempty"`
}

// FirewallRule opens or closes a single port.
type FirewallRule struct {
	Port     int    `json:"port"`
	Protocol string `json:"protocol,omitempty"` // "tcp" or "udp"
	Allow    bool   `json:"allow"`
	Comment  string `json:"comment,omitempty"`
}

// StorageConfig describes filesystems and swap.
type StorageConfig struct {
	Filesystems []Filesystem `json:"filesystems,omitempty"`
	Swap        *SwapConfig  `json:"swap,omitempty"`
}

// Filesystem is one mount to establish.
type Filesystem struct {
	Device     string   `json:"device"`
	MountPoint string   `json:"mountPoint"`
	Type       string   `json:"type"`
	Options    []string `json:"options,omitempty"`
}

// SwapConfig describes a swap file.
type SwapConfig struct {
	Path   string `json:"path"`
	SizeMB int    `json:"sizeMB"`
}

// HardwareConfig describes kernel module and firmware configuration.
type HardwareConfig struct {
	KernelModules      []string `json:"kernelModules,omitempty"`
	BlacklistedModules []string `json:"blacklistedModules,omitempty"`
	FirmwarePaths      []string `json:"firmwarePaths,omitempty"`
}

// Container describes an OCI container to run on the target machine.
type Container struct {
	Name      string            `json:"name"`
	Image     string            `json:"image"`
	Ports     []string          `json:"ports,omitempty"`   // host:container
	Volumes   []string          `json:"volumes,omitempty"` // host:container
	Env       map[string]string `json:"env,omitempty"`
	Restart   string            `json:"restart,omitempty"`
	AutoStart bool              `json:"autoStart,omitempty"`
}
