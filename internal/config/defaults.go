package config

const (
	// DefaultBootLoader is used when the configuration does not select one.
	DefaultBootLoader = "systemd-boot"

	// DefaultWantedBy is the install target applied to service units that do
	// not name one.
	DefaultWantedBy = "multi-user.target"

	// DefaultRestartPolicy is applied to service units without an explicit
	// restart policy.
	DefaultRestartPolicy = "on-failure"
)

// ApplyDefaults fills in defaulted fields on a freshly loaded configuration.
// It is called by Load and must run before validation so that validators see
// the same tree the generators will.
func ApplyDefaults(cfg *Configuration) {
	if cfg.Boot.Loader == "" {
		cfg.Boot.Loader = DefaultBootLoader
	}

	for i := range cfg.Services {
		if cfg.Services[i].WantedBy == "" {
			cfg.Services[i].WantedBy = DefaultWantedBy
		}
		if cfg.Services[i].Restart == "" {
			cfg.Services[i].Restart = DefaultRestartPolicy
		}
	}
}
