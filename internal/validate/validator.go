package validate

import (
	"sysforge/internal/config"
)

// Validate runs every subsystem validator over the configuration tree and
// returns the complete list of violations. It is pure: no filesystem access,
// no early exit, deterministic output order. An empty result means the
// configuration is structurally valid.
func Validate(cfg *config.Configuration) []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateRepositories(cfg.Repositories)...)
	errs = append(errs, validatePackages(cfg.Packages)...)
	errs = append(errs, validateUsers(cfg.Users)...)
	errs = append(errs, validateBoot(cfg.Boot)...)
	errs = append(errs, validateSecurity(cfg.Security)...)
	errs = append(errs, validateNetwork(cfg.Network)...)
	errs = append(errs, validateStorage(cfg.Storage)...)
	errs = append(errs, validateHardware(cfg.Hardware)...)
	errs = append(errs, validateContainers(cfg.Containers)...)

	return errs
}
