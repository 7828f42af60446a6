package validate

import (
	"sysforge/internal/config"
)

// ifnamsiz is the kernel's interface name length limit, including the
// trailing NUL.
const ifnamsiz = 16

func validateNetwork(network config.NetworkConfig) []ValidationError {
	var errs []ValidationError

	for _, iface := range network.Interfaces {
		if iface.Name == "" || len(iface.Name) >= ifnamsiz || !interfaceName.MatchString(iface.Name) {
			errs = append(errs, InvalidInterfaceName{Value: iface.Name})
		}
	}

	for _, rule := range network.FirewallRules {
		if rule.Port < 1 || rule.Port > 65535 {
			errs = append(errs, InvalidFirewallPort{Port: rule.Port})
		}
	}

	return errs
}
