package validate

import (
	"sort"

	"sysforge/internal/config"
)

var selinuxModes = []string{"enforcing", "permissive", "disabled"}

func validateSecurity(security config.SecurityConfig) []ValidationError {
	var errs []ValidationError

	if security.SELinux != "" && !inCatalogue(security.SELinux, selinuxModes) {
		errs = append(errs, InvalidSELinuxMode{Value: security.SELinux})
	}

	// The Secure Boot block is optional; absence is not an error.
	if sb := security.SecureBoot; sb != nil {
		certs := []struct {
			field string
			value string
		}{
			{"security.secureBoot.pkCertPath", sb.PKCertPath},
			{"security.secureBoot.kekCertPath", sb.KEKCertPath},
			{"security.secureBoot.dbCertPath", sb.DBCertPath},
		}
		for _, cert := range certs {
			if reason := checkPath(cert.value); reason != "" {
				errs = append(errs, InvalidCertificatePath{FieldPath: cert.field, Value: cert.value, Reason: reason})
			}
		}
	}

	var keys []string
	for key := range security.Sysctl {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !sysctlKey.MatchString(key) {
			errs = append(errs, InvalidSysctlKey{Value: key})
		}
	}

	return errs
}
