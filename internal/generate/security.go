package generate

import (
	"fmt"
	"sort"
	"strings"

	"sysforge/internal/config"
)

const securityScript = `
log_phase "security: begin"
{{- if .SELinux }}
log_phase "security: selinux {{ .SELinux }}"
rm -f /etc/selinux/config
cat > /etc/selinux/config <<'EOF'
SELINUX={{ .SELinux }}
SELINUXTYPE=targeted
EOF
{{- end }}
{{- if .SecureBoot }}
log_phase "security: enrolling secure boot keys"
sbkeysync --pk {{ .SecureBoot.PKCertPath }} --kek {{ .SecureBoot.KEKCertPath }} --db {{ .SecureBoot.DBCertPath }}
{{- end }}
{{- if .HasSysctl }}
log_phase "security: applying sysctl"
install -m 0644 configs/99-sysforge-sysctl.conf /etc/sysctl.d/99-sysforge.conf
sysctl --system
{{- end }}
log_phase "security: end"
`

// generateSecurity emits the security policy script and the sysctl drop-in.
// Sysctl keys are emitted in sorted order.
func generateSecurity(cfg *config.Configuration) ([]Artifact, error) {
	sec := cfg.Security
	if sec.SELinux == "" && sec.SecureBoot == nil && len(sec.Sysctl) == 0 {
		return nil, nil
	}

	content, err := renderScript("security", securityScript, struct {
		SELinux    string
		SecureBoot *config.SecureBootConfig
		HasSysctl  bool
	}{sec.SELinux, sec.SecureBoot, len(sec.Sysctl) > 0})
	if err != nil {
		return nil, err
	}

	artifacts := []Artifact{
		{Path: "scripts/50-security.sh", Content: content, Kind: KindScript},
	}

	if len(sec.Sysctl) > 0 {
		keys := make([]string, 0, len(sec.Sysctl))
		for key := range sec.Sysctl {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var sb strings.Builder
		for _, key := range keys {
			fmt.Fprintf(&sb, "%s = %s\n", key, sec.Sysctl[key])
		}
		artifacts = append(artifacts, Artifact{
			Path:    "configs/99-sysforge-sysctl.conf",
			Content: sb.String(),
			Kind:    KindConfigFile,
		})
	}

	return artifacts, nil
}
