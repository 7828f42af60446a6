package generate

import (
	"fmt"
	"sort"
	"strings"

	"sysforge/internal/config"
)

const servicesScript = `
log_phase "services: begin"
{{- range .Units }}
rm -f /etc/systemd/system/{{ . }}.service
install -m 0644 systemd/{{ . }}.service /etc/systemd/system/{{ . }}.service
{{- end }}
systemctl daemon-reload
{{- range .Enabled }}
log_phase "services: enabling {{ . }}"
systemctl enable {{ . }}.service
{{- end }}
log_phase "services: end"
`

// generateServices emits one unit description per managed service plus the
// installation script. Units are emitted in name order.
func generateServices(cfg *config.Configuration) ([]Artifact, error) {
	if len(cfg.Services) == 0 {
		return nil, nil
	}

	units := make([]config.ServiceUnit, len(cfg.Services))
	copy(units, cfg.Services)
	sort.Slice(units, func(i, j int) bool { return units[i].Name < units[j].Name })

	var artifacts []Artifact
	var names, enabled []string
	for _, unit := range units {
		names = append(names, unit.Name)
		if unit.Enabled {
			enabled = append(enabled, unit.Name)
		}
		artifacts = append(artifacts, Artifact{
			Path:    "systemd/" + unit.Name + ".service",
			Content: serviceUnitFile(unit),
			Kind:    KindUnit,
		})
	}

	content, err := renderScript("services", servicesScript, struct {
		Units   []string
		Enabled []string
	}{names, enabled})
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, Artifact{Path: "scripts/90-services.sh", Content: content, Kind: KindScript})

	return artifacts, nil
}

// serviceUnitFile renders a service as flat key/value blocks directly
// reflecting the IR fields.
func serviceUnitFile(unit config.ServiceUnit) string {
	var sb strings.Builder

	sb.WriteString("[Unit]\n")
	if unit.Description != "" {
		fmt.Fprintf(&sb, "Description=%s\n", unit.Description)
	}
	if len(unit.After) > 0 {
		fmt.Fprintf(&sb, "After=%s\n", strings.Join(unit.After, " "))
	}

	sb.WriteString("\n[Service]\n")
	fmt.Fprintf(&sb, "ExecStart=%s\n", unit.ExecStart)
	fmt.Fprintf(&sb, "Restart=%s\n", unit.Restart)

	envKeys := make([]string, 0, len(unit.Environment))
	for key := range unit.Environment {
		envKeys = append(envKeys, key)
	}
	sort.Strings(envKeys)
	for _, key := range envKeys {
		fmt.Fprintf(&sb, "Environment=%s=%s\n", key, unit.Environment[key])
	}

	sb.WriteString("\n[Install]\n")
	fmt.Fprintf(&sb, "WantedBy=%s\n", unit.WantedBy)

	return sb.String()
}
