package generate

import (
	"sysforge/internal/config"
)

const systemScript = `
log_phase "system: begin"
{{- if .Hostname }}
hostnamectl set-hostname {{ .Hostname | squote }}
{{- end }}
{{- if .Timezone }}
rm -f /etc/localtime
ln -s /usr/share/zoneinfo/{{ .Timezone }} /etc/localtime
{{- end }}
log_phase "system: end"
`

// generateSystem emits hostname and timezone provisioning.
func generateSystem(cfg *config.Configuration) ([]Artifact, error) {
	if cfg.Hostname == "" && cfg.Timezone == "" {
		return nil, nil
	}

	content, err := renderScript("system", systemScript, cfg)
	if err != nil {
		return nil, err
	}

	artifacts := []Artifact{
		{Path: "scripts/00-system.sh", Content: content, Kind: KindScript},
	}
	if cfg.Hostname != "" {
		artifacts = append(artifacts, Artifact{
			Path:    "configs/hostname",
			Content: cfg.Hostname + "\n",
			Kind:    KindConfigFile,
		})
	}
	return artifacts, nil
}
