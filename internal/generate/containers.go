package generate

import (
	"fmt"
	"sort"
	"strings"

	"sysforge/internal/config"
)

const containerScript = `
log_phase "container {{ .Name }}: begin"
podman rm -f {{ .Name | squote }} >/dev/null 2>&1 || true
podman run -d --name {{ .Name | squote }} \
{{- range .Ports }}
	-p {{ . | squote }} \
{{- end }}
{{- range .Volumes }}
	-v {{ . | squote }} \
{{- end }}
{{- range .EnvPairs }}
	-e {{ . | squote }} \
{{- end }}
{{- if .Restart }}
	--restart {{ .Restart | squote }} \
{{- end }}
	{{ .Image | squote }}
log_phase "container {{ .Name }}: end"
`

type containerView struct {
	config.Container
	EnvPairs []string
}

// generateContainers emits one launch script per container, plus a unit
// description for containers marked to start at boot. Containers are
// emitted in name order; environment pairs are sorted by key.
func generateContainers(cfg *config.Configuration) ([]Artifact, error) {
	if len(cfg.Containers) == 0 {
		return nil, nil
	}

	containers := make([]config.Container, len(cfg.Containers))
	copy(containers, cfg.Containers)
	sort.Slice(containers, func(i, j int) bool { return containers[i].Name < containers[j].Name })

	var artifacts []Artifact
	for _, container := range containers {
		view := containerView{Container: container, EnvPairs: envPairs(container.Env)}

		content, err := renderScript("container-"+container.Name, containerScript, view)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{
			Path:    "containers/" + container.Name + ".sh",
			Content: content,
			Kind:    KindScript,
		})

		if container.AutoStart {
			artifacts = append(artifacts, Artifact{
				Path:    "systemd/sysforge-container-" + container.Name + ".service",
				Content: containerUnitFile(container),
				Kind:    KindUnit,
			})
		}
	}

	return artifacts, nil
}

func envPairs(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+env[key])
	}
	return pairs
}

func containerUnitFile(container config.Container) string {
	var sb strings.Builder
	sb.WriteString("[Unit]\n")
	fmt.Fprintf(&sb, "Description=sysforge container %s\n", container.Name)
	sb.WriteString("After=network-online.target\n")
	sb.WriteString("\n[Service]\n")
	sb.WriteString("Type=forking\n")
	fmt.Fprintf(&sb, "ExecStart=/usr/lib/sysforge/containers/%s.sh\n", container.Name)
	fmt.Fprintf(&sb, "ExecStop=/usr/bin/podman stop %s\n", container.Name)
	sb.WriteString("\n[Install]\n")
	sb.WriteString("WantedBy=multi-user.target\n")
	return sb.String()
}
