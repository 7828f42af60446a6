package generate

import (
	"sort"

	"sysforge/internal/config"
)

const repositoriesScript = `
log_phase "repositories: begin"
mkdir -p /etc/sysforge.repos.d
{{- range .Repositories }}
rm -f /etc/sysforge.repos.d/{{ .Name }}.repo
cat > /etc/sysforge.repos.d/{{ .Name }}.repo <<'EOF'
[{{ .Name }}]
url={{ .URL }}
enabled={{ if .Enabled }}1{{ else }}0{{ end }}
{{- if .GPGKeyPath }}
gpgkey={{ .GPGKeyPath }}
{{- end }}
EOF
{{- end }}
log_phase "repositories: end"
`

// generateRepositories emits one repo definition per repository, removed and
// recreated so reruns converge on the declared set.
func generateRepositories(cfg *config.Configuration) ([]Artifact, error) {
	if len(cfg.Repositories) == 0 {
		return nil, nil
	}

	// Emission order is by name, not declaration order.
	repos := make([]config.Repository, len(cfg.Repositories))
	copy(repos, cfg.Repositories)
	sort.Slice(repos, func(i, j int) bool { return repos[i].Name < repos[j].Name })

	content, err := renderScript("repositories", repositoriesScript, struct {
		Repositories []config.Repository
	}{repos})
	if err != nil {
		return nil, err
	}

	return []Artifact{
		{Path: "scripts/10-repositories.sh", Content: content, Kind: KindScript},
	}, nil
}
