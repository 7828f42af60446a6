package generate

import (
	"sort"

	"sysforge/internal/config"
)

const usersScript = `
log_phase "users: begin"
{{- range .Users }}
log_phase "users: {{ .Name }}"
if id {{ .Name | squote }} >/dev/null 2>&1; then
	userdel {{ .Name | squote }}
fi
useradd {{ if .System }}--system {{ end }}{{ if .UID }}--uid {{ .UID }} {{ end }}{{ if .Home }}--home-dir {{ .Home | squote }} --create-home {{ end }}{{ if .Shell }}--shell {{ .Shell | squote }} {{ end }}{{ if .Groups }}--groups {{ .Groups | join "," | squote }} {{ end }}{{ .Name | squote }}
{{- end }}
log_phase "users: end"
`

// generateUsers emits the account provisioning script with
// remove-before-create semantics per account.
func generateUsers(cfg *config.Configuration) ([]Artifact, error) {
	if len(cfg.Users) == 0 {
		return nil, nil
	}

	users := make([]config.User, len(cfg.Users))
	copy(users, cfg.Users)
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })

	content, err := renderScript("users", usersScript, struct {
		Users []config.User
	}{users})
	if err != nil {
		return nil, err
	}

	return []Artifact{
		{Path: "scripts/30-users.sh", Content: content, Kind: KindScript},
	}, nil
}
