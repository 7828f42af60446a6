package generate

import (
	"sort"

	"sysforge/internal/config"
	"sysforge/internal/dependency"
)

const packagesScript = `
log_phase "packages: begin"
{{- if .Remove }}
log_phase "packages: removing {{ len .Remove }} packages"
pkg remove -y {{ .Remove | join " " }}
{{- end }}
{{- if .Install }}
log_phase "packages: installing {{ len .Install }} packages"
pkg install -y {{ .Install | join " " }}
{{- end }}
{{- range .Layers }}
log_phase "packages: layer {{ .Name }}"
{{- if .Packages }}
pkg install -y {{ .Packages | join " " }}
{{- end }}
{{- end }}
log_phase "packages: end"
`

// generatePackages emits the package provisioning script. Install and remove
// lists are sorted; layers are ordered so that a layer's dependencies are
// installed before the layer itself, with name order breaking ties.
func generatePackages(cfg *config.Configuration) ([]Artifact, error) {
	p := cfg.Packages
	if len(p.Install) == 0 && len(p.Remove) == 0 && len(p.Layers) == 0 {
		return nil, nil
	}

	install := append([]string(nil), p.Install...)
	sort.Strings(install)
	remove := append([]string(nil), p.Remove...)
	sort.Strings(remove)

	content, err := renderScript("packages", packagesScript, struct {
		Install []string
		Remove  []string
		Layers  []config.PackageLayer
	}{install, remove, orderLayers(p.Layers)})
	if err != nil {
		return nil, err
	}

	return []Artifact{
		{Path: "scripts/20-packages.sh", Content: content, Kind: KindScript},
	}, nil
}

// orderLayers returns the layers in dependency order. Dependencies on
// undeclared layers are ignored here; validation reports them separately.
func orderLayers(layers []config.PackageLayer) []config.PackageLayer {
	g := dependency.New()
	byName := make(map[string]config.PackageLayer, len(layers))
	for _, layer := range layers {
		byName[layer.Name] = layer
		deps := make([]dependency.NodeID, 0, len(layer.DependsOn))
		for _, dep := range layer.DependsOn {
			deps = append(deps, dependency.NodeID(dep))
		}
		g.AddNode(dependency.Node{ID: dependency.NodeID(layer.Name), DependsOn: deps})
	}

	ordered := make([]config.PackageLayer, 0, len(layers))
	for _, id := range g.TopologicalSort() {
		ordered = append(ordered, byName[string(id)])
	}
	return ordered
}
