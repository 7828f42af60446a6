package generate

import (
	"fmt"

	"sysforge/internal/config"
)

// subsystemGenerator lowers one subsystem of the IR into artifacts.
type subsystemGenerator struct {
	name string
	fn   func(*config.Configuration) ([]Artifact, error)
}

// generators is the fixed invocation order. The order is explicit rather
// than derived from any map iteration so that identical configurations
// always yield identical artifact sets in identical order.
var generators = []subsystemGenerator{
	{"system", generateSystem},
	{"repositories", generateRepositories},
	{"packages", generatePackages},
	{"users", generateUsers},
	{"boot", generateBoot},
	{"security", generateSecurity},
	{"network", generateNetwork},
	{"storage", generateStorage},
	{"hardware", generateHardware},
	{"containers", generateContainers},
	{"services", generateServices},
}

// Generate lowers a configuration tree into the complete artifact set. It is
// pure in-memory: writing to disk is the caller's responsibility. Generation
// does not depend on validation having passed; a structurally invalid tree
// still produces a complete, well-formed artifact set.
func Generate(cfg *config.Configuration) ([]Artifact, error) {
	var artifacts []Artifact
	for _, gen := range generators {
		subsystemArtifacts, err := gen.fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("generating %s artifacts: %w", gen.name, err)
		}
		artifacts = append(artifacts, subsystemArtifacts...)
	}
	return artifacts, nil
}
