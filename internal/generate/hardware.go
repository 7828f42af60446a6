package generate

import (
	"fmt"
	"sort"
	"strings"

	"sysforge/internal/config"
)

const firmwareScript = `
log_phase "firmware: begin"
{{- range .FirmwarePaths }}
install -m 0644 {{ . | squote }} /lib/firmware/updates/
{{- end }}
log_phase "firmware: end"
`

// generateHardware emits module load/blacklist drop-ins and the firmware
// install script. Module lists are sorted before emission.
func generateHardware(cfg *config.Configuration) ([]Artifact, error) {
	hw := cfg.Hardware
	if len(hw.KernelModules) == 0 && len(hw.BlacklistedModules) == 0 && len(hw.FirmwarePaths) == 0 {
		return nil, nil
	}

	var artifacts []Artifact

	if len(hw.KernelModules) > 0 {
		modules := append([]string(nil), hw.KernelModules...)
		sort.Strings(modules)
		artifacts = append(artifacts, Artifact{
			Path:    "configs/sysforge-modules.conf",
			Content: strings.Join(modules, "\n") + "\n",
			Kind:    KindConfigFile,
		})
	}

	if len(hw.BlacklistedModules) > 0 {
		blacklisted := append([]string(nil), hw.BlacklistedModules...)
		sort.Strings(blacklisted)
		var sb strings.Builder
		for _, module := range blacklisted {
			fmt.Fprintf(&sb, "blacklist %s\n", module)
		}
		artifacts = append(artifacts, Artifact{
			Path:    "configs/sysforge-blacklist.conf",
			Content: sb.String(),
			Kind:    KindConfigFile,
		})
	}

	if len(hw.FirmwarePaths) > 0 {
		paths := append([]string(nil), hw.FirmwarePaths...)
		sort.Strings(paths)
		content, err := renderScript("firmware", firmwareScript, struct {
			FirmwarePaths []string
		}{paths})
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{Path: "scripts/80-firmware.sh", Content: content, Kind: KindScript})
	}

	return artifacts, nil
}
