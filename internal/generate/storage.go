package generate

import (
	"fmt"
	"sort"
	"strings"

	"sysforge/internal/config"
)

const storageScript = `
log_phase "storage: begin"
{{- range .Filesystems }}
mkdir -p {{ .MountPoint | squote }}
{{- end }}
{{- if .Swap }}
log_phase "storage: swap"
rm -f {{ .Swap.Path | squote }}
fallocate -l {{ .Swap.SizeMB }}M {{ .Swap.Path | squote }}
chmod 0600 {{ .Swap.Path | squote }}
mkswap {{ .Swap.Path | squote }}
{{- end }}
install -m 0644 configs/fstab /etc/fstab
log_phase "storage: end"
`

// generateStorage emits the fstab and the mount/swap preparation script.
// Filesystems are emitted in mount point order so parents come before
// children.
func generateStorage(cfg *config.Configuration) ([]Artifact, error) {
	storage := cfg.Storage
	if len(storage.Filesystems) == 0 && storage.Swap == nil {
		return nil, nil
	}

	filesystems := make([]config.Filesystem, len(storage.Filesystems))
	copy(filesystems, storage.Filesystems)
	sort.Slice(filesystems, func(i, j int) bool {
		return filesystems[i].MountPoint < filesystems[j].MountPoint
	})

	content, err := renderScript("storage", storageScript, struct {
		Filesystems []config.Filesystem
		Swap        *config.SwapConfig
	}{filesystems, storage.Swap})
	if err != nil {
		return nil, err
	}

	return []Artifact{
		{Path: "scripts/70-storage.sh", Content: content, Kind: KindScript},
		{Path: "configs/fstab", Content: fstab(filesystems, storage.Swap), Kind: KindConfigFile},
	}, nil
}

func fstab(filesystems []config.Filesystem, swap *config.SwapConfig) string {
	var sb strings.Builder
	for _, fs := range filesystems {
		options := "defaults"
		if len(fs.Options) > 0 {
			options = strings.Join(fs.Options, ",")
		}
		fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\t0\t0\n", fs.Device, fs.MountPoint, fs.Type, options)
	}
	if swap != nil {
		fmt.Fprintf(&sb, "%s\tnone\tswap\tdefaults\t0\t0\n", swap.Path)
	}
	return sb.String()
}
