package generate

import (
	"fmt"
	"sort"
	"strings"

	"sysforge/internal/config"
)

const bootScript = `
log_phase "boot: begin"
bootctl install --no-variables || true
mkdir -p /boot/loader/entries
{{- range .Entries }}
rm -f /boot/loader/entries/{{ .Slug }}.conf
install -m 0644 configs/boot-entry-{{ .Slug }}.conf /boot/loader/entries/{{ .Slug }}.conf
{{- end }}
install -m 0644 configs/loader.conf /boot/loader/loader.conf
{{- if .HasHooks }}
log_phase "boot: regenerating initramfs"
sysforge-mkinitramfs --config configs/initramfs.conf
{{- end }}
log_phase "boot: end"
`

type bootEntryView struct {
	config.BootEntry
	Slug string
}

// generateBoot lowers the boot configuration for the selected loader.
// Only systemd-boot has a backend; any other loader selection yields a
// placeholder script instead of an error.
func generateBoot(cfg *config.Configuration) ([]Artifact, error) {
	boot := cfg.Boot
	if len(boot.Entries) == 0 && len(boot.KernelParameters) == 0 &&
		boot.SplashTheme == "" && len(boot.InitramfsHooks) == 0 {
		return nil, nil
	}

	if boot.Loader != config.DefaultBootLoader {
		return []Artifact{
			{Path: "scripts/40-boot.sh", Content: placeholderScript("boot loader", boot.Loader), Kind: KindScript},
		}, nil
	}

	entries := make([]bootEntryView, 0, len(boot.Entries))
	seen := make(map[string]bool, len(boot.Entries))
	for _, entry := range boot.Entries {
		// Distinct titles can slugify to the same name ("Linux LTS" and
		// "Linux-LTS"); disambiguate with an ordinal so no entry file is
		// overwritten. Configuration order decides who keeps the bare slug.
		slug := slugify(entry.Title)
		for n := 2; seen[slug]; n++ {
			slug = fmt.Sprintf("%s-%d", slugify(entry.Title), n)
		}
		seen[slug] = true
		entries = append(entries, bootEntryView{BootEntry: entry, Slug: slug})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Slug < entries[j].Slug })

	var artifacts []Artifact

	content, err := renderScript("boot", bootScript, struct {
		Entries  []bootEntryView
		HasHooks bool
	}{entries, len(boot.InitramfsHooks) > 0})
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, Artifact{Path: "scripts/40-boot.sh", Content: content, Kind: KindScript})

	artifacts = append(artifacts, Artifact{
		Path:    "configs/loader.conf",
		Content: loaderConf(boot, entries),
		Kind:    KindConfigFile,
	})

	for _, entry := range entries {
		artifacts = append(artifacts, Artifact{
			Path:    "configs/boot-entry-" + entry.Slug + ".conf",
			Content: bootEntryConf(entry, boot.KernelParameters),
			Kind:    KindConfigFile,
		})
	}

	if len(boot.InitramfsHooks) > 0 {
		hooks := append([]string(nil), boot.InitramfsHooks...)
		artifacts = append(artifacts, Artifact{
			Path:    "configs/initramfs.conf",
			Content: "HOOKS=(" + strings.Join(hooks, " ") + ")\n",
			Kind:    KindConfigFile,
		})
	}

	if boot.SplashTheme != "" {
		artifacts = append(artifacts, Artifact{
			Path:    "configs/plymouthd.conf",
			Content: "[Daemon]\nTheme=" + boot.SplashTheme + "\n",
			Kind:    KindConfigFile,
		})
	}

	return artifacts, nil
}

func loaderConf(boot config.BootConfig, entries []bootEntryView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "timeout %d\n", boot.TimeoutSeconds)
	for _, entry := range entries {
		if entry.Default {
			fmt.Fprintf(&sb, "default %s.conf\n", entry.Slug)
			break
		}
	}
	return sb.String()
}

func bootEntryConf(entry bootEntryView, globalParams []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "title %s\n", entry.Title)
	fmt.Fprintf(&sb, "linux %s\n", entry.Kernel)
	if entry.Initrd != "" {
		fmt.Fprintf(&sb, "initrd %s\n", entry.Initrd)
	}
	options := append(append([]string(nil), globalParams...), entry.Options...)
	if len(options) > 0 {
		fmt.Fprintf(&sb, "options %s\n", strings.Join(options, " "))
	}
	return sb.String()
}

// slugify turns a boot entry title into a filename-safe slug.
func slugify(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}
	return sb.String()
}
