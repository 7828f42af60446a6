package validate

import (
	"sort"

	"sysforge/internal/config"
)

// splashThemeCatalogue lists the boot splash themes shipped with common
// plymouth packages. Themes outside the catalogue are still accepted when
// they match the generic identifier grammar.
var splashThemeCatalogue = []string{
	"bgrt",
	"details",
	"fade-in",
	"script",
	"solar",
	"spinfinity",
	"spinner",
	"text",
	"tribar",
	"two-step",
}

// initramfsHookCatalogue lists the initramfs hooks known to the supported
// initramfs generators.
var initramfsHookCatalogue = []string{
	"autodetect",
	"base",
	"block",
	"consolefont",
	"encrypt",
	"filesystems",
	"fsck",
	"keyboard",
	"keymap",
	"kms",
	"lvm2",
	"mdadm_udev",
	"modconf",
	"resume",
	"sd-vconsole",
	"systemd",
	"udev",
}

func validateBoot(boot config.BootConfig) []ValidationError {
	var errs []ValidationError

	// One error per duplicated title, regardless of how many entries share
	// it.
	titleCounts := make(map[string]int)
	for _, entry := range boot.Entries {
		titleCounts[entry.Title]++
	}
	var duplicated []string
	for title, count := range titleCounts {
		if count > 1 {
			duplicated = append(duplicated, title)
		}
	}
	sort.Strings(duplicated)
	for _, title := range duplicated {
		errs = append(errs, ConflictingBootEntries{Title: title, Count: titleCounts[title]})
	}

	for _, entry := range boot.Entries {
		if reason := checkPath(entry.Kernel); reason != "" {
			errs = append(errs, InvalidPath{FieldPath: "boot.entries.kernel", Value: entry.Kernel, Reason: reason})
		}
		if entry.Initrd != "" {
			if reason := checkPath(entry.Initrd); reason != "" {
				errs = append(errs, InvalidPath{FieldPath: "boot.entries.initrd", Value: entry.Initrd, Reason: reason})
			}
		}
		for _, option := range entry.Options {
			if !kernelParameter.MatchString(option) {
				errs = append(errs, InvalidKernelParameter{Value: option})
			}
		}
	}

	for _, param := range boot.KernelParameters {
		if !kernelParameter.MatchString(param) {
			errs = append(errs, InvalidKernelParameter{Value: param})
		}
	}

	if boot.SplashTheme != "" && !catalogueOrIdentifier(boot.SplashTheme, splashThemeCatalogue) {
		errs = append(errs, InvalidSplashTheme{Value: boot.SplashTheme})
	}

	for _, hook := range boot.InitramfsHooks {
		if !catalogueOrIdentifier(hook, initramfsHookCatalogue) {
			errs = append(errs, InvalidInitramfsHook{Value: hook})
		}
	}

	return errs
}
