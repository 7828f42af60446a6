package validate

import (
	"sort"

	"sysforge/internal/config"
)

func validateRepositories(repos []config.Repository) []ValidationError {
	var errs []ValidationError

	nameCounts := make(map[string]int)
	for _, repo := range repos {
		nameCounts[repo.Name]++
	}
	var duplicated []string
	for name, count := range nameCounts {
		if count > 1 {
			duplicated = append(duplicated, name)
		}
	}
	sort.Strings(duplicated)
	for _, name := range duplicated {
		errs = append(errs, DuplicateRepository{Name: name, Count: nameCounts[name]})
	}

	for _, repo := range repos {
		if repo.GPGKeyPath != "" {
			if reason := checkPath(repo.GPGKeyPath); reason != "" {
				errs = append(errs, InvalidPath{FieldPath: "repositories.gpgKeyPath", Value: repo.GPGKeyPath, Reason: reason})
			}
		}
	}

	return errs
}

func validatePackages(packages config.PackagesConfig) []ValidationError {
	var errs []ValidationError

	known := make(map[string]bool, len(packages.Layers))
	for _, layer := range packages.Layers {
		known[layer.Name] = true
	}

	for _, layer := range packages.Layers {
		for _, dep := range layer.DependsOn {
			if !known[dep] {
				errs = append(errs, UnknownLayerDependency{Layer: layer.Name, DependsOn: dep})
			}
		}
	}

	return errs
}
