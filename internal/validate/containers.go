package validate

import (
	"sysforge/internal/config"
)

func validateContainers(containers []config.Container) []ValidationError {
	var errs []ValidationError

	for _, container := range containers {
		if !imageReference.MatchString(container.Image) {
			errs = append(errs, InvalidImageReference{Container: container.Name, Value: container.Image})
		}
	}

	return errs
}
