package validate

import (
	"sysforge/internal/config"
)

func validateStorage(storage config.StorageConfig) []ValidationError {
	var errs []ValidationError

	for _, fs := range storage.Filesystems {
		if reason := checkPath(fs.Device); reason != "" {
			errs = append(errs, InvalidPath{FieldPath: "storage.filesystems.device", Value: fs.Device, Reason: reason})
		}
		if reason := checkPath(fs.MountPoint); reason != "" {
			errs = append(errs, InvalidPath{FieldPath: "storage.filesystems.mountPoint", Value: fs.MountPoint, Reason: reason})
		}
	}

	if storage.Swap != nil {
		if reason := checkPath(storage.Swap.Path); reason != "" {
			errs = append(errs, InvalidPath{FieldPath: "storage.swap.path", Value: storage.Swap.Path, Reason: reason})
		}
	}

	return errs
}
