package validate

import (
	"sysforge/internal/config"
)

func validateHardware(hardware config.HardwareConfig) []ValidationError {
	var errs []ValidationError

	for _, module := range hardware.KernelModules {
		if !moduleName.MatchString(module) {
			errs = append(errs, InvalidModuleName{FieldPath: "hardware.kernelModules", Value: module})
		}
	}
	for _, module := range hardware.BlacklistedModules {
		if !moduleName.MatchString(module) {
			errs = append(errs, InvalidModuleName{FieldPath: "hardware.blacklistedModules", Value: module})
		}
	}

	for _, path := range hardware.FirmwarePaths {
		if reason := checkPath(path); reason != "" {
			errs = append(errs, InvalidPath{FieldPath: "hardware.firmwarePaths", Value: path, Reason: reason})
		}
	}

	return errs
}
