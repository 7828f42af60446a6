package validate

import (
	"regexp"
	"strings"
)

var (
	// pathCharset is the character class every path field must stay within.
	pathCharset = regexp.MustCompile(`^[a-zA-Z0-9/_.\-]+$`)

	// identifier is the generic identifier grammar. Fields with a known-good
	// catalogue also accept any value matching this grammar.
	identifier = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)

	// kernelParameter covers the key, key=value and flag forms of a kernel
	// command-line parameter. No whitespace, no quoting.
	kernelParameter = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+(=[a-zA-Z0-9_.,:/\-]+)?$`)

	// moduleName matches kernel module names as listed under /lib/modules.
	moduleName = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)

	// userName follows the account name grammar accepted by useradd.
	userName = regexp.MustCompile(`^[a-z_][a-z0-9_\-]*\$?$`)

	// interfaceName matches kernel network interface names (IFNAMSIZ bound
	// checked separately).
	interfaceName = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`)

	// sysctlKey matches dotted sysctl keys such as net.ipv4.ip_forward.
	sysctlKey = regexp.MustCompile(`^[a-z0-9_\-]+(\.[a-z0-9_*\-]+)+$`)

	// imageReference is a pragmatic approximation of the OCI image reference
	// grammar: registry/name with optional tag or digest.
	imageReference = regexp.MustCompile(`^[a-z0-9]+([._\-/:@][a-zA-Z0-9._\-]+)*$`)
)

// checkPath applies the path grammar: absolute, no ".." segment, charset
// restricted. It returns a non-empty reason when the value is invalid.
func checkPath(value string) string {
	if value == "" {
		return "empty path"
	}
	if !strings.HasPrefix(value, "/") {
		return "must be absolute"
	}
	for _, segment := range strings.Split(value, "/") {
		if segment == ".." {
			return "must not contain '..'"
		}
	}
	if !pathCharset.MatchString(value) {
		return "contains characters outside [a-zA-Z0-9/_.-]"
	}
	return ""
}

// inCatalogue reports whether value is a member of a known-good catalogue.
func inCatalogue(value string, catalogue []string) bool {
	for _, entry := range catalogue {
		if value == entry {
			return true
		}
	}
	return false
}

// catalogueOrIdentifier implements the acceptance rule for catalogued
// identifier fields: membership in the catalogue and a generic identifier
// grammar match are both acceptance paths.
func catalogueOrIdentifier(value string, catalogue []string) bool {
	return inCatalogue(value, catalogue) || identifier.MatchString(value)
}
