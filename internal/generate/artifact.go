package generate

// ArtifactKind classifies a generated artifact. The kind determines where
// the writer places the file and whether it gets the executable bit.
type ArtifactKind string

const (
	// KindScript is an executable shell script under scripts/ or containers/.
	KindScript ArtifactKind = "script"

	// KindUnit is a service-manager unit description under systemd/.
	KindUnit ArtifactKind = "unit"

	// KindConfigFile is a flat key=value or INI-style file under configs/.
	KindConfigFile ArtifactKind = "configfile"
)

// Artifact is one generated output file: a path relative to the output
// directory, its content, and its kind. Artifacts are created in memory and
// written once by the writer; generation itself performs no I/O.
type Artifact struct {
	Path    string
	Content string
	Kind    ArtifactKind
}
