package launcher

import "errors"

var (
	// ErrNilProject is returned by New when no project is given.
	ErrNilProject = errors.New("project is not specified")
	// ErrArtifactMissing is returned by CheckArtifacts when an artifact
	// does not exist.
	ErrArtifactMissing = errors.New("artifact not found")
	// ErrArtifactKind is returned by CheckArtifacts when an artifact is a
	// directory where a file is expected or the other way round.
	ErrArtifactKind = errors.New("artifact has unexpected type")
)
