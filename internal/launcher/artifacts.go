package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-dart-project/models"
)

// CheckArtifacts verifies that the AOT library and ICU data are regular
// files and that the assets path is a directory. All problems are reported
// together.
func CheckArtifacts(plan models.LaunchPlan) error {
	return errors.Join(
		checkArtifact("aot library", plan.AOTLibraryPath, false),
		checkArtifact("assets", plan.AssetsPath, true),
		checkArtifact("icu data", plan.ICUDataPath, false),
	)
}

func checkArtifact(name, path string, wantDir bool) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s at %q", ErrArtifactMissing, name, path)
	}
	if err != nil {
		return fmt.Errorf("stat %s at %q: %w", name, path, err)
	}

	if info.IsDir() != wantDir {
		return fmt.Errorf("%w: %s at %q", ErrArtifactKind, name, path)
	}

	return nil
}
