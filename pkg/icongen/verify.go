package icongen

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// Verify checks that every manifest entry exists in dir as a PNG of the
// expected size. All problems are reported together.
func Verify(dir string, entries []Entry) error {
	var problems []error
	for _, e := range entries {
		if err := verifyEntry(filepath.Join(dir, e.Filename), e); err != nil {
			problems = append(problems, err)
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrVerificationFailed, errors.Join(problems...))
	}
	return nil
}

func verifyEntry(path string, e Entry) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", e.Filename, err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("%s: not a PNG: %w", e.Filename, err)
	}
	if cfg.Width != e.Size || cfg.Height != e.Size {
		return fmt.Errorf("%s: got %dx%d, want %s", e.Filename, cfg.Width, cfg.Height, e.Dimensions())
	}
	return nil
}
