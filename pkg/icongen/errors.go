package icongen

import "errors"

var (
	// Tool errors 🧰
	ErrToolMissing   = errors.New("❌ image converter not available")
	ErrInstallFailed = errors.New("❌ converter installation failed")

	// Conversion errors 🖼️
	ErrConversionFailed      = errors.New("❌ icon conversion failed")
	ErrUnsupportedBackground = errors.New("❌ unsupported background")

	// Verification errors 🔍
	ErrVerificationFailed = errors.New("❌ icon verification failed")
)
