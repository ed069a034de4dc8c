package interfaces

import "errors"

var (
	// ErrInvalidConfig is returned when the provisioning configuration cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingDependency is returned when a required external tool is not invocable.
	// It is raised before any filesystem mutation.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrDirectoryCreation is returned when a provisioned directory cannot be created.
	ErrDirectoryCreation = errors.New("directory creation failed")

	// ErrPermissionSet is returned when mode bits cannot be applied to a path.
	ErrPermissionSet = errors.New("permission change failed")

	// ErrCertificateGeneration is returned when the certificate generator itself fails.
	ErrCertificateGeneration = errors.New("certificate generation failed")

	// ErrCertificateOutputMissing is returned when generation reported success
	// but the certificate or key file is absent or empty.
	ErrCertificateOutputMissing = errors.New("certificate output missing")

	// ErrOwnershipChange is returned when ownership cannot be applied. The
	// runtime user would be unable to read the certificate or data directory.
	ErrOwnershipChange = errors.New("ownership change failed")
)
