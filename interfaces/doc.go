// Package interfaces defines core interfaces and types for the TLS bootstrap
// helper, separating interface definitions from implementations.
//
// # Collaborator Interfaces
//
// CommandRunner: Executes external tools such as openssl and sudo.
//
// CertificateGenerator: Produces a self-signed certificate and private key pair
// on disk, either by invoking openssl or in-process.
//
// PrivilegedFS: Applies ownership and mode changes, elevating privilege for a
// single operation when the current process is not allowed to perform it.
//
// # Types
//
//   - Ownership: numeric uid/gid pair applied to provisioned directories
//   - CertificateRequest: subject, subjectAltName, validity and output paths
//
// # Errors
//
// Every failure surfaced by the provisioner wraps one of the sentinel errors
// (ErrMissingDependency, ErrDirectoryCreation, ErrPermissionSet,
// ErrCertificateGeneration, ErrCertificateOutputMissing, ErrOwnershipChange,
// ErrInvalidConfig) so callers can classify it with errors.Is.
package interfaces
