package provisioner

import "os"

// Modes applied to provisioned paths. PostgreSQL refuses to start when the
// data directory or the key file is accessible to group or other.
const (
	DataDirPerm  os.FileMode = 0o700
	CertDirPerm  os.FileMode = 0o755
	CertFilePerm os.FileMode = 0o644
	KeyFilePerm  os.FileMode = 0o600

	ConfFilePerm    os.FileMode = 0o644
	InitSQLFilePerm os.FileMode = 0o600
	extrasDirPerm   os.FileMode = 0o755
)
