package flags

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/ruteri/pgtls-bootstrap/common"
	"github.com/ruteri/pgtls-bootstrap/pgconf"
	"github.com/ruteri/pgtls-bootstrap/provisioner"
	"github.com/urfave/cli/v2"
)

// SetupLogger builds the logger from the log flags. Output goes to the app's
// error writer.
func SetupLogger(cCtx *cli.Context) (log *slog.Logger) {
	logJSON := cCtx.Bool(LogJsonFlag.Name)
	logDebug := cCtx.Bool(LogDebugFlag.Name)
	logUID := cCtx.Bool(LogUidFlag.Name)
	logService := cCtx.String("log-service")

	var output io.Writer = os.Stderr
	if cCtx.App != nil && cCtx.App.ErrWriter != nil {
		output = cCtx.App.ErrWriter
	}

	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   logDebug,
		JSON:    logJSON,
		Service: logService,
		Version: common.Version,
		Output:  output,
	})

	if logUID {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}

// ProvisionerConfig maps the provisioning flags onto a provisioner.Config.
func ProvisionerConfig(cCtx *cli.Context) provisioner.Config {
	return provisioner.Config{
		UID:               cCtx.Int(UIDFlag.Name),
		GID:               cCtx.Int(GIDFlag.Name),
		Subject:           cCtx.String(SubjectFlag.Name),
		Days:              cCtx.Int(DaysFlag.Name),
		SAN:               cCtx.String(SANFlag.Name),
		CertDir:           cCtx.String(CertDirFlag.Name),
		DataDir:           cCtx.String(DataDirFlag.Name),
		Generator:         cCtx.String(GeneratorFlag.Name),
		AllowSudo:         !cCtx.Bool(NoSudoFlag.Name),
		StrictPermissions: cCtx.Bool(StrictPermissionsFlag.Name),
		PGConfFile:        cCtx.String(PGConfFileFlag.Name),
		PGCertMount:       cCtx.String(PGCertMountFlag.Name),
		InitSQLFile:       cCtx.String(InitSQLFileFlag.Name),
		DBUser:            cCtx.String(DBUserFlag.Name),
		DBPassword:        cCtx.String(DBPasswordFlag.Name),
		DBName:            cCtx.String(DBNameFlag.Name),
	}
}

var defaults = provisioner.DefaultConfig()

var UIDFlag = &cli.IntFlag{
	Name:    "uid",
	Value:   defaults.UID,
	EnvVars: []string{"PG_UID"},
	Usage:   "numeric user id PostgreSQL runs as inside the container",
}
var GIDFlag = &cli.IntFlag{
	Name:    "gid",
	Value:   defaults.GID,
	EnvVars: []string{"PG_GID"},
	Usage:   "numeric group id PostgreSQL runs as inside the container",
}
var SubjectFlag = &cli.StringFlag{
	Name:    "subject",
	Value:   defaults.Subject,
	EnvVars: []string{"CERT_SUBJECT"},
	Usage:   "certificate subject in /K=V/K=V form",
}
var DaysFlag = &cli.IntFlag{
	Name:    "days",
	Value:   defaults.Days,
	EnvVars: []string{"CERT_DAYS"},
	Usage:   "certificate validity in days",
}
var SANFlag = &cli.StringFlag{
	Name:    "san",
	Value:   defaults.SAN,
	EnvVars: []string{"CERT_SAN"},
	Usage:   "subjectAltName entries, comma separated TYPE:value with DNS, IP, email or URI",
}
var CertDirFlag = &cli.StringFlag{
	Name:    "cert-dir",
	Value:   defaults.CertDir,
	EnvVars: []string{"CERT_DIR"},
	Usage:   "directory receiving cert.pem and key.pem",
}
var DataDirFlag = &cli.StringFlag{
	Name:    "data-dir",
	Value:   defaults.DataDir,
	EnvVars: []string{"DATA_DIR"},
	Usage:   "PostgreSQL data directory",
}
var GeneratorFlag = &cli.StringFlag{
	Name:    "generator",
	Value:   defaults.Generator,
	EnvVars: []string{"CERT_GENERATOR"},
	Usage:   "certificate generator: openssl or native",
}
var NoSudoFlag = &cli.BoolFlag{
	Name:    "no-sudo",
	Value:   false,
	EnvVars: []string{"NO_SUDO"},
	Usage:   "never elevate with sudo; fail when ownership cannot be changed directly",
}
var StrictPermissionsFlag = &cli.BoolFlag{
	Name:    "strict-permissions",
	Value:   false,
	EnvVars: []string{"STRICT_PERMISSIONS"},
	Usage:   "fail instead of warning when the certificate directory mode cannot be set",
}
var PGConfFileFlag = &cli.StringFlag{
	Name:    "pg-conf-file",
	EnvVars: []string{"PG_CONF_FILE"},
	Usage:   "if set, write a postgresql.conf snippet enabling TLS to this path (kept if present)",
}
var PGCertMountFlag = &cli.StringFlag{
	Name:    "pg-cert-mount",
	Value:   pgconf.DefaultCertMount,
	EnvVars: []string{"PG_CERT_MOUNT"},
	Usage:   "path the certificate directory is mounted at inside the container",
}
var InitSQLFileFlag = &cli.StringFlag{
	Name:    "init-sql-file",
	EnvVars: []string{"INIT_SQL_FILE"},
	Usage:   "if set, write a script creating --db-user and --db-name to this path (kept if present)",
}
var DBUserFlag = &cli.StringFlag{
	Name:    "db-user",
	EnvVars: []string{"DB_USER"},
	Usage:   "role created by the init script",
}
var DBPasswordFlag = &cli.StringFlag{
	Name:    "db-password",
	EnvVars: []string{"DB_PASSWORD"},
	Usage:   "password of the role created by the init script",
}
var DBNameFlag = &cli.StringFlag{
	Name:    "db-name",
	EnvVars: []string{"DB_NAME"},
	Usage:   "database created by the init script, defaults to --db-user",
}

var ProvisionerFlags = []cli.Flag{
	UIDFlag,
	GIDFlag,
	SubjectFlag,
	DaysFlag,
	CertDirFlag,
	DataDirFlag,
	SANFlag,
	GeneratorFlag,
	NoSudoFlag,
	StrictPermissionsFlag,
	PGConfFileFlag,
	PGCertMountFlag,
	InitSQLFileFlag,
	DBUserFlag,
	DBPasswordFlag,
	DBNameFlag,
}

var LogJsonFlag = &cli.BoolFlag{
	Name:  "log-json",
	Value: false,
	Usage: "log in JSON format",
}
var LogDebugFlag = &cli.BoolFlag{
	Name:  "log-debug",
	Value: false,
	Usage: "log debug messages",
}
var LogUidFlag = &cli.BoolFlag{
	Name:  "log-uid",
	Value: false,
	Usage: "generate a uuid and add to all log messages",
}

var LogServiceFlagFn = func(service string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "log-service",
		Value: service,
		Usage: "add 'service' tag to logs",
	}
}

var CommonFlags = []cli.Flag{
	LogJsonFlag,
	LogDebugFlag,
	LogUidFlag,
}
