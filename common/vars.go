package common

// Version is set at build time with -ldflags "-X github.com/ruteri/pgtls-bootstrap/common.Version=...".
var Version = "dev"
