// Package toolchain wraps the external tools the provisioner shells out to.
//
// ExecRunner implements interfaces.CommandRunner over os/exec, capturing
// combined output so failures carry the tool's own diagnostics. Require
// resolves tool names before anything touches the filesystem, and WithUmask
// scopes a restrictive file-creation mask around a single tool invocation.
package toolchain
