// Package filesystem provides the OS-backed implementation of types.FS.
//
// Commands take a types.FS so tests can observe filesystem effects without
// touching the real home directory; production code always uses NewOS().
package filesystem
