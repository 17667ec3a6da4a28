// Package platform provides cross-platform filesystem operations: moving a
// file across filesystems and setting permissions. Chmod is a no-op on
// Windows, which has no Unix permission bits.
package platform
