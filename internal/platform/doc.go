// Package platform provides cross-platform filesystem operations: atomic file
// replacement that keeps the original permission bits, and permission changes
// that degrade to no-ops on Windows.
package platform
