// Package linker wires quiz page generation to the navigation map of a host
// page. It adds, removes, and lists map entries for single links and runs
// batch manifests that generate many pages and relink them in one pass.
package linker
