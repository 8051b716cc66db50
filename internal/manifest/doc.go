// Package manifest parses and validates batch manifests: YAML files that list
// the chapters to generate from one template and the host page whose
// navigation map should link them. Manifests are checked against an embedded
// JSON Schema and a supported format version before use.
package manifest
