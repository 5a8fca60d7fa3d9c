// Package report holds the plain-data model handed to renderers: one
// FleetReport per run, one TargetReport per requested cluster, and one
// Section per requested domain. Field names in the YAML and JSON tags are
// the contract with the rendering layer and must stay stable.
package report
