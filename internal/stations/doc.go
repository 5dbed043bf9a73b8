// Package stations provides read-only access to station metadata, currently
// the per-station amplitude scale factors used for normalization.
//
// Two backends exist: a YAML file for standalone deployments and a
// PostgreSQL table for installations that already maintain station metadata
// centrally.
package stations
