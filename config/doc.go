// Package config loads gridlab run files.
//
// A run file lists puzzles to solve. Each puzzle names its kind, its input
// file and the parameters the kind understands. Two formats are accepted,
// chosen by file extension:
//
//	.yaml / .yml   plain YAML, decoded with gopkg.in/yaml.v3
//	.hcl           HCL blocks, decoded with gohcl; expressions may refer to
//	               caller supplied variables as var.<name>
//
// HCL example:
//
//	puzzle "scan" {
//	  kind  = "beacon"
//	  input = "beacons.txt"
//	  row   = var.row
//	  search {
//	    min = 0
//	    max = var.limit
//	  }
//	}
//
// Relative input paths are resolved against the run file's directory.
// Missing parameters get their defaults and the result is validated; any
// violation is reported as ErrInvalid.
package config
