// Package config provides configuration parsing for hydrate tooling.
//
// The configuration is stored in hydrate.json next to the markup and
// delta files it applies to. This package handles loading, saving, and
// validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "eventPrefix": "on",
//	  "log": {
//	    "level": "debug",
//	    "format": "json"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "hydrate"
//	  },
//	  "render": {
//	    "pretty": true,
//	    "indent": "  "
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger := cfg.Logger(os.Stderr)
package config
