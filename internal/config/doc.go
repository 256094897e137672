// Package config loads and stores the mascotas-admin configuration.
//
// Values are resolved in this order, later sources winning:
//
//  1. built-in defaults (the public registry at misterio07.alwaysdata.net)
//  2. the YAML file (--config, or config.yaml in the configuration directory)
//  3. MASCOTAS_* environment variables
//  4. command-line flags (applied by the caller)
//
// Example file:
//
//	api:
//	  base_url: https://misterio07.alwaysdata.net
//	  endpoints:
//	    list: /mascotas
//	    record: /mascota
//	  request_timeout: 0s
//	ui:
//	  alert_timeout: 5s
//	log:
//	  level: ""
//	  file: ""
package config
