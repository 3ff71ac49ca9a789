// Package config loads a full device configuration document, dispatches
// each top-level block to its registered component or platform schema, and
// drives code generation for the validated result.
//
// A document looks like:
//
//	misol:
//	  id: my_station
//
//	text_sensor:
//	  - platform: misol
//	    misol_id: my_station
//	    wind_speed:
//	      name: "Wind speed"
//	    wind_direction:
//	      name: "Wind direction"
//	      three_letter_direction: true
//	      north_correction: -15
//
// Validation aggregates diagnostics across all blocks before failing, and
// no code is generated for a document with any error.
package config
