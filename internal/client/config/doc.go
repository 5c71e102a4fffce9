// Package config loads runtime settings for the EditaisBR client.
//
// Sources are layered in this order, later ones overriding earlier ones:
// built-in defaults, a JSON file (path via -c/-config), environment
// variables (EDITAIS_* prefix), then command-line flags.
package config
