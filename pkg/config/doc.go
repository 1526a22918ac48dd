// Package config loads pihello's configuration.
//
// Values are layered, later layers winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/pihello/config.toml, or the file
//     given with --config
//  3. environment variables: PIHELLO_CONSOLE_WIDTH sets console.width
//  4. command line flags, passed in as overrides
//
// Keys are single words so that the environment mapping, which turns every
// underscore into a dot, stays unambiguous.
package config
