// Package commands defines the featcenter CLI.
//
// Commands
//
//   - grid    Print the latitude and longitude axes of a transform grid
//   - demo    Center a synthetic Gaussian bump and report where its peak lands
//
// The root command builds a slog logger from --log-level and --log-format
// before any subcommand runs. Timing in demo goes through a swappable
// clockwork clock so tests get stable output.
package commands
