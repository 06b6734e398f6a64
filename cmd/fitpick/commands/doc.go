// Package commands defines the fitpick CLI.
//
// Commands
//
//   - fit      Compute a named fit for a cylindrical or rectangular part
//   - limits   Compute the limits of one tolerance class at a size
//   - fits     List the fit catalog
//   - sweep    Evaluate every catalog fit at one diameter
//   - tables   Describe or export the reference tables
//
// # Implementation
//
// The root command reads app.Config from the environment, applies the
// persistent flags on top, and builds the engine once before any subcommand
// runs. With --server (or FITPICK_SERVER) the engine is an HTTP client for a
// running fitserver; otherwise everything is computed in-process. Results are
// printed as aligned text or, with --output json, as the API's JSON.
package commands
