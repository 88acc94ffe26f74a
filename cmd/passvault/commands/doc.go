// Package commands defines the passvault CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen   Generate a key and write it to the key file
//   - init     Create (or truncate) the password file
//   - add      Encrypt a password and append it to the password file
//   - get      Print the password stored for a site
//   - list     Print the sites in the password file
//   - shell    Interactive menu over the same operations
//
// # Implementation
//
// The root command sets up the zap logger and builds the app (stores and
// services) before any subcommand runs. Relative --key and --file paths
// resolve against --dir, which defaults to $PASSVAULT_DIR or the current
// directory.
package commands
