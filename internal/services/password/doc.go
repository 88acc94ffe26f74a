// Package password keeps the in-memory site to secret mapping and its
// append-only backing file.
//
// Every Add seals the secret with the current key and appends one
// "<site>:<token>" line; superseded lines stay in the file, and Load keeps the
// last record seen for each site. Load is all-or-nothing: the first line that
// fails to parse or authenticate aborts it and leaves the store untouched.
package password
