// Package cli implements the interactive EditaisBR client: a REPL over the
// session resolver and the notice services. Commands cover login and
// registration, the merged notice listing with its three filters, favorites,
// view counters, the publish wizard and the profile dashboard.
package cli
