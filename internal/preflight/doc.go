// Package preflight provides readiness checks for the filesystem paths and
// campaign file a generator run depends on.
//
// The CLI "dcofeed config validate" command runs every check and renders
// the results; a failing check fails the command. Log directory checks are
// skipped when file logging is disabled.
package preflight
