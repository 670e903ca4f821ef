// Package catalog provides the in-memory policy catalog consumed by the
// coverage evaluator.
//
// Policies are loaded once at startup from YAML files (a single file or a
// directory of files) and indexed by policy number. The catalog is
// immutable between reloads and safe for unlimited concurrent readers; a
// reload builds a complete replacement index and swaps it atomically, so
// in-flight lookups always see a consistent snapshot.
//
// Two reload triggers are supported: a filesystem watcher (fsnotify) that
// reacts to changes in the policy path, and an optional cron schedule for
// deployments where file notifications are unavailable. A failed reload
// keeps the previous catalog.
package catalog
