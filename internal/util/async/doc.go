// Package async runs independent tasks and collects all of their errors.
//
// The [Run] function is used by the janitor pass to scan and reconcile
// resource kinds either one after another or concurrently.
package async
