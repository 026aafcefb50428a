// Package state holds the character listing shared by the loader and the UI.
//
// The loader calls Begin when the query changes and Complete when the request
// returns. Each Begin bumps a sequence number, so a slow response for an old
// query cannot overwrite the result of a newer one. The UI reads copies via
// Snapshot.
//
// Completion rules:
//
//   - success replaces the results and resets the failure count
//   - a 404 from the API means nothing matched; results are cleared and
//     NotFound is set, but it is not counted as a failure
//   - any other error clears the results, records LastError and increments
//     ConsecutiveFailures; two or more in a row marks the snapshot offline
//
// The zero Store is ready to use.
package state
