// Package browse drives the character listing and details views.
//
// Loader turns a state.Query into a ListCharacters call and records the
// result in a state.Store. StartRecovery is the background counterpart: while
// the last load failed it keeps retrying the current query, doubling the wait
// after each failure up to 30 seconds. LoadDetails gathers everything the
// details view shows, fetching the related location and episode records
// concurrently.
package browse
