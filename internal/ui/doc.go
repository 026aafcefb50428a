// Package ui implements portal's Bubble Tea interface.
//
// # Views
//
//   - List: search box, status filter, the current page of characters and a
//     pager shown when the listing spans more than one page
//   - Details: one character with its origin, location and episodes
//   - Logs: the tail of portal's own log file
//
// # Data Flow
//
// Loads go through browse.Loader, which records every outcome in the shared
// state.Store. The model also polls the store on a tick so results written by
// the loader's background recovery show up without a key press. Snapshots for
// a query other than the one on screen are ignored.
//
// Typing in the search box bumps a sequence number and schedules a message
// 300ms later; only the message carrying the latest number triggers a load.
// Any change to the query or status filter goes back to page 1.
//
// # Preferences
//
// Theme and status filter changes are written to the prefs file straight
// away and restored on the next launch.
package ui
