// Package app is the composition root for portal.
//
// Run loads configuration, opens the log file, builds the API client and the
// shared state.Store, starts the loader's background recovery and then hands
// control to the Bubble Tea UI. Everything started here stops when the UI
// exits or the parent context is cancelled.
//
//	┌──────────────┐
//	│    Run()     │ config, log, prefs, client
//	└──────┬───────┘
//	       │
//	┌──────▼────────┐        ┌──────────────┐
//	│ browse.Loader │───────►│ state.Store  │
//	└──────▲────────┘        └──────┬───────┘
//	       │ load cmds              │ snapshots
//	┌──────┴────────────────────────▼───────┐
//	│                ui.Model               │
//	└───────────────────────────────────────┘
package app
