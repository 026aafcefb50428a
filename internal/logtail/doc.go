// Package logtail reads the tail of portal's log file for the in-app log view.
//
// Read keeps a ring buffer of the last N lines, so memory stays bounded by N
// regardless of file size. LevelOf and Filter recognise the level tokens the
// charmbracelet/log text formatter writes (DEBU, INFO, WARN, ERRO, FATA).
package logtail
