// Package backend hosts the thin layer that links the Go API to the
// numbering-plan engine (github.com/nyaruka/phonenumbers). No other package
// imports the engine directly, so the ordinal tables in this package are the
// only place where engine constants meet the ABI enums.
package backend
