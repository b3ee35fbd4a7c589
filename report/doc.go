// Package report renders core.GraphStats as a locale-aware formatted table
// using golang.org/x/text/message and golang.org/x/text/number, the
// "printing/reporting helpers" spec.md's external-interfaces section calls
// for alongside export.
package report
