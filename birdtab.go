// Package birdtab extracts bird species records from taxonomy HTML pages
// and writes them as rows of a fixed-schema CSV dataset.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., nethtml/, goquery/, csv/).
package birdtab
