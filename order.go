package birdtab

import (
	"path/filepath"
	"strings"
)

// FamilyOrders maps family keys (e.g. "fam_33") to taxonomic order names.
type FamilyOrders map[string]string

// DefaultFamilyOrders covers the raptor families of the eBird taxonomy.
var DefaultFamilyOrders = FamilyOrders{
	"fam_32": "Cathartiformes",  // New World Vultures
	"fam_33": "Accipitriformes", // Hawks, Eagles, Kites
	"fam_34": "Strigiformes",    // Owls
	"fam_42": "Falconiformes",   // Falcons and Caracaras
}

// Order resolves a family index attribute value such as "fam_33_0".
// Only the first two underscore-separated segments form the lookup key.
// Returns an empty string for unknown families.
func (m FamilyOrders) Order(familyIndex string) string {
	parts := strings.SplitN(familyIndex, "_", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return m[strings.Join(parts, "_")]
}

// FilenamePattern maps a file name substring to a taxonomic order name.
type FilenamePattern struct {
	Pattern string
	Order   string
}

// FilenameOrders is an ordered list of file name patterns.
// The first matching pattern wins.
type FilenameOrders []FilenamePattern

// DefaultFilenameOrders matches the file names used for single-family exports.
var DefaultFilenameOrders = FilenameOrders{
	{Pattern: "cathar", Order: "Cathartiformes"},
	{Pattern: "accip", Order: "Accipitriformes"},
	{Pattern: "strig", Order: "Strigiformes"},
	{Pattern: "falcon", Order: "Falconiformes"},
}

// Order resolves the order for a document path by matching patterns against
// the lowercased file name without directory or extension.
// Returns an empty string when no pattern matches.
func (p FilenameOrders) Order(path string) string {
	stem := strings.ToLower(Stem(path))
	for _, fp := range p {
		if strings.Contains(stem, fp.Pattern) {
			return fp.Order
		}
	}
	return ""
}

// Stem returns the file name of path without its directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
