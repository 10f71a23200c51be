package isa

import (
	"fmt"
	"sort"
	"strings"
)

// ExtensionInfo is a detected named extension with its display metadata.
type ExtensionInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// ExtensionStatus is a catalog entry flagged with whether a given ISA
// string supports it. Used by the all-known view, which always returns
// the full catalog regardless of input.
type ExtensionStatus struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Supported   bool   `json:"supported" yaml:"supported"`
}

// CategoryGroup is one category bucket produced by GroupByCategory.
type CategoryGroup struct {
	Category   string
	Extensions []ExtensionInfo
}

// stripRVPrefix removes a leading rv64/rv32 address-width marker.
// The input must already be lowercased.
func stripRVPrefix(base string) string {
	for _, prefix := range []string{"rv64", "rv32"} {
		if rest, ok := strings.CutPrefix(base, prefix); ok {
			return rest
		}
	}
	return base
}

// baseSegment returns the part of the string before the first underscore.
func baseSegment(isa string) string {
	if i := strings.IndexByte(isa, '_'); i >= 0 {
		return isa[:i]
	}
	return isa
}

// extensionLetters returns the single-letter extension run of a lowercased
// ISA string: the base segment with its rv32/rv64 marker stripped.
func extensionLetters(lower string) string {
	return stripRVPrefix(baseSegment(lower))
}

// hasBaseG reports whether the base segment carries the G shorthand.
func hasBaseG(lower string) bool {
	return strings.IndexByte(extensionLetters(lower), 'g') >= 0
}

// gImplied marks the base extensions bundled by the G shorthand. G also
// implies I, handled separately because E takes precedence.
var gImplied = map[byte]bool{'m': true, 'a': true, 'f': true, 'd': true}

// gImpliedNamed lists the named extensions implied by G, in the order they
// are seeded ahead of any explicit scan.
var gImpliedNamed = []string{"zicsr", "zifencei"}

// ParseBaseExtensions extracts the base extensions from an ISA string and
// returns their canonical letters joined by spaces, in declaration order.
// G expands to M A F D plus I (unless E is present). Unknown input yields
// "": that is the correct output for strings like "unknown" or bare "rv64",
// not an error.
func ParseBaseExtensions(isa string) string {
	letters := extensionLetters(strings.ToLower(isa))
	hasG := strings.IndexByte(letters, 'g') >= 0

	var names []string
	for _, ext := range BaseExtensions {
		if strings.IndexByte(letters, ext.Code) >= 0 || (hasG && gImplied[ext.Code]) {
			names = append(names, ext.Name)
		}
	}

	// G implies I, but only when neither I nor E matched explicitly.
	if hasG && !containsString(names, "I") && !containsString(names, "E") {
		names = append([]string{"I"}, names...)
	}

	return strings.Join(names, " ")
}

// ParseNamedExtensions returns every z- and s-prefixed token of the ISA
// string as a space-joined lowercase list: G-implied tokens first, then
// first-seen scan order, de-duplicated.
func ParseNamedExtensions(isa string) string {
	return strings.Join(namedTokens(isa, true, true), " ")
}

// ParseZExtensions is the Z-only projection of ParseNamedExtensions.
func ParseZExtensions(isa string) string {
	return strings.Join(namedTokens(isa, true, false), " ")
}

// ParseSExtensions is the S-only projection. S has no G-implied set.
func ParseSExtensions(isa string) string {
	return strings.Join(namedTokens(isa, false, true), " ")
}

func namedTokens(isa string, wantZ, wantS bool) []string {
	lower := strings.ToLower(isa)

	var tokens []string
	if wantZ && hasBaseG(lower) {
		tokens = append(tokens, gImpliedNamed...)
	}

	for _, part := range strings.Split(lower, "_") {
		if part == "" {
			continue
		}
		if (wantZ && part[0] == 'z') || (wantS && part[0] == 's') {
			if !containsString(tokens, part) {
				tokens = append(tokens, part)
			}
		}
	}

	return tokens
}

// ParseBaseExplained returns the catalog entries for base extensions whose
// letter appears literally in the ISA string. The G shorthand is not
// expanded here; it names no letter of its own.
func ParseBaseExplained(isa string) []BaseExtension {
	letters := extensionLetters(strings.ToLower(isa))

	var exts []BaseExtension
	for _, ext := range BaseExtensions {
		if strings.IndexByte(letters, ext.Code) >= 0 {
			exts = append(exts, ext)
		}
	}
	return exts
}

// ParseZExtensionsWithCategory returns the detected Z-extensions with
// category and description attached. G-implied entries come first; tokens
// without a catalog match are omitted. Matching is substring containment
// against the whole lowercased string, so version-suffixed tokens still hit.
func ParseZExtensionsWithCategory(isa string) []ExtensionInfo {
	lower := strings.ToLower(isa)

	var exts []ExtensionInfo
	if hasBaseG(lower) {
		for _, pattern := range gImpliedNamed {
			if ext, ok := LookupZ(pattern); ok {
				exts = append(exts, infoFor(ext))
			}
		}
	}

	for _, ext := range ZExtensions {
		if strings.Contains(lower, ext.Pattern) && !containsName(exts, ext.Name) {
			exts = append(exts, infoFor(ext))
		}
	}
	return exts
}

// ParseSExtensionsWithCategory returns the detected S-extensions with
// category and description attached.
func ParseSExtensionsWithCategory(isa string) []ExtensionInfo {
	lower := strings.ToLower(isa)

	var exts []ExtensionInfo
	for _, ext := range SExtensions {
		if strings.Contains(lower, ext.Pattern) {
			exts = append(exts, infoFor(ext))
		}
	}
	return exts
}

// GroupByCategory partitions classified extensions by category id. Groups
// come out in ascending category-id order; members keep first-seen order.
// Pure reduction: no catalog lookups happen here.
func GroupByCategory(exts []ExtensionInfo) []CategoryGroup {
	byCategory := make(map[string][]ExtensionInfo)
	for _, ext := range exts {
		byCategory[ext.Category] = append(byCategory[ext.Category], ext)
	}

	ids := make([]string, 0, len(byCategory))
	for id := range byCategory {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	groups := make([]CategoryGroup, 0, len(ids))
	for _, id := range ids {
		groups = append(groups, CategoryGroup{Category: id, Extensions: byCategory[id]})
	}
	return groups
}

// vlenMarkers holds the zvl widths in descending order so the largest
// matching marker wins regardless of its position in the string.
var vlenMarkers = []int{
	65536, 32768, 16384, 8192, 4096, 2048, 1024, 512, 256, 128, 64, 32,
}

// ParseVectorDetail reports vector-unit capability inferred from the ISA
// string. The second return is false when no vector support is present.
// Vector counts as present when the base letters contain 'v' or the string
// mentions the zve embedded-vector family. VLEN is implementation-defined
// when no zvl marker is present and is never defaulted.
func ParseVectorDetail(isa string) (string, bool) {
	lower := strings.ToLower(isa)
	if strings.IndexByte(extensionLetters(lower), 'v') < 0 && !strings.Contains(lower, "zve") {
		return "", false
	}

	details := []string{"Enabled"}
	for _, width := range vlenMarkers {
		if strings.Contains(lower, fmt.Sprintf("zvl%db", width)) {
			details = append(details, fmt.Sprintf("VLEN>=%d", width))
			break
		}
	}
	return strings.Join(details, ", "), true
}

// AllBaseWithStatus returns every base catalog entry in declaration order,
// flagged with whether the ISA string supports it. The supported subset
// equals the set ParseBaseExtensions would return.
func AllBaseWithStatus(isa string) []ExtensionStatus {
	letters := extensionLetters(strings.ToLower(isa))
	hasG := strings.IndexByte(letters, 'g') >= 0
	hasE := strings.IndexByte(letters, 'e') >= 0

	out := make([]ExtensionStatus, 0, len(BaseExtensions))
	for _, ext := range BaseExtensions {
		supported := strings.IndexByte(letters, ext.Code) >= 0 || (hasG && gImplied[ext.Code])
		if ext.Code == 'i' && hasG && !hasE {
			supported = true
		}
		out = append(out, ExtensionStatus{
			Name:        ext.Name,
			Description: ext.Description,
			Supported:   supported,
		})
	}
	return out
}

// AllZWithStatus returns every Z catalog entry in declaration order,
// flagged with whether the ISA string supports it, including the
// G-implied entries.
func AllZWithStatus(isa string) []ExtensionStatus {
	lower := strings.ToLower(isa)
	hasG := hasBaseG(lower)

	out := make([]ExtensionStatus, 0, len(ZExtensions))
	for _, ext := range ZExtensions {
		supported := strings.Contains(lower, ext.Pattern)
		if !supported && hasG && containsString(gImpliedNamed, ext.Pattern) {
			supported = true
		}
		out = append(out, statusFor(ext, supported))
	}
	return out
}

// AllSWithStatus returns every S catalog entry in declaration order,
// flagged with whether the ISA string supports it.
func AllSWithStatus(isa string) []ExtensionStatus {
	lower := strings.ToLower(isa)

	out := make([]ExtensionStatus, 0, len(SExtensions))
	for _, ext := range SExtensions {
		out = append(out, statusFor(ext, strings.Contains(lower, ext.Pattern)))
	}
	return out
}

func lookupNamed(table []Extension, token string) (Extension, bool) {
	lower := strings.ToLower(token)
	for _, ext := range table {
		if strings.Contains(lower, ext.Pattern) {
			return ext, true
		}
	}
	return Extension{}, false
}

func infoFor(ext Extension) ExtensionInfo {
	return ExtensionInfo{Name: ext.Name, Description: ext.Description, Category: ext.Category}
}

func statusFor(ext Extension, supported bool) ExtensionStatus {
	return ExtensionStatus{
		Name:        ext.Name,
		Description: ext.Description,
		Category:    ext.Category,
		Supported:   supported,
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsName(exts []ExtensionInfo, name string) bool {
	for _, ext := range exts {
		if strings.EqualFold(ext.Name, name) {
			return true
		}
	}
	return false
}
