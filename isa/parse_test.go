package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ISA strings captured from real RISC-V boards.
const (
	isaVisionFive2 = "rv64imafdc_zicntr_zicsr_zifencei_zihpm_zba_zbb"
	isaSpacemitK1  = "rv64imafdcv_zicbom_zicboz_zicntr_zicsr_zifencei_zihintpause_zihpm_zba_zbb_zbc_zbs_zkt_zvkt_zvl128b_zvl256b_zvl32b_zvl64b"
	isaMinimal     = "rv64imac"
	isaRV32        = "rv32imc"
)

func TestParseBaseExtensions(t *testing.T) {
	tests := []struct {
		name string
		isa  string
		want string
	}{
		{"visionfive2", isaVisionFive2, "I M A F D C"},
		{"spacemit k1", isaSpacemitK1, "I M A F D C V"},
		{"minimal", isaMinimal, "I M A C"},
		{"rv32", isaRV32, "I M C"},
		{"g expansion", "rv64gc", "I M A F D C"},
		{"g expansion uppercase", "RV64GC", "I M A F D C"},
		{"g alone", "rv64g", "I M A F D"},
		{"embedded", "rv32e", "E"},
		{"embedded with compressed", "rv32ec", "E C"},
		{"vector", "rv64imafdcv", "I M A F D C V"},
		{"named tokens ignored", "rv64imafdc_zba_zbb", "I M A F D C"},
		{"bare prefix", "rv64", ""},
		{"unknown", "unknown", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBaseExtensions(tt.isa))
		})
	}
}

func TestParseBaseExtensionsCaseInsensitive(t *testing.T) {
	assert.Equal(t, ParseBaseExtensions("rv64imafdc"), ParseBaseExtensions("RV64IMAFDC"))
	assert.Equal(t, ParseBaseExtensions("rv64gc_zba"), ParseBaseExtensions("RV64GC_ZBA"))
}

func TestParseBaseExtensionsPrefixNotVector(t *testing.T) {
	// The 'v' of "rv64" must not register as the V extension.
	assert.NotContains(t, ParseBaseExtensions("rv64imafdc"), "V")
}

func TestParseNamedExtensions(t *testing.T) {
	tests := []struct {
		name string
		isa  string
		want string
	}{
		{"g implies csr and fence only", "rv64gc", "zicsr zifencei"},
		{"scan order preserved", "rv64i_zba_zbb_zbc", "zba zbb zbc"},
		{"no named tokens", "rv64imafdc", ""},
		{"s tokens included", "rv64i_zba_sstc", "zba sstc"},
		{"implied before explicit", "rv64g_zba", "zicsr zifencei zba"},
		{"implied duplicate collapses", "rv64gc_zicsr_zifencei_zba", "zicsr zifencei zba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNamedExtensions(tt.isa))
		})
	}
}

func TestParseZExtensions(t *testing.T) {
	result := ParseZExtensions(isaVisionFive2)
	for _, token := range []string{"zicntr", "zicsr", "zifencei", "zba", "zbb"} {
		assert.Contains(t, result, token)
	}

	assert.Equal(t, "zicsr zifencei", ParseZExtensions("rv64gc"))
	assert.Equal(t, "zba zbb zbc", ParseZExtensions("rv64i_zba_zbb_zbc"))
	assert.Equal(t, "zicsr", ParseZExtensions("rv64i_Zicsr"))
	assert.Empty(t, ParseZExtensions(isaMinimal))

	// S tokens never leak into the Z projection.
	assert.Equal(t, "zba", ParseZExtensions("rv64i_zba_sstc"))
}

func TestParseSExtensions(t *testing.T) {
	assert.Equal(t, "sstc", ParseSExtensions("rv64i_sstc"))
	assert.Equal(t, "svinval sstc", ParseSExtensions("rv64i_svinval_sstc"))
	assert.Empty(t, ParseSExtensions("rv64gc_zba"))

	// No implied set for S, even with G present.
	assert.Empty(t, ParseSExtensions("rv64gc"))
}

func TestParseBaseExplained(t *testing.T) {
	exts := ParseBaseExplained(isaVisionFive2)
	require.Len(t, exts, 6)

	names := make([]string, len(exts))
	for i, ext := range exts {
		names[i] = ext.Name
	}
	assert.Equal(t, []string{"I", "M", "A", "F", "D", "C"}, names)
}

func TestParseZExtensionsWithCategory(t *testing.T) {
	exts := ParseZExtensionsWithCategory(isaSpacemitK1)

	byName := make(map[string]ExtensionInfo)
	for _, ext := range exts {
		byName[ext.Name] = ext
	}

	zba, ok := byName["Zba"]
	require.True(t, ok)
	assert.Equal(t, "Address Generation", zba.Description)
	assert.Equal(t, "bit", zba.Category)

	zvkt, ok := byName["Zvkt"]
	require.True(t, ok)
	assert.Equal(t, "vcrypto", zvkt.Category)
}

func TestParseZExtensionsWithCategoryImpliedByG(t *testing.T) {
	exts := ParseZExtensionsWithCategory("rv64gc")
	require.Len(t, exts, 2)
	assert.Equal(t, "Zicsr", exts[0].Name)
	assert.Equal(t, "Zifencei", exts[1].Name)
	assert.Equal(t, "base", exts[0].Category)
}

func TestParseZExtensionsWithCategoryDeduplicates(t *testing.T) {
	// Implied by G and explicitly present: exactly one occurrence.
	exts := ParseZExtensionsWithCategory("rv64gc_zicsr_zifencei")

	seen := make(map[string]int)
	for _, ext := range exts {
		seen[ext.Name]++
	}
	assert.Equal(t, 1, seen["Zicsr"])
	assert.Equal(t, 1, seen["Zifencei"])
}

func TestParseZExtensionsWithCategorySkipsUnknown(t *testing.T) {
	// Unknown tokens stay in the compact string but vanish from the
	// categorized view.
	assert.Contains(t, ParseZExtensions("rv64i_zfoo99"), "zfoo99")
	assert.Empty(t, ParseZExtensionsWithCategory("rv64i_zfoo99"))
}

func TestParseSExtensionsWithCategory(t *testing.T) {
	exts := ParseSExtensionsWithCategory("rv64i_svinval_sstc_smepmp")
	require.Len(t, exts, 3)

	// Catalog declaration order, not token order.
	assert.Equal(t, "Svinval", exts[0].Name)
	assert.Equal(t, "Sstc", exts[1].Name)
	assert.Equal(t, "Smepmp", exts[2].Name)
	assert.Equal(t, "vm", exts[0].Category)
	assert.Equal(t, "sup", exts[1].Category)
	assert.Equal(t, "mach", exts[2].Category)
}

func TestGroupByCategory(t *testing.T) {
	exts := []ExtensionInfo{
		{Name: "Zba", Category: "bit"},
		{Name: "Zicsr", Category: "base"},
		{Name: "Zbb", Category: "bit"},
		{Name: "Zkt", Category: "crypto"},
	}

	groups := GroupByCategory(exts)
	require.Len(t, groups, 3)

	// Ascending category-id order.
	assert.Equal(t, "base", groups[0].Category)
	assert.Equal(t, "bit", groups[1].Category)
	assert.Equal(t, "crypto", groups[2].Category)

	// First-seen order within a group.
	require.Len(t, groups[1].Extensions, 2)
	assert.Equal(t, "Zba", groups[1].Extensions[0].Name)
	assert.Equal(t, "Zbb", groups[1].Extensions[1].Name)
}

func TestGroupByCategoryDeterministic(t *testing.T) {
	exts := []ExtensionInfo{
		{Name: "Zkt", Category: "crypto"},
		{Name: "Zba", Category: "bit"},
		{Name: "Zicsr", Category: "base"},
	}
	reversed := []ExtensionInfo{exts[2], exts[1], exts[0]}

	// With one member per category, any input permutation yields
	// identical grouped output.
	assert.Equal(t, GroupByCategory(exts), GroupByCategory(reversed))

	// And the same input always reduces to the same output.
	assert.Equal(t, GroupByCategory(exts), GroupByCategory(exts))
}

func TestGroupByCategoryEmpty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}

func TestParseVectorDetail(t *testing.T) {
	tests := []struct {
		name   string
		isa    string
		want   string
		wantOK bool
	}{
		{"no vector", "rv64imafdc", "", false},
		{"visionfive2 no vector", isaVisionFive2, "", false},
		{"v without width", "rv64imafdcv", "Enabled", true},
		{"largest marker wins", "rv64imafdcv_zvl128b_zvl256b", "Enabled, VLEN>=256", true},
		{"single marker", "rv64imafdcv_zvl256b", "Enabled, VLEN>=256", true},
		{"zve family without v", "rv64imac_zve32x", "Enabled", true},
		{"spacemit k1", isaSpacemitK1, "Enabled, VLEN>=256", true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseVectorDetail(tt.isa)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVectorDetailNoDefaultWidth(t *testing.T) {
	got, ok := ParseVectorDetail("rv64imafdcv")
	require.True(t, ok)
	assert.NotContains(t, got, "VLEN")
}

func TestAllBaseWithStatus(t *testing.T) {
	statuses := AllBaseWithStatus("rv64gc")
	require.Len(t, statuses, len(BaseExtensions))

	supported := supportedNames(statuses)
	assert.Equal(t, []string{"I", "M", "A", "F", "D", "C"}, supported)

	// The supported subset matches the detected-only view exactly.
	assert.Equal(t, ParseBaseExtensions("rv64gc"), joinNames(supported))
}

func TestAllBaseWithStatusCatalogOrder(t *testing.T) {
	statuses := AllBaseWithStatus("rv64c")
	for i, status := range statuses {
		assert.Equal(t, BaseExtensions[i].Name, status.Name)
	}
}

func TestAllZWithStatus(t *testing.T) {
	statuses := AllZWithStatus(isaVisionFive2)
	require.Len(t, statuses, len(ZExtensions))

	byName := statusByName(statuses)
	assert.True(t, byName["Zicsr"])
	assert.True(t, byName["Zifencei"])
	assert.True(t, byName["Zicntr"])
	assert.True(t, byName["Zba"])
	assert.True(t, byName["Zbb"])
	assert.False(t, byName["Zbc"])
	assert.False(t, byName["Zvkt"])
}

func TestAllZWithStatusImpliedByG(t *testing.T) {
	byName := statusByName(AllZWithStatus("rv64gc"))
	assert.True(t, byName["Zicsr"])
	assert.True(t, byName["Zifencei"])
	assert.False(t, byName["Zba"])
}

func TestAllZWithStatusMatchesDetectedView(t *testing.T) {
	for _, isaStr := range []string{isaVisionFive2, isaSpacemitK1, "rv64gc", "rv64imac", ""} {
		detected := make(map[string]bool)
		for _, ext := range ParseZExtensionsWithCategory(isaStr) {
			detected[ext.Name] = true
		}

		for _, status := range AllZWithStatus(isaStr) {
			assert.Equal(t, detected[status.Name], status.Supported,
				"isa %q extension %s", isaStr, status.Name)
		}
	}
}

func TestAllSWithStatus(t *testing.T) {
	statuses := AllSWithStatus("rv64i_sstc_svinval")
	require.Len(t, statuses, len(SExtensions))

	byName := statusByName(statuses)
	assert.True(t, byName["Sstc"])
	assert.True(t, byName["Svinval"])
	assert.False(t, byName["Smepmp"])
}

func TestAllWithStatusCountIndependentOfInput(t *testing.T) {
	for _, isaStr := range []string{"", "unknown", isaSpacemitK1} {
		assert.Len(t, AllBaseWithStatus(isaStr), len(BaseExtensions))
		assert.Len(t, AllZWithStatus(isaStr), len(ZExtensions))
		assert.Len(t, AllSWithStatus(isaStr), len(SExtensions))
	}
}

func supportedNames(statuses []ExtensionStatus) []string {
	var names []string
	for _, status := range statuses {
		if status.Supported {
			names = append(names, status.Name)
		}
	}
	return names
}

func statusByName(statuses []ExtensionStatus) map[string]bool {
	byName := make(map[string]bool, len(statuses))
	for _, status := range statuses {
		byName[status.Name] = status.Supported
	}
	return byName
}

func joinNames(names []string) string {
	out := ""
	for i, name := range names {
		if i > 0 {
			out += " "
		}
		out += name
	}
	return out
}
