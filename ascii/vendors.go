// Package ascii provides RISC-V vendor identities and ASCII art logos,
// color-coded with ANSI escape sequences for terminal display.
package ascii

import "strings"

// Vendor is one RISC-V vendor identity selectable with --logo.
type Vendor struct {
	// Aliases are the lowercase names matched against CLI input;
	// the first one is primary.
	Aliases []string
	// Name is shown in the logo block.
	Name string
	// Subtitle is shown below the logo.
	Subtitle string
}

// Vendors lists the known vendors. The first entry is the default.
var Vendors = []Vendor{
	{[]string{"default", "riscv", "risc-v"}, "RISC-V", "Architecture Info"},
	// Major IP/SoC providers
	{[]string{"sifive"}, "SiFive", "RISC-V by SiFive"},
	{[]string{"starfive"}, "StarFive", "RISC-V by StarFive"},
	{[]string{"thead", "t-head", "alibaba"}, "T-Head", "RISC-V by T-Head"},
	// Board manufacturers
	{[]string{"milkv", "milk-v"}, "Milk-V", "RISC-V by Milk-V"},
	{[]string{"sipeed"}, "Sipeed", "RISC-V by Sipeed"},
	{[]string{"pine64", "pine"}, "Pine64", "RISC-V by Pine64"},
	// SoC vendors
	{[]string{"kendryte", "canaan"}, "Kendryte", "RISC-V by Kendryte"},
	{[]string{"allwinner"}, "Allwinner", "RISC-V by Allwinner"},
	{[]string{"espressif", "esp"}, "Espressif", "RISC-V by Espressif"},
	{[]string{"spacemit"}, "SpacemiT", "RISC-V by SpacemiT"},
	{[]string{"sophgo"}, "Sophgo", "RISC-V by Sophgo"},
	// MCU vendors
	{[]string{"wch", "winchiphead"}, "WCH", "RISC-V by WCH"},
}

// VendorInfo returns the vendor matching an alias, case-insensitive.
func VendorInfo(alias string) (Vendor, bool) {
	lower := strings.ToLower(alias)
	for _, vendor := range Vendors {
		for _, a := range vendor.Aliases {
			if a == lower {
				return vendor, true
			}
		}
	}
	return Vendor{}, false
}

// DefaultVendor returns the default RISC-V identity.
func DefaultVendor() Vendor {
	return Vendors[0]
}
