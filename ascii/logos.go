package ascii

import "riscfetch/sysinfo"

// GetLogo returns the ASCII art for a vendor as one string per line.
// Vendors without dedicated art fall back to the default RISC-V logo;
// the subtitle line still carries the vendor identity.
func GetLogo(vendor Vendor, style string) []string {
	switch style {
	case "none", "off":
		return nil
	case "small", "compact":
		return smallLogo(vendor)
	}

	var art []string
	switch vendor.Name {
	case "SiFive":
		art = sifiveLogo()
	case "StarFive":
		art = starfiveLogo()
	case "Kendryte":
		art = kendryteLogo()
	default:
		art = defaultLogo()
	}

	return append(art, "", "      "+vendor.Subtitle)
}

func defaultLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + `      ____  ____  ____   ____      __  __` + r,
		c + `     / __ \/_  _\/ ___\ / ___|    / / / /` + r,
		c + `    / /_/ / / /  \___ \/ /   ____/ / / / ` + r,
		c + `   / _, _/ / /  /___/ / /___/___/ /_/ /  ` + r,
		c + `  /_/ |_| /_/  /_____/\____/    \____/   ` + r,
	}
}

func sifiveLogo() []string {
	c := sysinfo.ColorYellow
	r := sysinfo.ColorReset

	return []string{
		c + `   _____ _ ______ _                ` + r,
		c + `  / ____(_)  ____(_)               ` + r,
		c + ` | (___  _| |__   ___   _____      ` + r,
		c + `  \___ \| |  __| | \ \ / / _ \     ` + r,
		c + `  ____) | | |    | |\ V /  __/     ` + r,
		c + ` |_____/|_|_|    |_| \_/ \___|     ` + r,
	}
}

func starfiveLogo() []string {
	c := sysinfo.ColorGreen
	r := sysinfo.ColorReset

	return []string{
		c + `   _____ _             ______ _            ` + r,
		c + `  / ____| |           |  ____(_)           ` + r,
		c + ` | (___ | |_ __ _ _ __| |__   ___   _____  ` + r,
		c + `  \___ \| __/ _` + "`" + ` | '__|  __| | \ \ / / _ \ ` + r,
		c + `  ____) | || (_| | |  | |    | |\ V /  __/ ` + r,
		c + ` |_____/ \__\__,_|_|  |_|    |_| \_/ \___| ` + r,
	}
}

func kendryteLogo() []string {
	c := sysinfo.ColorPurple
	r := sysinfo.ColorReset

	return []string{
		c + `  _  __              _            _        ` + r,
		c + ` | |/ /___ _ __   __| |_ __ _   _| |_ ___  ` + r,
		c + ` | ' // _ \ '_ \ / _` + "`" + ` | '__| | | | __/ _ \ ` + r,
		c + ` | . \  __/ | | | (_| | |  | |_| | ||  __/ ` + r,
		c + ` |_|\_\___|_| |_|\__,_|_|   \__, |\__\___| ` + r,
		c + `                            |___/          ` + r,
	}
}

func smallLogo(vendor Vendor) []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + " [" + vendor.Name + "] " + r,
		"  " + vendor.Subtitle,
	}
}
