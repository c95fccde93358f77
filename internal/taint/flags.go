// Package taint decodes the Linux kernel taint bitmask into named flags.
package taint

// Severity classifies the operational significance of a taint flag.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityAlert
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarn:
		return "WARN"
	default:
		return "ALERT"
	}
}

// Spacer stands in for flags that have no unset character.
const Spacer byte = '.'

// FlagDef describes one bit of the kernel taint status.
type FlagDef struct {
	Shift            uint
	Level            Severity
	UnsetChar        byte // Spacer when the unset state has no mnemonic
	SetChar          byte
	UnsetDescription string // empty unless the unset state is notable
	SetDescription   string
}

// Value returns the numeric value of the flag's bit.
func (f FlagDef) Value() uint64 { return uint64(1) << f.Shift }

// HasUnsetChar reports whether the flag has a mnemonic for its unset state.
func (f FlagDef) HasUnsetChar() bool { return f.UnsetChar != Spacer }

// Flags is the taint flag table in bit order. It is initialized once and
// never modified.
var Flags = []FlagDef{
	{0, SeverityInfo, 'G', 'P',
		"Only GPL modules were loaded",
		"Proprietary modules were loaded"},
	{1, SeverityWarn, Spacer, 'F', "",
		"Module was force loaded (e.g., insmod -f)"},
	{2, SeverityWarn, Spacer, 'S', "",
		"SMP kernel oops on an officially SMP incapable processor"},
	{3, SeverityAlert, Spacer, 'R', "",
		"Module was force unloaded (e.g., rmmod -f)"},
	{4, SeverityAlert, Spacer, 'M', "",
		"Processor reported a Machine Check Exception (hardware error)"},
	{5, SeverityAlert, Spacer, 'B', "",
		"Bad memory page referenced, or unexpected page flags encountered (possible hardware error)"},
	{6, SeverityWarn, Spacer, 'U', "",
		"Taint requested by a userspace application"},
	{7, SeverityAlert, Spacer, 'D', "",
		"Kernel OOPS or BUG triggered taint"},
	{8, SeverityWarn, Spacer, 'A', "",
		"ACPI Differentiated System Description Table overriden by user"},
	{9, SeverityWarn, Spacer, 'W', "",
		"Kernel warning triggered taint"},
	{10, SeverityWarn, Spacer, 'C', "",
		"Module from drivers/staging was loaded"},
	{11, SeverityWarn, Spacer, 'I', "",
		"Workaround for a bug in platform firmware was applied"},
	{12, SeverityInfo, Spacer, 'O', "",
		"Externally-built (out-of-tree) module was loaded"},
	{13, SeverityInfo, Spacer, 'E', "",
		"Unsigned module was loaded"},
	{14, SeverityAlert, Spacer, 'L', "",
		"Soft lockup occurred"},
	{15, SeverityWarn, Spacer, 'K', "",
		"Kernel was live-patched"},
	{16, SeverityWarn, Spacer, 'X', "",
		"Auxiliary taint (depending on Linux distribution)"},
	{17, SeverityInfo, Spacer, 'T', "",
		"Kernel was built with the struct randomization plugin"},
}
