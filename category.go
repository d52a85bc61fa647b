package cmdlib

// UncategorizedLabel is returned for category codes outside the known set.
const UncategorizedLabel = "Other"

// categoryNames maps the closed set of numeric category codes carried by
// Command rows to display names. The set is fixed by the catalog build.
var categoryNames = map[int64]string{
	1:  "Miscellaneous",
	2:  "System information",
	3:  "System control",
	4:  "Users & Groups",
	5:  "Files & Folders",
	6:  "Games",
	7:  "Input",
	8:  "Printing",
	9:  "JSON",
	10: "Network",
	11: "Search & Find",
	12: "GIT",
	13: "SSH",
	14: "Video & Audio",
	15: "Package manager",
	16: "Hacking tools",
	17: "Terminal games",
	18: "Crypto currencies",
	19: "VIM Texteditor",
	20: "Emacs Texteditor",
	21: "Nano Texteditor",
	22: "Pico Texteditor",
	23: "Micro Texteditor",
}

// CategoryName translates a numeric category code to its display name.
// Unrecognized codes degrade to UncategorizedLabel rather than failing.
func CategoryName(code int64) string {
	if name, ok := categoryNames[code]; ok {
		return name
	}
	return UncategorizedLabel
}

// categoryDescriptions annotates basic category titles for the detailed
// category listing. Titles without an entry carry no description.
var categoryDescriptions = map[string]string{
	"One-liners":         "Useful linux command line one liners",
	"System information": "System and battery/cpu/memory/disk usage info on Linux",
	"System control":     "Lock, unlock, start/stop bluetooth/wifi, shutdown, reboot system",
	"Users & Groups":     "Create, delete, user, group, list, info",
	"Files & Folders":    "File and directory operations",
	"Input":              "Move, click, mouse, type, text, xdotool, ydotool, read, copy, clipboard",
	"Printing":           "Printer management and printing commands",
	"JSON":               "JSON processing and manipulation tools",
	"Network":            "Network configuration and tools",
	"Search & Find":      "Search and find files and content",
	"GIT":                "Git version control commands",
	"SSH":                "SSH connection and key management",
	"Video & Audio":      "Video and audio processing tools",
	"Package manager":    "Package management commands",
	"Hacking tools":      "Security testing and hacking tools",
	"Terminal games":     "Games that run in the terminal",
	"Crypto currencies":  "Cryptocurrency related commands",
	"VIM Texteditor":     "VIM text editor commands and shortcuts",
	"Emacs Texteditor":   "Emacs text editor commands and shortcuts",
	"Nano Texteditor":    "Nano text editor commands and shortcuts",
	"Pico Texteditor":    "Pico text editor commands and shortcuts",
	"Micro Texteditor":   "Micro text editor commands and shortcuts",
}

// CategoryDescription returns the static description for a basic category
// title, or "" when none exists.
func CategoryDescription(title string) string {
	return categoryDescriptions[title]
}
