package cmdlib

// PopularList is the curated set of command names served by the popular
// endpoint. Popularity is configuration data; no usage telemetry exists.
type PopularList struct {
	Commands []string `yaml:"commands"`
}

// DefaultPopularList is used when no popular-commands config is supplied.
var DefaultPopularList = PopularList{
	Commands: []string{
		"ls", "cd", "grep", "find", "cat", "tar", "chmod", "chown",
		"ssh", "curl", "ps", "kill", "top", "df", "du", "sed", "awk",
		"git", "rsync", "systemctl",
	},
}
