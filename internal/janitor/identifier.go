package janitor

import "regexp"

// InstanceID is an EC2 instance identifier, e.g. i-0123456789abcdef0.
type InstanceID string

// instanceIDPattern matches the long-form instance ID: "i-" followed by
// exactly 17 lowercase alphanumerics. It is deliberately unanchored because
// resource names embed the ID between other naming segments.
var instanceIDPattern = regexp.MustCompile(`i-[0-9a-z]{17}`)

// ExtractInstanceID returns the first instance ID found anywhere in s.
// When s contains several IDs the leftmost one wins.
func ExtractInstanceID(s string) (InstanceID, bool) {
	match := instanceIDPattern.FindString(s)
	if match == "" {
		return "", false
	}
	return InstanceID(match), true
}
