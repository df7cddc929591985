package id

import "github.com/segmentio/ksuid"

// GenerateIDWithPrefix creates a new KSUID with the given prefix. KSUIDs are
// time-ordered and collision-resistant, so search IDs sort by arrival time
// in the logs.
//
// Format: <prefix><27-char-ksuid>
// Example: srch_2ArTLVPddDx8vZk7CqEbiYp1
func GenerateIDWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}
