package models

const (
	PlatformCodeforces = "Codeforces"
	PlatformCodechef   = "Codechef"
	PlatformAtcoder    = "Atcoder"
)

// Platforms returns the supported platform names in display order.
func Platforms() []string {
	return []string{PlatformCodeforces, PlatformCodechef, PlatformAtcoder}
}
