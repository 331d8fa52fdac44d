package helper

import (
	"strconv"
	"strings"
)

func IsNotEmpty(s string) bool {
	return len(strings.ReplaceAll(s, " ", "")) != 0
}

// JoinNotEmpty joins the non-blank parts with single spaces.
func JoinNotEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if IsNotEmpty(p) {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, " ")
}

// Subgroup formats a subgroup number, 0 means the whole group and gives "".
func Subgroup(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
