// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sweep

import "strings"

// DefaultShortLength is the usual maximum length passed to ShortenOption.
const DefaultShortLength = 5

// ShortenOption abbreviates an option string such as "--some-long-option".
// Every word but the last contributes its first letter, and the last word
// contributes as many letters as still fit in maxLength: "slopt".
func ShortenOption(option string, maxLength int) string {
	words := strings.Split(option, "-")

	var sb strings.Builder

	used := 0

	for i, word := range words {
		part := []rune(word)

		n := 1
		if i == len(words)-1 {
			n = maxLength
		}

		n = max(min(n, maxLength-used, len(part)), 0)
		sb.WriteString(string(part[:n]))
		used += n
	}

	return sb.String()
}
