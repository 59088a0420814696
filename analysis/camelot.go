package analysis

import "strings"

// camelotTable maps a chroma root index (0-11) for Major and a second
// copy for Minor (offset by 12) to its Camelot wheel code, per
// spec.md §4.7.
var camelotTable = map[int]string{
	0: "8B", 1: "3B", 2: "10B", 3: "5B", 4: "12B", 5: "7B",
	6: "2B", 7: "9B", 8: "4B", 9: "11B", 10: "6B", 11: "1B",
	12: "8A", 13: "3A", 14: "10A", 15: "5A", 16: "12A", 17: "7A",
	18: "2A", 19: "9A", 20: "4A", 21: "11A", 22: "6A", 23: "1A",
}

// toCamelotKey translates a "<Note> Major"/"<Note> Minor" key string
// into its Camelot code, or "?" if the root is unrecognized.
func toCamelotKey(key string) string {
	isMinor := strings.Contains(key, "Minor")
	parts := strings.Fields(key)
	root := ""
	if len(parts) > 0 {
		root = parts[0]
	}

	rootIdx := -1
	for i, name := range noteNames {
		if name == root {
			rootIdx = i
			break
		}
	}
	if rootIdx < 0 {
		return "?"
	}

	keyIdx := rootIdx
	if isMinor {
		keyIdx += 12
	}

	if code, ok := camelotTable[keyIdx]; ok {
		return code
	}
	return "?"
}
