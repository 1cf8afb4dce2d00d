package compress

// DefaultPlaceholder is the marker line substituted for each elided run.
const DefaultPlaceholder = "⋮----"

// render splices the resolved ranges over the original bytes: kept ranges
// verbatim, each elide range replaced by exactly one placeholder line no
// matter how many source lines it covered. The placeholder always sits on
// its own line; a partial kept line before it is closed with a newline after
// dropping trailing blanks (typically the indentation left by a signature
// cut at its body's start).
func render(source []byte, ranges []Range, placeholder string) string {
	out := make([]byte, 0, len(source))

	for _, r := range ranges {
		if r.Keep {
			out = append(out, source[r.StartByte:r.EndByte]...)
			continue
		}

		for len(out) > 0 && (out[len(out)-1] == ' ' || out[len(out)-1] == '\t') {
			out = out[:len(out)-1]
		}
		if len(out) > 0 && out[len(out)-1] != '\n' {
			out = append(out, '\n')
		}
		out = append(out, placeholder...)
		out = append(out, '\n')
	}

	return string(out)
}
