package segment

import "regexp"

// marker is one strategy-marker occurrence within normalized text. The
// match body of a marker runs from end to the start of the next marker of
// the same pattern, truncated at the earliest stop match.
type marker struct {
	label string
	start int
	end   int
}

// scanMarkers locates every occurrence of a marker pattern. The pattern's
// first capture group becomes the marker label.
func scanMarkers(re *regexp.Regexp, text string) []marker {
	idx := re.FindAllStringSubmatchIndex(text, -1)
	if idx == nil {
		return nil
	}
	markers := make([]marker, 0, len(idx))
	for _, m := range idx {
		label := ""
		if len(m) >= 4 && m[2] >= 0 {
			label = text[m[2]:m[3]]
		}
		markers = append(markers, marker{label: label, start: m[0], end: m[1]})
	}
	return markers
}

// sliceBodies cuts the text between consecutive markers into raw bodies,
// truncating each at the first stop-pattern match. stop may be nil.
func sliceBodies(text string, markers []marker, stop *regexp.Regexp) []string {
	bodies := make([]string, len(markers))
	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1].start
		}
		body := text[m.end:end]
		if stop != nil {
			if loc := stop.FindStringIndex(body); loc != nil {
				body = body[:loc[0]]
			}
		}
		bodies[i] = body
	}
	return bodies
}
