package scan

// Capture produces the bounded context window for a start marker at
// markerIndex within lines.
//
// The window always includes the marker line itself, preceded by up to
// beforeLines lines (clamped at the start of the file). Walking forward, at
// most maxLinesAfter lines are examined; a line satisfying IsEndMarker stops
// the capture and is itself excluded. Running out of look-ahead budget or
// hitting end of file is normal termination, not an error: annotations
// without an explicit terminator are common.
//
// The returned slice is freshly allocated and safe to treat as immutable.
func (r *Recognizer) Capture(lines []string, markerIndex, beforeLines, maxLinesAfter int) []string {
	start := markerIndex - beforeLines
	if start < 0 {
		start = 0
	}

	context := make([]string, 0, markerIndex-start+1+maxLinesAfter)
	context = append(context, lines[start:markerIndex+1]...)

	examined := 0
	for j := markerIndex + 1; j < len(lines) && examined < maxLinesAfter; j++ {
		if r.IsEndMarker(lines[j]) {
			break
		}
		context = append(context, lines[j])
		examined++
	}

	return context
}
