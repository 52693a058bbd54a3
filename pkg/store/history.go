package store

// TrimTurns keeps the reserved prefix plus the most recent (max - reserved)
// turns. When the recent window would open on an assistant turn, that turn
// is dropped too so the window starts with the user half of a pair.
// The returned slice never aliases turns.
func TrimTurns(turns []Turn, reserved, max int) []Turn {
	if reserved > len(turns) {
		reserved = len(turns)
	}
	if len(turns) <= max || max <= reserved {
		out := make([]Turn, len(turns))
		copy(out, turns)
		if max <= reserved && len(turns) > reserved {
			out = out[:reserved]
		}
		return out
	}

	window := max - reserved
	tail := turns[len(turns)-window:]
	if len(tail) > 0 && tail[0].Role == RoleAssistant {
		tail = tail[1:]
	}

	out := make([]Turn, 0, reserved+len(tail))
	out = append(out, turns[:reserved]...)
	out = append(out, tail...)
	return out
}
