package funcs

// abbrev truncates s to width bytes, ellipsis included. Widths below 4
// leave no room for a usable ellipsis, so s passes through unchanged,
// as does any s already shorter than width.
func abbrev(width int64, s string) (string, error) {
	if width < 4 || int64(len(s)) < width {
		return s, nil
	}
	return s[:width-3] + "...", nil
}

// abbrevboth truncates from both sides. left is the offset at which
// the kept middle begins, right the maximum output width. Negative
// parameters clamp to len(s).
func abbrevboth(left, right int64, s string) (string, error) {
	offset := len(s)
	if left >= 0 && int(left) < len(s) {
		offset = int(left)
	}
	maxWidth := len(s)
	if right >= 0 && int(right) < len(s) {
		maxWidth = int(right)
	}

	switch {
	case maxWidth < 4 || (offset > 0 && maxWidth < 7) || len(s) <= maxWidth:
		return s, nil
	case offset <= 4:
		return s[:maxWidth-3] + "...", nil
	case offset+maxWidth-3 < len(s):
		return "..." + s[offset:offset+maxWidth-6] + "...", nil
	default:
		return "..." + s[len(s)-(maxWidth-3):], nil
	}
}

// trunc keeps the first length bytes. Negative or oversized lengths
// return s unchanged.
func trunc(length int64, s string) (string, error) {
	if length < 0 || length > int64(len(s)) {
		return s, nil
	}
	return s[:length], nil
}

// substring slices s from start up to length. The length parameter is
// applied as an absolute end offset into s, not a count — kept for
// compatibility with the function's historical behavior despite the
// name. Out-of-range offsets fall back to returning s unchanged
// rather than erroring.
func substring(start, length int64, s string) (string, error) {
	if start < 0 {
		start = 0
	}
	end := length
	if length < 0 {
		end = int64(len(s))
	}
	if start > end || start > int64(len(s)) || end > int64(len(s)) {
		return s, nil
	}
	return s[start:end], nil
}
