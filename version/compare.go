package version

// Compare orders two versions by the Debian sorting rules (Policy 5.6.12):
// epochs compare numerically, then upstream versions, then revisions. It
// returns -1, 0 or 1 as a sorts before, equal to, or after b.
//
// Within the upstream and revision parts, runs of non-digits and runs of
// digits alternate. Non-digit runs compare byte-wise with letters sorting
// before every other character and '~' sorting before everything,
// including the end of the part ("1.0~rc1" sorts before "1.0"). Digit runs
// compare numerically.
func Compare(a, b *Version) int {
	switch {
	case a.Epoch < b.Epoch:
		return -1
	case a.Epoch > b.Epoch:
		return 1
	}
	if c := comparePart(a.Upstream, b.Upstream); c != 0 {
		return c
	}
	return comparePart(a.Revision, b.Revision)
}

// order ranks a byte: '~' lowest, then the end of the string and digits,
// then letters, then everything else by byte value.
func order(c byte) int {
	switch {
	case isDigit(c):
		return 0
	case c == '~':
		return -1
	case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		return int(c)
	default:
		return int(c) + 256
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func comparePart(a, b string) int {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		// Compare the non-digit runs byte by byte.
		for (i < len(a) && !isDigit(a[i])) || (j < len(b) && !isDigit(b[j])) {
			ac, bc := 0, 0
			if i < len(a) {
				ac = order(a[i])
			}
			if j < len(b) {
				bc = order(b[j])
			}
			if ac != bc {
				if ac < bc {
					return -1
				}
				return 1
			}
			i++
			j++
		}

		// Compare the digit runs numerically: skip leading zeros, then a
		// longer run wins, then the first differing digit decides.
		for i < len(a) && a[i] == '0' {
			i++
		}
		for j < len(b) && b[j] == '0' {
			j++
		}
		di, dj := i, j
		for di < len(a) && isDigit(a[di]) {
			di++
		}
		for dj < len(b) && isDigit(b[dj]) {
			dj++
		}
		if li, lj := di-i, dj-j; li != lj {
			if li < lj {
				return -1
			}
			return 1
		}
		for i < di {
			if a[i] != b[j] {
				if a[i] < b[j] {
					return -1
				}
				return 1
			}
			i++
			j++
		}
	}
	return 0
}
