package control

// ValidatePackageName checks a Debian source or binary package name
// against Debian Policy 5.6.1, which stipulates that:
//
//   - names must be at least two characters long;
//   - names must begin with a lowercase alphabetic or numeric character;
//   - names must contain only lowercase alphabetic, numeric, '+', '-' and
//     '.' characters.
//
// It returns nil for a valid name, or one of ErrNameTooShort,
// ErrNameBadPrefix, ErrNameInvalidChar.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#s-f-source
func ValidatePackageName(name string) error {
	if len(name) < 2 {
		return ErrNameTooShort
	}
	if !isLowerAlphaNum(name[0]) {
		return ErrNameBadPrefix
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if !isLowerAlphaNum(c) && c != '+' && c != '-' && c != '.' {
			return ErrNameInvalidChar
		}
	}
	return nil
}

func isLowerAlphaNum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
