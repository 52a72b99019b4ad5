package kanshi

// Stems, branches and elements serialize as their glyphs so that reports and
// map keys read naturally in JSON.

// MarshalText implements encoding.TextMarshaler.
func (s Stem) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stem) UnmarshalText(text []byte) error {
	parsed, err := ParseStem(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b Branch) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Branch) UnmarshalText(text []byte) error {
	parsed, err := ParseBranch(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Pillar) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
