package effect

import "fmt"

// Wire names. The browser page switches on these strings.
var (
	opNames     = [...]string{"none", "spawn", "place", "destroy", "play", "banner"}
	visualNames = [...]string{"none", "player", "laser", "enemy", "enemy-laser"}
	soundNames  = [...]string{"none", "laser", "lose"}
	bannerNames = [...]string{"none", "game-over", "victory"}
)

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func indexOf(names []string, kind string, text []byte) (int, error) {
	s := string(text)
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}

func (o Op) String() string     { return nameOf(opNames[:], int(o)) }
func (v Visual) String() string { return nameOf(visualNames[:], int(v)) }
func (s Sound) String() string  { return nameOf(soundNames[:], int(s)) }
func (b Banner) String() string { return nameOf(bannerNames[:], int(b)) }

// MarshalText encodes the op by name.
func (o Op) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// MarshalText encodes the visual by name.
func (v Visual) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// MarshalText encodes the sound by name.
func (s Sound) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// MarshalText encodes the banner by name.
func (b Banner) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText decodes an op name.
func (o *Op) UnmarshalText(text []byte) error {
	i, err := indexOf(opNames[:], "op", text)
	*o = Op(i)
	return err
}

// UnmarshalText decodes a visual name.
func (v *Visual) UnmarshalText(text []byte) error {
	i, err := indexOf(visualNames[:], "visual", text)
	*v = Visual(i)
	return err
}

// UnmarshalText decodes a sound name.
func (s *Sound) UnmarshalText(text []byte) error {
	i, err := indexOf(soundNames[:], "sound", text)
	*s = Sound(i)
	return err
}

// UnmarshalText decodes a banner name.
func (b *Banner) UnmarshalText(text []byte) error {
	i, err := indexOf(bannerNames[:], "banner", text)
	*b = Banner(i)
	return err
}
