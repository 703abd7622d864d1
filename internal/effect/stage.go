package effect

import "sort"

// Sprite is the presenter-side view of one live visual.
type Sprite struct {
	Visual Visual
	X, Y   float64
}

// Stage is a handle-indexed sprite table that presenters replay commands into.
// It is not safe for concurrent use.
type Stage struct {
	sprites map[Handle]*Sprite
	banner  Banner
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{sprites: make(map[Handle]*Sprite)}
}

// Apply replays cmds in order. Sound commands are forwarded to play when non-nil.
// Place and Destroy for unknown handles are ignored.
func (s *Stage) Apply(cmds []Command, play func(Sound)) {
	for _, c := range cmds {
		switch c.Op {
		case OpSpawn:
			s.sprites[c.Handle] = &Sprite{Visual: c.Visual, X: c.X, Y: c.Y}
		case OpPlace:
			if sp, ok := s.sprites[c.Handle]; ok {
				sp.X, sp.Y = c.X, c.Y
			}
		case OpDestroy:
			delete(s.sprites, c.Handle)
		case OpPlay:
			if play != nil {
				play(c.Sound)
			}
		case OpBanner:
			s.banner = c.Banner
		}
	}
}

// Banner returns the banner currently shown, if any.
func (s *Stage) Banner() Banner {
	return s.banner
}

// Len returns the number of live sprites.
func (s *Stage) Len() int {
	return len(s.sprites)
}

// Get returns the sprite for h.
func (s *Stage) Get(h Handle) (Sprite, bool) {
	sp, ok := s.sprites[h]
	if !ok {
		return Sprite{}, false
	}
	return *sp, true
}

// Each calls fn for every live sprite in handle order.
func (s *Stage) Each(fn func(h Handle, sp Sprite)) {
	handles := make([]Handle, 0, len(s.sprites))
	for h := range s.sprites {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	for _, h := range handles {
		fn(h, *s.sprites[h])
	}
}
