package input

import (
	"bufio"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestAdapterKeyCodes(t *testing.T) {
	var a Adapter
	a.KeyDown(KeyCodeLeft)
	a.KeyDown(KeyCodeSpace)

	f := a.Flags()
	if !f.Left || f.Right || !f.Fire {
		t.Fatalf("flags after left+space down = %+v", f)
	}

	a.KeyUp(KeyCodeLeft)
	a.KeyDown(KeyCodeRight)
	f = a.Flags()
	if f.Left || !f.Right || !f.Fire {
		t.Fatalf("flags after left up, right down = %+v", f)
	}
}

func TestAdapterIgnoresUnknownCodes(t *testing.T) {
	var a Adapter
	a.KeyDown(KeyCodeRight)
	a.KeyDown(65)
	a.KeyUp(13)
	f := a.Flags()
	if f != (Flags{Right: true}) {
		t.Fatalf("unknown codes changed flags: %+v", f)
	}
}

func TestAdapterFireButtonLatchesOneTick(t *testing.T) {
	var a Adapter
	a.FireButton()
	if !a.Flags().Fire {
		t.Fatal("fire button should fire on the next tick")
	}
	if a.Flags().Fire {
		t.Fatal("fire button press should be consumed after one tick")
	}
}

func TestAdapterLastWriteWins(t *testing.T) {
	var a Adapter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.KeyDown(KeyCodeLeft)
			a.KeyUp(KeyCodeLeft)
		}()
	}
	wg.Wait()
	a.KeyUp(KeyCodeLeft)
	if a.Flags().Left {
		t.Fatal("final key-up should leave left released")
	}
}

func TestDecodeArrowSequences(t *testing.T) {
	var st keyState
	now := time.Now()
	decode(&st, []byte("\x1b[D\x1b[A"), now)

	in := st.at(now)
	if !in.Left {
		t.Error("ESC [ D should press left")
	}
	if in.Right || in.Space || in.Quit {
		t.Errorf("unexpected keys: %+v", in)
	}

	decode(&st, []byte("\x1b[C f"), now)
	in = st.at(now)
	if !in.Right || !in.Space || !in.Fire {
		t.Errorf("expected right, space and fire: %+v", in)
	}

	if in := st.at(now.Add(keyHoldDuration)); in.Left || in.Right {
		t.Errorf("keys should release after the hold window: %+v", in)
	}
}

func TestTerminalQuitsOnClosedStream(t *testing.T) {
	stream := StartStream(bufio.NewReader(strings.NewReader("a")))
	quit := false
	term := NewTerminal(stream, func() { quit = true })

	deadline := time.Now().Add(2 * time.Second)
	sawLeft := false
	for time.Now().Before(deadline) && !quit {
		if term.Flags().Left {
			sawLeft = true
		}
		time.Sleep(time.Millisecond)
	}
	if !quit {
		t.Fatal("closed stream should request quit")
	}
	if !sawLeft && !term.Last().Left {
		t.Error("'a' should have pressed left before the stream closed")
	}
}
