package replay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/younwookim/tilegrid/internal/application/system"
)

// idleTick is the script token for a tick without input
const idleTick = "."

// scriptTokens maps script words to events
var scriptTokens = map[string]system.Event{
	"l":      system.KeyPress(system.KeyLeft),
	"left":   system.KeyPress(system.KeyLeft),
	"r":      system.KeyPress(system.KeyRight),
	"right":  system.KeyPress(system.KeyRight),
	"u":      system.KeyPress(system.KeyUp),
	"up":     system.KeyPress(system.KeyUp),
	"d":      system.KeyPress(system.KeyDown),
	"down":   system.KeyPress(system.KeyDown),
	"key-a":  system.KeyPress(system.KeyA),
	"key-d":  system.KeyPress(system.KeyD),
	"key-w":  system.KeyPress(system.KeyW),
	"key-s":  system.KeyPress(system.KeyS),
	"esc":    system.KeyPress(system.KeyEscape),
	"escape": system.KeyPress(system.KeyEscape),
	"q":      system.QuitEvent(),
	"quit":   system.QuitEvent(),
	"?":      system.KeyPress(system.KeyUnknown),
}

// eventWords is the canonical word written for each event
var eventWords = map[system.Event]string{
	system.KeyPress(system.KeyLeft):    "l",
	system.KeyPress(system.KeyRight):   "r",
	system.KeyPress(system.KeyUp):      "u",
	system.KeyPress(system.KeyDown):    "d",
	system.KeyPress(system.KeyA):       "key-a",
	system.KeyPress(system.KeyD):       "key-d",
	system.KeyPress(system.KeyW):       "key-w",
	system.KeyPress(system.KeyS):       "key-s",
	system.KeyPress(system.KeyEscape):  "esc",
	system.QuitEvent():                 "q",
	system.KeyPress(system.KeyUnknown): "?",
}

// ParseScript parses a whitespace or comma separated input script.
//
// Each token is one tick. A tick may hold several events joined with "+"
// ("l+u"), "." is an idle tick, and a "*N" suffix repeats a token N times
// (".*30"). Words are case-insensitive: l/left r/right u/up d/down,
// key-a key-d key-w key-s, esc, q/quit, and "?" for an unbound key.
func ParseScript(name, script string) (ReplayData, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	data := ReplayData{
		Name:   name,
		Frames: make([]FrameInput, 0, len(fields)),
	}

	for i, field := range fields {
		token, count, err := splitRepeat(field)
		if err != nil {
			return ReplayData{}, fmt.Errorf("token %d: %w", i, err)
		}

		var events []system.Event
		if token != idleTick {
			for _, word := range strings.Split(token, "+") {
				ev, ok := scriptTokens[strings.ToLower(word)]
				if !ok {
					return ReplayData{}, fmt.Errorf("token %d: unknown input %q", i, word)
				}
				events = append(events, ev)
			}
		}

		for n := 0; n < count; n++ {
			frame := FrameInput{F: len(data.Frames)}
			if len(events) > 0 {
				frame.Events = append([]system.Event(nil), events...)
			}
			data.Frames = append(data.Frames, frame)
		}
	}

	return data, nil
}

// splitRepeat splits "tok*N" into tok and N; a bare token repeats once
func splitRepeat(field string) (string, int, error) {
	token, rep, found := strings.Cut(field, "*")
	if !found {
		return field, 1, nil
	}
	n, err := strconv.Atoi(rep)
	if err != nil || n <= 0 {
		return "", 0, fmt.Errorf("invalid repeat count %q", rep)
	}
	return token, n, nil
}

// FormatScript writes data back as a script ParseScript accepts.
// Consecutive identical ticks are folded with "*N".
func FormatScript(data ReplayData) string {
	var (
		out   []string
		prev  string
		count int
	)

	flush := func() {
		switch {
		case count == 0:
		case count == 1:
			out = append(out, prev)
		default:
			out = append(out, prev+"*"+strconv.Itoa(count))
		}
	}

	for _, frame := range data.Frames {
		token := frameToken(frame)
		if token == prev {
			count++
			continue
		}
		flush()
		prev, count = token, 1
	}
	flush()

	return strings.Join(out, " ")
}

func frameToken(frame FrameInput) string {
	if len(frame.Events) == 0 {
		return idleTick
	}
	words := make([]string, 0, len(frame.Events))
	for _, ev := range frame.Events {
		word, ok := eventWords[ev]
		if !ok {
			word = "?"
		}
		words = append(words, word)
	}
	return strings.Join(words, "+")
}
