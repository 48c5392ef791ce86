package controller

import "github.com/charmbracelet/bubbles/key"

type playKeyMap struct {
	Toggle   key.Binding
	RateDown key.Binding
	RateUp   key.Binding
	GainDown key.Binding
	GainUp   key.Binding
	Classic  key.Binding
	Float    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newPlayKeyMap() playKeyMap {
	return playKeyMap{
		Toggle:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "play/pause")),
		RateDown: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "rate -")),
		RateUp:   key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "rate +")),
		GainDown: key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "gain -")),
		GainUp:   key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "gain +")),
		Classic:  key.NewBinding(key.WithKeys("f6"), key.WithHelp("f6", "classic")),
		Float:    key.NewBinding(key.WithKeys("f7"), key.WithHelp("f7", "float")),
		Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.RateUp, k.GainUp, k.Help, k.Quit}
}

func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Quit},
		{k.RateDown, k.RateUp},
		{k.GainDown, k.GainUp},
		{k.Classic, k.Float, k.Help},
	}
}

// sampleRates are the rates stepped through from the keyboard.
var sampleRates = []int{8000, 11025, 16000, 22050, 32000, 44100, 48000}

// stepRate returns the next preset rate above (dir > 0) or below current.
func stepRate(current, dir int) int {
	if dir > 0 {
		for _, rate := range sampleRates {
			if rate > current {
				return rate
			}
		}

		return current
	}

	for i := len(sampleRates) - 1; i >= 0; i-- {
		if sampleRates[i] < current {
			return sampleRates[i]
		}
	}

	return current
}
