package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidgrab/vidgrab/constant"
	"github.com/vidgrab/vidgrab/internal/ui"
	"github.com/vidgrab/vidgrab/resolver"
	"github.com/vidgrab/vidgrab/style"
	"github.com/vidgrab/vidgrab/util"
	"github.com/vidgrab/vidgrab/view"
)

type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	spinnerC  spinner.Model
	inputC    textinput.Model
	resultsC  list.Model
	helpC     help.Model
	notifier  *ui.Model
	lastError error

	resolver *resolver.Resolver
	// generation identifies the current resolution; results of older ones are dropped.
	generation  int
	cancel      context.CancelFunc
	transitions chan resolver.Transition
	waiting     bool
	status      string

	model view.Model

	width, height int

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.resultsC.SetSize(listWidth, listHeight)
	b.resultsC.Help.Width = listWidth

	b.inputC.Width = listWidth
	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(r *resolver.Resolver, options *Options) *statefulBubble {
	bubble := statefulBubble{
		keymap:      newStatefulKeymap(),
		resolver:    r,
		transitions: make(chan resolver.Transition, 16),
		notifier:    &ui.Model{},
		options:     options,
	}

	// the hook runs on the resolving goroutine; drop updates rather than block it
	r.OnTransition = func(t resolver.Transition) {
		select {
		case bubble.transitions <- t:
		default:
		}
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Paste a video link (v%s)", constant.Version)
	bubble.inputC.CharLimit = 2048
	bubble.inputC.Prompt = "> "

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.resultsC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.resultsC.KeyMap = bubble.keymap.forList()
	bubble.resultsC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
	bubble.resultsC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return bubble.keymap.FullHelp()[0]
	}
	bubble.resultsC.Styles.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(style.AccentColor).Padding(0, 1)
	bubble.resultsC.SetFilteringEnabled(false)
	bubble.resultsC.SetShowPagination(false)
	bubble.resultsC.SetStatusBarItemName("rendition", "renditions")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()
	bubble.setState(inputState)

	return &bubble
}
