// Package ui renders the ranked demo feed as a Bubble Tea program: one row
// per post with rank, effective score, origin and author, plus an
// expandable per-action score breakdown card for the selected post.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"golang.org/x/time/rate"

	"github.com/abelbrown/foryou/internal/feed"
	"github.com/abelbrown/foryou/internal/logging"
	"github.com/abelbrown/foryou/internal/pipeline"
	"github.com/abelbrown/foryou/internal/predict"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Expand    key.Binding
	Reshuffle key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Expand:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "breakdown")),
	Reshuffle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reshuffle")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the root Bubble Tea model for the demo feed.
type Model struct {
	pipe   *pipeline.Pipeline
	seed   int64
	posts  []pipeline.RankedPost
	styles Styles
	card   breakdownCard

	cursor   int
	offset   int
	expanded bool
	showHelp bool

	width  int
	height int

	status string

	// reshuffleLimit keeps a held-down 'r' from re-ranking every frame.
	reshuffleLimit *rate.Limiter
}

// New builds the model and ranks the sample pool with the initial seed.
func New(pipe *pipeline.Pipeline, seed int64) Model {
	m := Model{
		pipe:           pipe,
		seed:           seed,
		styles:         DefaultStyles(),
		card:           breakdownCard{styles: DefaultStyles(), weights: pipe.Weights()},
		reshuffleLimit: rate.NewLimiter(rate.Every(300*time.Millisecond), 1),
	}
	m.regenerate()
	return m
}

// regenerate fills fresh predictions for the current seed and re-runs the
// ranking pipeline.
func (m *Model) regenerate() {
	now := time.Now()
	inNetwork, discovery := predict.SamplePool(now)
	gen := predict.NewGenerator(m.seed)
	gen.Fill(inNetwork)
	gen.Fill(discovery)

	posts, err := m.pipe.Run(context.Background(), now, inNetwork, discovery, predict.SampleViewer())
	if err != nil {
		logging.Error("ranking failed", "error", err)
		m.status = fmt.Sprintf("ranking failed: %v", err)
		return
	}

	m.posts = posts
	if m.cursor >= len(m.posts) {
		m.cursor = len(m.posts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.status = fmt.Sprintf("seed %d — %d posts ranked", m.seed, len(posts))
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, keys.Expand):
			m.expanded = !m.expanded
		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Reshuffle):
			if m.reshuffleLimit.Allow() {
				m.seed++
				m.regenerate()
			}
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.posts) {
		m.cursor = len(m.posts) - 1
	}

	visible := m.feedHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if visible > 0 && m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

// feedHeight is the number of rows available for feed lines.
func (m *Model) feedHeight() int {
	h := m.height - 3 // header + status + spacing
	if m.expanded {
		h -= 16 // breakdown card
	}
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("FOR YOU — ranking simulator"))
	b.WriteString("\n")

	if len(m.posts) == 0 {
		b.WriteString(m.styles.StatusBar.Render("empty feed"))
		b.WriteString("\n")
	} else {
		height := m.feedHeight()
		end := m.offset + height
		if end > len(m.posts) {
			end = len(m.posts)
		}
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderRow(m.posts[i], i == m.cursor, width))
			b.WriteString("\n")
		}

		if m.expanded && m.cursor < len(m.posts) {
			b.WriteString(m.card.View(m.posts[m.cursor], width))
			b.WriteString("\n")
		}
	}

	if m.showHelp {
		b.WriteString(m.renderHelp())
		b.WriteString("\n")
	}
	b.WriteString(m.styles.StatusBar.Render(m.status))

	return b.String()
}

func (m Model) renderRow(post pipeline.RankedPost, selected bool, width int) string {
	c := post.Candidate

	rank := m.styles.RankNumber.Render(fmt.Sprintf("%2d.", post.Rank))

	scoreStyle := m.styles.ScoreValue
	if post.Score < 0 {
		scoreStyle = m.styles.ScoreNeg
	}
	score := scoreStyle.Render(fmt.Sprintf("%.3f", post.Score))

	origin := m.styles.OriginOut.Render("OUT")
	if c.Origin == feed.OriginInNetwork {
		origin = m.styles.OriginIn.Render(" IN")
	}

	video := "   "
	if c.HasVideo {
		video = m.styles.VideoTag.Render("▶" + formatDuration(c.VideoSeconds))
	}

	author := m.styles.Author.Render("@" + c.AuthorID)

	metaWidth := 4 + 7 + 3 + 3 + runewidth.StringWidth("@"+c.AuthorID) + 8
	textWidth := width - metaWidth
	if textWidth < 10 {
		textWidth = 10
	}
	text := runewidth.Truncate(c.Text, textWidth, "…")

	row := fmt.Sprintf("%s %s %s %s %s %s", rank, score, origin, video, author, text)
	if selected {
		return m.styles.SelectedItem.Width(width).Render(row)
	}
	return m.styles.FeedItem.Width(width).Render(row)
}

func (m Model) renderHelp() string {
	bindings := []key.Binding{keys.Up, keys.Down, keys.Expand, keys.Reshuffle, keys.Help, keys.Quit}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.styles.HelpKey.Render(h.Key)+" "+m.styles.HelpDesc.Render(h.Desc))
	}
	return "  " + strings.Join(parts, "  ")
}

func formatDuration(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.0fs", seconds)
	}
	return fmt.Sprintf("%.0fm", seconds/60)
}
