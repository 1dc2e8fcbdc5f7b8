// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/intellicard-client/internal/service"
	"github.com/MKhiriev/intellicard-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// StudyModel walks through the due cards of a set. The term is shown first;
// enter reveals the definition and the user grades the answer.
type StudyModel struct {
	ctx     context.Context
	library service.LibraryService

	set        models.CardSet
	cards      []models.Card
	idx        int
	revealed   bool
	difficulty int
	overview   models.StudyOverview

	answered int
	correct  int

	loading    bool
	submitting bool
	errMsg     string
}

func NewStudyModel(ctx context.Context, library service.LibraryService) *StudyModel {
	return &StudyModel{
		ctx:        ctx,
		library:    library,
		difficulty: models.DefaultReviewDifficulty,
	}
}

func (m *StudyModel) Init() tea.Cmd {
	m.cards = nil
	m.idx = 0
	m.answered = 0
	m.correct = 0
	m.revealed = false
	m.difficulty = models.DefaultReviewDifficulty
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *StudyModel) done() bool {
	return !m.loading && m.idx >= len(m.cards)
}

func (m *StudyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openCardSetMsg:
		m.set = msg.set
		return m, m.Init()

	case dueCardsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.cards = msg.cards
		m.overview = msg.overview
		return m, nil

	case reviewedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.idx++
		m.revealed = false
		m.difficulty = models.DefaultReviewDifficulty
		if m.done() {
			return m, m.cmdOverview()
		}
		return m, nil

	case overviewLoadedMsg:
		if msg.err == nil {
			m.overview = msg.overview
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.updateKeys(msg)
	}

	return m, nil
}

func (m *StudyModel) updateKeys(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.esc) {
		return navigateWith(pageCardSet, openCardSetMsg{set: m.set})
	}
	if m.done() {
		if key.Matches(msg, keys.refresh) {
			return m.Init()
		}
		return nil
	}
	if m.loading || m.submitting {
		return nil
	}

	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.space):
		m.revealed = true
	case m.revealed && key.Matches(msg, keys.yes):
		return m.cmdReview(true)
	case m.revealed && key.Matches(msg, keys.no):
		return m.cmdReview(false)
	default:
		s := msg.String()
		if len(s) == 1 && s[0] >= '0'+models.MinReviewDifficulty && s[0] <= '0'+models.MaxReviewDifficulty {
			m.difficulty = int(s[0] - '0')
		}
	}

	return nil
}

func (m *StudyModel) cmdLoad() tea.Cmd {
	ctx, library, id := m.ctx, m.library, m.set.ID
	return func() tea.Msg {
		cards, err := library.DueCards(ctx, id)
		if err != nil {
			return dueCardsLoadedMsg{err: err}
		}
		overview, err := library.StudyOverview(ctx, id)
		return dueCardsLoadedMsg{cards: cards, overview: overview, err: err}
	}
}

func (m *StudyModel) cmdOverview() tea.Cmd {
	ctx, library, id := m.ctx, m.library, m.set.ID
	return func() tea.Msg {
		overview, err := library.StudyOverview(ctx, id)
		return overviewLoadedMsg{overview: overview, err: err}
	}
}

func (m *StudyModel) cmdReview(correct bool) tea.Cmd {
	m.submitting = true
	m.answered++
	if correct {
		m.correct++
	}

	ctx, library := m.ctx, m.library
	review := models.Review{CardID: m.cards[m.idx].ID, Correct: correct, Difficulty: m.difficulty}
	return func() tea.Msg {
		return reviewedMsg{err: library.ReviewCard(ctx, review)}
	}
}

func (m *StudyModel) View() string {
	var b strings.Builder
	b.WriteString(selectedStyle.Render(m.set.Name))
	b.WriteString("\n\n")

	var help string
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
		help = "esc: back"
	case m.done():
		m.viewSummary(&b)
		help = "r: study again │ esc: back"
	default:
		card := m.cards[m.idx]
		b.WriteString(fmt.Sprintf("Card %d of %d\n\n", m.idx+1, len(m.cards)))
		b.WriteString("Term        │ ")
		b.WriteString(card.Term)
		b.WriteString("\n")
		b.WriteString("Definition  │ ")
		if m.revealed {
			b.WriteString(card.Definition)
		} else {
			b.WriteString(helpStyle.Render("press enter to reveal"))
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Difficulty  │ %d (1 easy .. 5 hard)\n", m.difficulty))
		if m.revealed {
			help = "y: knew it │ n: did not │ 1-5: difficulty │ esc: back"
		} else {
			help = "enter: reveal │ 1-5: difficulty │ esc: back"
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("STUDY", strings.TrimRight(b.String(), "\n"), help)
}

func (m *StudyModel) viewSummary(b *strings.Builder) {
	if m.answered == 0 {
		b.WriteString("No cards are due for review\n\n")
	} else {
		b.WriteString(successStyle.Render(fmt.Sprintf("Session complete: %d of %d correct", m.correct, m.answered)))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("Total     │ %d\n", m.overview.TotalCards))
	b.WriteString(fmt.Sprintf("Due       │ %d\n", m.overview.DueCards))
	b.WriteString(fmt.Sprintf("Learning  │ %d\n", m.overview.LearningCards))
	b.WriteString(fmt.Sprintf("Mastered  │ %d\n", m.overview.MasteredCards))
}
