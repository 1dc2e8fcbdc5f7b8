// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/app"
	"github.com/MKhiriev/intellicard-client/internal/environment"
	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/mock"
	"github.com/MKhiriev/intellicard-client/internal/service"
	"github.com/MKhiriev/intellicard-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// chanSender: подменяет *tea.Program, складывает сообщения в канал.
type chanSender struct {
	ch chan tea.Msg
}

func (s *chanSender) Send(msg tea.Msg) {
	s.ch <- msg
}

// stubPage запоминает полученные сообщения.
type stubPage struct {
	msgs  []tea.Msg
	inits int
}

func (p *stubPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.msgs = append(p.msgs, msg)
	return p, nil
}

func (p *stubPage) View() string { return "stub" }

// ── PasswordBridge ───────────────────────────────────────────────────────────

func TestPasswordBridge_Prompt(t *testing.T) {
	sender := &chanSender{ch: make(chan tea.Msg, 1)}
	bridge := NewPasswordBridge()
	bridge.Attach(sender)

	go func() {
		req := (<-sender.ch).(passwordRequestMsg)
		req.reply <- "secret-" + req.username
	}()

	password, err := bridge.Prompt(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "secret-alice", password)
}

func TestPasswordBridge_NoProgram(t *testing.T) {
	_, err := NewPasswordBridge().Prompt(context.Background(), "alice")
	assert.ErrorIs(t, err, errNoProgram)
}

func TestPasswordBridge_ContextCancelled(t *testing.T) {
	sender := &chanSender{ch: make(chan tea.Msg, 1)}
	bridge := NewPasswordBridge()
	bridge.Attach(sender)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := bridge.Prompt(ctx, "alice")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPasswordModal(t *testing.T) {
	t.Run("enter answers typed value", func(t *testing.T) {
		reply := make(chan string, 1)
		modal := newPasswordModal(passwordRequestMsg{username: "alice", reply: reply})

		done, _ := modal.Update(keyRunes("pw"))
		assert.False(t, done)

		done, _ = modal.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.True(t, done)
		assert.Equal(t, "pw", <-reply)
	})

	t.Run("esc answers empty password", func(t *testing.T) {
		reply := make(chan string, 1)
		modal := newPasswordModal(passwordRequestMsg{username: "alice", reply: reply})

		done, _ := modal.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.True(t, done)
		assert.Equal(t, "", <-reply)
	})
}

// ── Notifier ─────────────────────────────────────────────────────────────────

func TestNotifier_DeliversToasts(t *testing.T) {
	sender := &chanSender{ch: make(chan tea.Msg, 4)}
	n := NewNotifier(logger.Nop())
	n.Attach(sender)

	n.Loading(service.SyncProgressKey, "working")
	n.Dismiss(service.SyncProgressKey)
	n.Success("ok")
	n.Error("bad")

	assert.Equal(t, toastMsg{kind: toastLoading, key: service.SyncProgressKey, text: "working"}, <-sender.ch)
	assert.Equal(t, dismissToastMsg{key: service.SyncProgressKey}, <-sender.ch)
	assert.Equal(t, toastMsg{kind: toastSuccess, text: "ok"}, <-sender.ch)
	assert.Equal(t, toastMsg{kind: toastError, text: "bad"}, <-sender.ch)
}

func TestNotifier_NoProgramDoesNotBlock(t *testing.T) {
	n := NewNotifier(logger.Nop())
	n.Success("dropped")
}

// ── toasts ───────────────────────────────────────────────────────────────────

func TestToasts_LoadingReplacedByKey(t *testing.T) {
	var toasts toastsModel

	assert.Nil(t, toasts.push(toastMsg{kind: toastLoading, key: "k", text: "one"}))
	assert.Nil(t, toasts.push(toastMsg{kind: toastLoading, key: "k", text: "two"}))

	require.Len(t, toasts.items, 1)
	assert.Equal(t, "two", toasts.items[0].text)

	toasts.dismiss("k")
	assert.Empty(t, toasts.items)
	assert.Equal(t, "", toasts.View())
}

func TestToasts_SuccessExpires(t *testing.T) {
	var toasts toastsModel

	cmd := toasts.push(toastMsg{kind: toastSuccess, text: "done"})
	require.NotNil(t, cmd)
	require.Len(t, toasts.items, 1)
	assert.Contains(t, toasts.View(), "done")

	toasts.dismiss("")
	assert.Len(t, toasts.items, 1, "dismiss affects loading toasts only")

	toasts.expire(toasts.items[0].id)
	assert.Empty(t, toasts.items)
}

// ── RootModel ────────────────────────────────────────────────────────────────

func newTestRoot(start string) (RootModel, map[string]*stubPage) {
	stubs := map[string]*stubPage{
		pageMenu:      {},
		pageDashboard: {},
		pageCardSet:   {},
		pageSync:      {},
	}
	pages := make(map[string]tea.Model, len(stubs))
	for name, p := range stubs {
		pages[name] = p
	}
	return NewRootModel(pages, start, models.AppBuildInfo{}, environment.Runtime{Mode: environment.ModeDesktop}, nil), stubs
}

func TestRootModel_NavigateWithPayload(t *testing.T) {
	root, stubs := newTestRoot(pageDashboard)
	set := models.CardSet{ID: 7, Name: "Go"}

	model, cmd := root.Update(NavigateTo{Page: pageCardSet, Payload: openCardSetMsg{set: set}})
	root = model.(RootModel)
	require.NotNil(t, cmd)
	assert.Equal(t, pageCardSet, root.current)
	assert.Zero(t, stubs[pageCardSet].inits, "payload replaces Init")

	model, _ = root.Update(cmd())
	root = model.(RootModel)
	require.Len(t, stubs[pageCardSet].msgs, 1)
	assert.Equal(t, openCardSetMsg{set: set}, stubs[pageCardSet].msgs[0])
}

func TestRootModel_NavigateInitsPage(t *testing.T) {
	root, stubs := newTestRoot(pageMenu)

	model, _ := root.Update(NavigateTo{Page: pageDashboard})
	assert.Equal(t, pageDashboard, model.(RootModel).current)
	assert.Equal(t, 1, stubs[pageDashboard].inits)

	model, _ = model.Update(NavigateTo{Page: "unknown"})
	assert.Equal(t, pageDashboard, model.(RootModel).current)
}

func TestRootModel_SyncMessagesReachHiddenPanel(t *testing.T) {
	root, stubs := newTestRoot(pageDashboard)

	root.Update(syncStatusMsg{status: models.SyncStatus{TotalCardSets: 2}})
	root.Update(networkMsg{online: false})

	assert.Len(t, stubs[pageSync].msgs, 2)
	assert.Empty(t, stubs[pageDashboard].msgs)
}

func TestRootModel_SessionExpiredReturnsToMenu(t *testing.T) {
	root, _ := newTestRoot(pageDashboard)

	model, _ := root.Update(sessionExpiredMsg{})
	assert.Equal(t, pageMenu, model.(RootModel).current)
}

func TestRootModel_PasswordModalCapturesKeys(t *testing.T) {
	root, stubs := newTestRoot(pageSync)
	reply := make(chan string, 1)

	model, _ := root.Update(passwordRequestMsg{username: "alice", reply: reply})
	root = model.(RootModel)
	require.NotNil(t, root.password)
	assert.Contains(t, root.View(), "alice")

	model, _ = root.Update(keyRunes("x"))
	root = model.(RootModel)
	assert.Empty(t, stubs[pageSync].msgs, "keys go to the modal")

	model, _ = root.Update(tea.KeyMsg{Type: tea.KeyEnter})
	root = model.(RootModel)
	assert.Nil(t, root.password)
	assert.Equal(t, "x", <-reply)
}

func TestRootModel_CtrlCCancelsModal(t *testing.T) {
	root, _ := newTestRoot(pageSync)
	reply := make(chan string, 1)

	model, _ := root.Update(passwordRequestMsg{username: "alice", reply: reply})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.True(t, model.(RootModel).quitByUser)
	assert.Equal(t, "", <-reply)
}

func TestRootModel_ToastsRendered(t *testing.T) {
	root, _ := newTestRoot(pageDashboard)

	model, _ := root.Update(toastMsg{kind: toastError, text: "boom"})
	assert.Contains(t, model.View(), "boom")
}

// ── SyncModel ────────────────────────────────────────────────────────────────

func newTestSyncModel(t *testing.T, online bool) (*SyncModel, *mock.MockSessionService) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	session.EXPECT().IsOnline().Return(online)
	return NewSyncModel(context.Background(), session), session
}

func TestSyncModel_OfflineBlocksSync(t *testing.T) {
	m, _ := newTestSyncModel(t, false)

	_, cmd := m.Update(keyRunes("p"))
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgInternetRequired, m.errMsg)
	assert.Contains(t, m.View(), app.MsgInternetRequired)
}

func TestSyncModel_PushRunsThroughCommand(t *testing.T) {
	m, session := newTestSyncModel(t, true)
	session.EXPECT().SyncToCloud(gomock.Any()).Return(models.PushResult{Success: true, CardSets: 2, SuccessCount: 7}, nil)

	_, cmd := m.Update(keyRunes("p"))
	require.NotNil(t, cmd)
	assert.Equal(t, actionPush, m.running)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	m.Update(batch[0]())

	assert.Equal(t, actionNone, m.running)
	assert.Equal(t, "Pushed 2 card sets with 7 cards", m.result)
}

func TestSyncModel_PartialPushSummary(t *testing.T) {
	m, _ := newTestSyncModel(t, true)

	// 3 набора по 10 карточек, один набор не создался в облаке
	m.running = actionPush
	m.Update(syncDoneMsg{push: &models.PushResult{CardSets: 3, SuccessCount: 20, ErrorCount: 1}})

	assert.Equal(t, "Pushed 2 of 3 card sets with 20 cards, 1 failed", m.result)
	assert.Contains(t, m.View(), "Pushed 2 of 3 card sets with 20 cards, 1 failed")
}

func TestSyncModel_CancelledPasswordLeavesLockToService(t *testing.T) {
	m, _ := newTestSyncModel(t, true)

	// ResetSyncFlag не ожидается: прогон сам освобождает свою блокировку
	m.running = actionPull
	m.Update(syncDoneMsg{pull: &models.PullResult{}, err: service.ErrPasswordRequired})

	assert.Equal(t, actionNone, m.running)
	assert.Equal(t, app.MsgPasswordRequired, m.errMsg)
	assert.False(t, m.stuck)
}

func TestSyncModel_AbandonedRunCanBeReleased(t *testing.T) {
	m, session := newTestSyncModel(t, true)

	m.Update(keyRunes("R"))

	m.Update(syncDoneMsg{err: service.ErrSyncInProgress})
	assert.Equal(t, app.MsgSyncInProgress, m.errMsg)
	assert.True(t, m.stuck)
	assert.Contains(t, m.View(), "R: release sync lock")

	session.EXPECT().ResetSyncFlag()
	m.Update(keyRunes("R"))

	assert.False(t, m.stuck)
	assert.Empty(t, m.errMsg)
	assert.Equal(t, "Sync lock released", m.result)
}

func TestSyncModel_ClearLocalNeedsConfirmation(t *testing.T) {
	m, _ := newTestSyncModel(t, true)

	m.Update(keyRunes("C"))
	require.NotNil(t, m.confirm)

	_, cmd := m.Update(keyRunes("n"))
	assert.Nil(t, cmd)
	assert.Nil(t, m.confirm)
	assert.Equal(t, actionNone, m.running)
}

func TestSyncModel_StatusView(t *testing.T) {
	m, _ := newTestSyncModel(t, true)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-5 * time.Minute)
	m.now = func() time.Time { return now }

	m.Update(syncStatusMsg{status: models.SyncStatus{HasCloudToken: true, LastSync: &last, TotalCardSets: 3, TotalCards: 12}})

	view := m.View()
	assert.Contains(t, view, "Connected")
	assert.Contains(t, view, "5m ago")
	assert.Contains(t, view, "12")
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func TestDashboard_FilterCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	library := mock.NewMockLibraryService(ctrl)
	m := NewDashboardModel(context.Background(), session, library)

	owned := []models.CardSet{{ID: 1, Name: "Mine", AccessType: models.AccessOwner}}
	library.EXPECT().ListCardSets(gomock.Any(), models.FilterOwned, "").Return(owned, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, owned, m.sets)
	assert.False(t, m.loading)
}

func TestDashboard_SyncDesktopOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	m := NewDashboardModel(context.Background(), session, mock.NewMockLibraryService(ctrl))

	session.EXPECT().IsDesktop().Return(false)

	_, cmd := m.Update(keyRunes("s"))
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgDesktopOnly, m.errMsg)
}

func TestDashboard_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewDashboardModel(context.Background(), mock.NewMockSessionService(ctrl), mock.NewMockLibraryService(ctrl))

	m.Update(cardSetsLoadedMsg{err: &service.UserError{Message: "nope", Err: errors.New("x")}})
	assert.Equal(t, "nope", m.errMsg)
}

// ── CardSetModel ─────────────────────────────────────────────────────────────

func TestCardSet_CopyDefinition(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewCardSetModel(context.Background(), mock.NewMockLibraryService(ctrl))

	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	m.cards = []models.Card{{ID: 1, Term: "chan", Definition: "typed conduit"}}

	m.Update(keyRunes("c"))

	assert.Equal(t, "typed conduit", copied)
	assert.Equal(t, app.MsgCopiedToClipboard, m.status)
}

func TestCardSet_AccessKeysByRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	library := mock.NewMockLibraryService(ctrl)
	m := NewCardSetModel(context.Background(), library)

	m.set = models.CardSet{ID: 9, AccessType: models.AccessPublic}
	library.EXPECT().RequestAccess(gomock.Any(), int64(9)).Return("Access request sent", nil)

	_, cmd := m.Update(keyRunes("A"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, "Access request sent", m.status)

	m.set.AccessType = models.AccessAccessible
	library.EXPECT().RevokeAccess(gomock.Any(), int64(9)).Return("Access revoked", nil)

	_, cmd = m.Update(keyRunes("x"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, "Access revoked", m.status)
}

func TestCardSet_OwnerApprovesRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	library := mock.NewMockLibraryService(ctrl)
	m := NewCardSetModel(context.Background(), library)
	m.set = models.CardSet{ID: 3, AccessType: models.AccessOwner}

	pending := []models.AccessRequest{{ID: 11, CardSetID: 3, RequesterUsername: "bob"}}
	library.EXPECT().PendingAccessRequests(gomock.Any(), int64(3)).Return(pending, nil).Times(2)
	library.EXPECT().RespondAccessRequest(gomock.Any(), int64(3), int64(11), true).Return("Approved", nil)

	_, cmd := m.Update(keyRunes("A"))
	require.True(t, m.showRequests)
	m.Update(cmd())
	assert.Contains(t, m.View(), "bob")

	_, cmd = m.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())
	assert.Equal(t, "Approved", m.status)

	require.NotNil(t, cmd)
	m.Update(cmd())
}

func TestCardSet_OwnerOpensEditForms(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewCardSetModel(context.Background(), mock.NewMockLibraryService(ctrl))
	set := models.CardSet{ID: 3, Name: "Go", AccessType: models.AccessOwner}
	card := models.Card{ID: 21, Term: "defer", Definition: "runs later"}
	m.set = set
	m.cards = []models.Card{card}

	_, cmd := m.Update(keyRunes("e"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageEditCard, Payload: editCardMsg{set: set, card: card}}, cmd())

	_, cmd = m.Update(keyRunes("E"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageEditSet, Payload: openCardSetMsg{set: set}}, cmd())

	// чужой набор редактировать нельзя
	m.set.AccessType = models.AccessAccessible
	_, cmd = m.Update(keyRunes("e"))
	assert.Nil(t, cmd)
	_, cmd = m.Update(keyRunes("E"))
	assert.Nil(t, cmd)
}

// ── Edit forms ───────────────────────────────────────────────────────────────

func TestEditSet_LoadsCurrentCopyAndUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	library := mock.NewMockLibraryService(ctrl)
	m := NewEditSetModel(context.Background(), library)

	library.EXPECT().GetCardSet(gomock.Any(), int64(5)).
		Return(models.CardSet{ID: 5, Name: "Go basics", Description: "fresh", IsPublic: true}, nil)

	_, cmd := m.Update(openCardSetMsg{set: models.CardSet{ID: 5, Name: "Go", AccessType: models.AccessOwner}})
	require.NotNil(t, cmd)
	assert.Equal(t, "Go", m.name.Value())
	assert.Contains(t, m.View(), "EDIT CARD SET")

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	m.Update(batch[1]())

	assert.Equal(t, "Go basics", m.name.Value())
	assert.Equal(t, "fresh", m.description.Value())
	assert.True(t, m.public)

	m.name.SetValue("Go advanced")
	library.EXPECT().UpdateCardSet(gomock.Any(), int64(5),
		models.CardSetInput{Name: "Go advanced", Description: "fresh", IsPublic: true}).
		Return(models.CardSet{ID: 5, Name: "Go advanced", IsPublic: true}, nil)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageCardSet, nav.Page)
	opened := nav.Payload.(openCardSetMsg)
	assert.Equal(t, "Go advanced", opened.set.Name)
	assert.Equal(t, models.AccessOwner, opened.set.AccessType)
}

func TestEditSet_EscReturnsToCardSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	library := mock.NewMockLibraryService(ctrl)
	m := NewEditSetModel(context.Background(), library)
	set := models.CardSet{ID: 5, Name: "Go", AccessType: models.AccessOwner}
	m.set = set

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageCardSet, Payload: openCardSetMsg{set: set}}, cmd())
}

func TestEditCard_UpdatesInsteadOfCreating(t *testing.T) {
	ctrl := gomock.NewController(t)
	library := mock.NewMockLibraryService(ctrl)
	m := NewEditCardModel(context.Background(), library)
	set := models.CardSet{ID: 3, Name: "Go", AccessType: models.AccessOwner}

	m.Update(editCardMsg{set: set, card: models.Card{ID: 21, Term: "defer", Definition: "runs later"}})
	assert.Equal(t, "defer", m.inputs[0].Value())
	assert.Equal(t, "runs later", m.inputs[1].Value())
	assert.Contains(t, m.View(), "EDIT CARD")

	m.inputs[1].SetValue("runs on return")
	library.EXPECT().UpdateCard(gomock.Any(), int64(21),
		models.CardInput{Term: "defer", Definition: "runs on return"}).
		Return(models.Card{ID: 21, Term: "defer", Definition: "runs on return"}, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageCardSet, Payload: openCardSetMsg{set: set}}, cmd())
}

// ── StudyModel ───────────────────────────────────────────────────────────────

func TestStudy_ReviewFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	library := mock.NewMockLibraryService(ctrl)
	m := NewStudyModel(context.Background(), library)
	m.set = models.CardSet{ID: 4, Name: "Go"}

	m.Update(dueCardsLoadedMsg{cards: []models.Card{{ID: 21, Term: "defer", Definition: "runs on return"}}})
	assert.NotContains(t, m.View(), "runs on return")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "runs on return")

	m.Update(keyRunes("5"))
	assert.Equal(t, 5, m.difficulty)

	library.EXPECT().ReviewCard(gomock.Any(), models.Review{CardID: 21, Correct: true, Difficulty: 5}).Return(nil)
	_, cmd := m.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.True(t, m.done())
	assert.Equal(t, 1, m.correct)
}
