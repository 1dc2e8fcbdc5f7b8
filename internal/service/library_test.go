// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/intellicard-client/internal/adapter"
	"github.com/MKhiriev/intellicard-client/internal/app"
	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/mock"
	"github.com/MKhiriev/intellicard-client/internal/validators"
	"github.com/MKhiriev/intellicard-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLibrary(t *testing.T, ctrl *gomock.Controller) (LibraryService, *mock.MockBackendAdapter, *recordingNotifier) {
	t.Helper()

	api := mock.NewMockBackendAdapter(ctrl)
	notifier := &recordingNotifier{}
	return NewLibraryService(api, validators.NewFormValidator(), notifier, logger.Nop()), api, notifier
}

func TestLibraryService_ListCardSets_FilterAndSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib, api, _ := newTestLibrary(t, ctrl)
	ctx := context.Background()

	sets := []models.CardSet{
		{ID: 1, Name: "Spanish verbs", AccessType: models.AccessOwner},
		{ID: 2, Name: "German", Description: "Common verbs", AccessType: models.AccessAccessible},
		{ID: 3, Name: "Capitals", AccessType: models.AccessPublic},
	}
	api.EXPECT().ListCardSets(ctx).Return(sets, nil).Times(4)

	tests := []struct {
		filter models.CardSetFilter
		query  string
		want   []int64
	}{
		{models.FilterAll, "", []int64{1, 2, 3}},
		{models.FilterOwned, "", []int64{1}},
		{models.FilterAll, "  VERBS ", []int64{1, 2}},
		{models.FilterPublic, "verbs", nil},
	}

	for _, tt := range tests {
		got, err := lib.ListCardSets(ctx, tt.filter, tt.query)
		require.NoError(t, err)

		var ids []int64
		for _, s := range got {
			ids = append(ids, s.ID)
		}
		assert.Equal(t, tt.want, ids, "filter=%s query=%q", tt.filter, tt.query)
	}
}

func TestLibraryService_CreateCard_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib, _, notifier := newTestLibrary(t, ctrl)

	// запрос к бэкенду не уходит
	_, err := lib.CreateCard(context.Background(), 1, models.CardInput{Term: "   ", Definition: "x"})
	require.ErrorIs(t, err, validators.ErrInvalidInput)

	_, err = lib.CreateCard(context.Background(), 1, models.CardInput{Term: strings.Repeat("a", 256), Definition: "x"})
	require.ErrorIs(t, err, validators.ErrInvalidInput)

	assert.Empty(t, notifier.Events())
}

func TestLibraryService_CreateCard_TrimsAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib, api, notifier := newTestLibrary(t, ctrl)
	ctx := context.Background()

	api.EXPECT().CreateCard(ctx, int64(4), models.CardInput{Term: "hola", Definition: "hello"}).
		Return(models.Card{ID: 9, Term: "hola", Definition: "hello"}, nil)

	card, err := lib.CreateCard(ctx, 4, models.CardInput{Term: " hola ", Definition: "hello\n"})
	require.NoError(t, err)

	assert.Equal(t, int64(9), card.ID)
	assert.Equal(t, []string{"success:" + app.MsgCardAdded}, notifier.Events())
}

func TestLibraryService_CardSetFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib, api, notifier := newTestLibrary(t, ctrl)
	ctx := context.Background()

	api.EXPECT().DeleteCardSet(ctx, int64(3)).Return(adapter.NewResponseError(403, "You do not own this card set"))
	api.EXPECT().UpdateCardSet(ctx, int64(3), gomock.Any()).Return(models.CardSet{}, adapter.ErrInternalServerError)

	err := lib.DeleteCardSet(ctx, 3)
	require.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Equal(t, "You do not own this card set", UserMessage(err))

	_, err = lib.UpdateCardSet(ctx, 3, models.CardSetInput{Name: "Renamed"})
	require.ErrorIs(t, err, adapter.ErrInternalServerError)

	assert.Equal(t, []string{
		"error:You do not own this card set",
		"error:" + app.MsgCardSetUpdateFailed,
	}, notifier.Events())
}

func TestLibraryService_ReviewCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib, api, _ := newTestLibrary(t, ctrl)
	ctx := context.Background()

	api.EXPECT().ReviewCard(ctx, models.Review{CardID: 5, Correct: true, Difficulty: models.DefaultReviewDifficulty}).Return(nil)
	require.NoError(t, lib.ReviewCard(ctx, models.Review{CardID: 5, Correct: true}))

	err := lib.ReviewCard(ctx, models.Review{CardID: 5, Difficulty: 9})
	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestLibraryService_AccessRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lib, api, notifier := newTestLibrary(t, ctrl)
	ctx := context.Background()

	api.EXPECT().RequestAccess(ctx, int64(2)).Return(models.MessageResponse{Message: "Access request sent"}, nil)
	api.EXPECT().RespondAccessRequest(ctx, int64(2), int64(8), true).Return(models.MessageResponse{Message: "Access request approved"}, nil)
	api.EXPECT().RevokeAccess(ctx, int64(2)).Return(models.MessageResponse{}, adapter.NewResponseError(404, "No access to revoke"))

	msg, err := lib.RequestAccess(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Access request sent", msg)

	msg, err = lib.RespondAccessRequest(ctx, 2, 8, true)
	require.NoError(t, err)
	assert.Equal(t, "Access request approved", msg)

	_, err = lib.RevokeAccess(ctx, 2)
	require.ErrorIs(t, err, adapter.ErrNotFound)

	assert.Equal(t, "error:No access to revoke", notifier.Last())
}
