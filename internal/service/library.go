// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/intellicard-client/internal/adapter"
	"github.com/MKhiriev/intellicard-client/internal/app"
	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/validators"
	"github.com/MKhiriev/intellicard-client/models"
)

type libraryService struct {
	api       adapter.BackendAdapter
	validator validators.Validator
	notifier  Notifier
	logger    *logger.Logger
}

// NewLibraryService constructs the relay over the session backend. Inputs
// are validated before any request is made.
func NewLibraryService(api adapter.BackendAdapter, v validators.Validator, n Notifier, log *logger.Logger) LibraryService {
	if n == nil {
		n = NopNotifier{}
	}
	return &libraryService{api: api, validator: v, notifier: n, logger: log}
}

func (l *libraryService) ListCardSets(ctx context.Context, filter models.CardSetFilter, query string) ([]models.CardSet, error) {
	sets, err := l.api.ListCardSets(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.CardSet, 0, len(sets))
	for _, set := range sets {
		if !filter.Matches(set) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(set.Name), query) &&
			!strings.Contains(strings.ToLower(set.Description), query) {
			continue
		}
		out = append(out, set)
	}
	return out, nil
}

func (l *libraryService) GetCardSet(ctx context.Context, id int64) (models.CardSet, error) {
	return l.api.GetCardSet(ctx, id)
}

func (l *libraryService) CreateCardSet(ctx context.Context, in models.CardSetInput) (models.CardSet, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := l.validate(ctx, in); err != nil {
		return models.CardSet{}, err
	}

	set, err := l.api.CreateCardSet(ctx, in)
	if err != nil {
		return models.CardSet{}, l.failed(err, app.MsgCardSetCreateFailed)
	}

	l.notifier.Success(app.MsgCardSetCreated)
	return set, nil
}

func (l *libraryService) UpdateCardSet(ctx context.Context, id int64, in models.CardSetInput) (models.CardSet, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := l.validate(ctx, in); err != nil {
		return models.CardSet{}, err
	}

	set, err := l.api.UpdateCardSet(ctx, id, in)
	if err != nil {
		return models.CardSet{}, l.failed(err, app.MsgCardSetUpdateFailed)
	}

	l.notifier.Success(app.MsgCardSetUpdated)
	return set, nil
}

func (l *libraryService) DeleteCardSet(ctx context.Context, id int64) error {
	if err := l.api.DeleteCardSet(ctx, id); err != nil {
		return l.failed(err, app.MsgCardSetDeleteFailed)
	}

	l.notifier.Success(app.MsgCardSetDeleted)
	return nil
}

func (l *libraryService) ListCards(ctx context.Context, cardSetID int64) ([]models.Card, error) {
	return l.api.ListCards(ctx, cardSetID)
}

func (l *libraryService) CreateCard(ctx context.Context, cardSetID int64, in models.CardInput) (models.Card, error) {
	in.Term = strings.TrimSpace(in.Term)
	in.Definition = strings.TrimSpace(in.Definition)
	if err := l.validate(ctx, in); err != nil {
		return models.Card{}, err
	}

	card, err := l.api.CreateCard(ctx, cardSetID, in)
	if err != nil {
		return models.Card{}, l.failed(err, app.MsgCardAddFailed)
	}

	l.notifier.Success(app.MsgCardAdded)
	return card, nil
}

func (l *libraryService) UpdateCard(ctx context.Context, id int64, in models.CardInput) (models.Card, error) {
	in.Term = strings.TrimSpace(in.Term)
	in.Definition = strings.TrimSpace(in.Definition)
	if err := l.validate(ctx, in); err != nil {
		return models.Card{}, err
	}

	card, err := l.api.UpdateCard(ctx, id, in)
	if err != nil {
		return models.Card{}, l.failed(err, app.MsgCardUpdateFailed)
	}

	l.notifier.Success(app.MsgCardUpdated)
	return card, nil
}

func (l *libraryService) DeleteCard(ctx context.Context, id int64) error {
	if err := l.api.DeleteCard(ctx, id); err != nil {
		return l.failed(err, app.MsgCardDeleteFailed)
	}

	l.notifier.Success(app.MsgCardDeleted)
	return nil
}

func (l *libraryService) DueCards(ctx context.Context, cardSetID int64) ([]models.Card, error) {
	return l.api.DueCards(ctx, cardSetID)
}

func (l *libraryService) StudyOverview(ctx context.Context, cardSetID int64) (models.StudyOverview, error) {
	return l.api.StudyOverview(ctx, cardSetID)
}

func (l *libraryService) ReviewCard(ctx context.Context, review models.Review) error {
	if review.Difficulty == 0 {
		review.Difficulty = models.DefaultReviewDifficulty
	}
	if err := l.validate(ctx, review); err != nil {
		return err
	}

	if err := l.api.ReviewCard(ctx, review); err != nil {
		return l.failed(err, app.MsgReviewFailed)
	}
	return nil
}

func (l *libraryService) RequestAccess(ctx context.Context, cardSetID int64) (string, error) {
	resp, err := l.api.RequestAccess(ctx, cardSetID)
	if err != nil {
		return "", l.failed(err, err.Error())
	}

	l.notifier.Success(resp.Message)
	return resp.Message, nil
}

func (l *libraryService) PendingAccessRequests(ctx context.Context, cardSetID int64) ([]models.AccessRequest, error) {
	return l.api.PendingAccessRequests(ctx, cardSetID)
}

func (l *libraryService) RespondAccessRequest(ctx context.Context, cardSetID, requestID int64, approve bool) (string, error) {
	resp, err := l.api.RespondAccessRequest(ctx, cardSetID, requestID, approve)
	if err != nil {
		return "", l.failed(err, err.Error())
	}

	l.notifier.Success(resp.Message)
	return resp.Message, nil
}

func (l *libraryService) RevokeAccess(ctx context.Context, cardSetID int64) (string, error) {
	resp, err := l.api.RevokeAccess(ctx, cardSetID)
	if err != nil {
		return "", l.failed(err, err.Error())
	}

	l.notifier.Success(resp.Message)
	return resp.Message, nil
}

func (l *libraryService) validate(ctx context.Context, obj any) error {
	if l.validator == nil {
		return nil
	}

	err := l.validator.Validate(ctx, obj)
	if err == nil {
		return nil
	}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return &UserError{Message: verr.First(), Err: err}
	}
	return fmt.Errorf("validate %T: %w", obj, err)
}

// failed toasts the backend message, or fallback when there is none, and
// returns err carrying that message.
func (l *libraryService) failed(err error, fallback string) error {
	message := adapter.BackendMessage(err, fallback)
	l.notifier.Error(message)
	l.logger.Debug().Err(err).Msg(fallback)
	return &UserError{Message: message, Err: err}
}
