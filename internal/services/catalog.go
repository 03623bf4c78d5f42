package services

import (
	"context"
	"errors"
	"sync"

	"tvshows-client/internal/models"
)

// CatalogService loads shows and their episodes
type CatalogService struct {
	api API
}

// NewCatalogService creates a new catalog service
func NewCatalogService(api API) *CatalogService {
	return &CatalogService{api: api}
}

// Shows loads the home screen list
func (s *CatalogService) Shows(ctx context.Context, session *Session) ([]models.Show, error) {
	token, err := session.token()
	if err != nil {
		return nil, fail(MsgLoadShowsFailed, err)
	}

	shows, err := s.api.ListShows(ctx, token)
	if err != nil {
		return nil, fail(MsgLoadShowsFailed, err)
	}
	return shows, nil
}

// ShowPage is the content of a show screen
type ShowPage struct {
	Details  *models.ShowDetails `json:"details,omitempty"`
	Episodes []models.Episode    `json:"episodes,omitempty"`
}

// ShowPage loads details and episodes of a show. The two requests are
// independent: a failure of one leaves the other's result in the page and
// the returned error joins one OperationError per failed half.
func (s *CatalogService) ShowPage(ctx context.Context, session *Session, showID string) (ShowPage, error) {
	token, err := session.token()
	if err != nil {
		return ShowPage{}, fail(MsgLoadShowFailed, err)
	}

	var (
		page                    ShowPage
		detailsErr, episodesErr error
		wg                      sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		details, err := s.api.ShowDetails(ctx, token, showID)
		if err != nil {
			detailsErr = fail(MsgLoadShowFailed, err)
			return
		}
		page.Details = &details
	}()
	go func() {
		defer wg.Done()
		episodes, err := s.api.ListEpisodes(ctx, token, showID)
		if err != nil {
			episodesErr = fail(MsgLoadEpisodesFailed, err)
			return
		}
		page.Episodes = episodes
	}()
	wg.Wait()

	return page, errors.Join(detailsErr, episodesErr)
}
