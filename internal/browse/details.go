package browse

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/five82/portal/internal/format"
	"github.com/five82/portal/internal/rickmorty"
)

// Details bundles a character with the records its URLs point at.
type Details struct {
	Character rickmorty.Character
	Origin    *rickmorty.Location // nil when the origin is unknown
	Location  *rickmorty.Location // nil when the location is unknown
	Episodes  []rickmorty.Episode
}

// LoadDetails fetches a character, then its origin, location and episodes in
// parallel. A failure on any related record fails the whole call.
func LoadDetails(ctx context.Context, client rickmorty.Fetcher, id int) (Details, error) {
	character, err := client.GetCharacter(ctx, id)
	if err != nil {
		return Details{}, fmt.Errorf("character %d: %w", id, err)
	}
	details := Details{Character: character}

	g, gctx := errgroup.WithContext(ctx)
	if originID := format.IDFromURL(character.Origin.URL); originID > 0 {
		g.Go(func() error {
			loc, err := client.GetLocation(gctx, originID)
			if err != nil {
				return fmt.Errorf("origin %d: %w", originID, err)
			}
			details.Origin = &loc
			return nil
		})
	}
	if locationID := format.IDFromURL(character.Location.URL); locationID > 0 {
		g.Go(func() error {
			loc, err := client.GetLocation(gctx, locationID)
			if err != nil {
				return fmt.Errorf("location %d: %w", locationID, err)
			}
			details.Location = &loc
			return nil
		})
	}
	if episodeIDs := format.IDsFromURLs(character.Episode); len(episodeIDs) > 0 {
		g.Go(func() error {
			episodes, err := client.GetEpisodesByIDs(gctx, episodeIDs)
			if err != nil {
				return fmt.Errorf("episodes: %w", err)
			}
			details.Episodes = episodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Details{}, err
	}
	return details, nil
}
