package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/opener"
)

// OpenerSink persists opener records in the game_openers table. Appends are
// at-least-once; ON CONFLICT DO NOTHING keeps a replayed batch from creating
// duplicate rows for a game id.
type OpenerSink struct {
	db *sqlx.DB
}

func NewOpenerSink(db *sqlx.DB) *OpenerSink {
	return &OpenerSink{db: db}
}

func (s *OpenerSink) ListKnownIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	if err := s.db.SelectContext(ctx, &ids, `SELECT game_id FROM game_openers`); err != nil {
		return nil, fmt.Errorf("select known game ids: %w", err)
	}

	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

const insertOpenerQuery = `
INSERT INTO game_openers (
    game_id, game_date, home_team, away_team,
    tip_winner, tip_loser,
    first_shot_shooter, first_shot_made, first_shot_type, first_shot_team,
    second_shot_shooter, second_shot_made, second_shot_type,
    source
) VALUES (
    :game_id, :game_date, :home_team, :away_team,
    :tip_winner, :tip_loser,
    :first_shot_shooter, :first_shot_made, :first_shot_type, :first_shot_team,
    :second_shot_shooter, :second_shot_made, :second_shot_type,
    :source
)
ON CONFLICT (game_id) DO NOTHING`

func (s *OpenerSink) Append(ctx context.Context, records []opener.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx append openers: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, record := range records {
		row := openerTableModel{
			GameID:            record.GameID,
			GameDate:          record.Date,
			HomeTeam:          record.HomeTeam,
			AwayTeam:          record.AwayTeam,
			TipWinner:         record.TipWinner,
			TipLoser:          record.TipLoser,
			FirstShotShooter:  record.FirstShotShooter,
			FirstShotMade:     record.FirstShotMade,
			FirstShotType:     record.FirstShotType,
			FirstShotTeam:     record.FirstShotTeam,
			SecondShotShooter: record.SecondShotShooter,
			SecondShotMade:    record.SecondShotMade,
			SecondShotType:    record.SecondShotType,
			Source:            record.Source,
		}
		if _, err := tx.NamedExecContext(ctx, insertOpenerQuery, row); err != nil {
			return fmt.Errorf("insert opener game_id=%s: %w", record.GameID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append openers tx: %w", err)
	}
	return nil
}
