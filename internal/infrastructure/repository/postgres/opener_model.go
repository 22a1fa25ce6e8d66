package postgres

import "time"

type openerTableModel struct {
	ID                int64     `db:"id"`
	GameID            string    `db:"game_id"`
	GameDate          time.Time `db:"game_date"`
	HomeTeam          string    `db:"home_team"`
	AwayTeam          string    `db:"away_team"`
	TipWinner         string    `db:"tip_winner"`
	TipLoser          string    `db:"tip_loser"`
	FirstShotShooter  string    `db:"first_shot_shooter"`
	FirstShotMade     bool      `db:"first_shot_made"`
	FirstShotType     string    `db:"first_shot_type"`
	FirstShotTeam     string    `db:"first_shot_team"`
	SecondShotShooter string    `db:"second_shot_shooter"`
	SecondShotMade    bool      `db:"second_shot_made"`
	SecondShotType    string    `db:"second_shot_type"`
	Source            string    `db:"source"`
	CreatedAt         time.Time `db:"created_at"`
}
