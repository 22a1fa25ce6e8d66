package memory

import "github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/notables"

// SeedNotables is the static notable-player table used by the placeholder
// policy: per team, the usual opening-tip center and a first-shot scorer.
// Reference data, not live rosters; update here when rosters drift.
func SeedNotables() []notables.Entry {
	return []notables.Entry{
		{Team: "Atlanta Hawks", Center: "Okongwu", Scorer: "Young"},
		{Team: "Boston Celtics", Center: "Porzingis", Scorer: "Tatum"},
		{Team: "Brooklyn Nets", Center: "Claxton", Scorer: "Thomas"},
		{Team: "Charlotte Hornets", Center: "Williams", Scorer: "Ball"},
		{Team: "Chicago Bulls", Center: "Vucevic", Scorer: "White"},
		{Team: "Cleveland Cavaliers", Center: "Allen", Scorer: "Mitchell"},
		{Team: "Dallas Mavericks", Center: "Lively", Scorer: "Irving"},
		{Team: "Denver Nuggets", Center: "Jokic", Scorer: "Murray"},
		{Team: "Detroit Pistons", Center: "Duren", Scorer: "Cunningham"},
		{Team: "Golden State Warriors", Center: "Jackson-Davis", Scorer: "Curry"},
		{Team: "Houston Rockets", Center: "Sengun", Scorer: "Green"},
		{Team: "Indiana Pacers", Center: "Turner", Scorer: "Haliburton"},
		{Team: "LA Clippers", Center: "Zubac", Scorer: "Harden"},
		{Team: "Los Angeles Lakers", Center: "Davis", Scorer: "James"},
		{Team: "Memphis Grizzlies", Center: "Jackson", Scorer: "Morant"},
		{Team: "Miami Heat", Center: "Adebayo", Scorer: "Butler"},
		{Team: "Milwaukee Bucks", Center: "Lopez", Scorer: "Antetokounmpo"},
		{Team: "Minnesota Timberwolves", Center: "Gobert", Scorer: "Edwards"},
		{Team: "New Orleans Pelicans", Center: "Missi", Scorer: "Williamson"},
		{Team: "New York Knicks", Center: "Towns", Scorer: "Brunson"},
		{Team: "Oklahoma City Thunder", Center: "Holmgren", Scorer: "Gilgeous-Alexander"},
		{Team: "Orlando Magic", Center: "Carter", Scorer: "Banchero"},
		{Team: "Philadelphia 76ers", Center: "Embiid", Scorer: "Maxey"},
		{Team: "Phoenix Suns", Center: "Nurkic", Scorer: "Durant"},
		{Team: "Portland Trail Blazers", Center: "Ayton", Scorer: "Simons"},
		{Team: "Sacramento Kings", Center: "Sabonis", Scorer: "DeRozan"},
		{Team: "San Antonio Spurs", Center: "Wembanyama", Scorer: "Vassell"},
		{Team: "Toronto Raptors", Center: "Poeltl", Scorer: "Barnes"},
		{Team: "Utah Jazz", Center: "Kessler", Scorer: "Markkanen"},
		{Team: "Washington Wizards", Center: "Sarr", Scorer: "Kuzma"},
	}
}
