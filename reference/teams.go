package reference

// The thirty franchises keyed by the identifiers the stats service uses.
var knownTeams = []Team{
	{ID: 1610612737, Abbreviation: "ATL", City: "Atlanta", Name: "Hawks"},
	{ID: 1610612738, Abbreviation: "BOS", City: "Boston", Name: "Celtics"},
	{ID: 1610612751, Abbreviation: "BKN", City: "Brooklyn", Name: "Nets"},
	{ID: 1610612766, Abbreviation: "CHA", City: "Charlotte", Name: "Hornets"},
	{ID: 1610612741, Abbreviation: "CHI", City: "Chicago", Name: "Bulls"},
	{ID: 1610612739, Abbreviation: "CLE", City: "Cleveland", Name: "Cavaliers"},
	{ID: 1610612742, Abbreviation: "DAL", City: "Dallas", Name: "Mavericks"},
	{ID: 1610612743, Abbreviation: "DEN", City: "Denver", Name: "Nuggets"},
	{ID: 1610612765, Abbreviation: "DET", City: "Detroit", Name: "Pistons"},
	{ID: 1610612744, Abbreviation: "GSW", City: "Golden State", Name: "Warriors"},
	{ID: 1610612745, Abbreviation: "HOU", City: "Houston", Name: "Rockets"},
	{ID: 1610612754, Abbreviation: "IND", City: "Indiana", Name: "Pacers"},
	{ID: 1610612746, Abbreviation: "LAC", City: "Los Angeles", Name: "Clippers"},
	{ID: 1610612747, Abbreviation: "LAL", City: "Los Angeles", Name: "Lakers"},
	{ID: 1610612763, Abbreviation: "MEM", City: "Memphis", Name: "Grizzlies"},
	{ID: 1610612748, Abbreviation: "MIA", City: "Miami", Name: "Heat"},
	{ID: 1610612749, Abbreviation: "MIL", City: "Milwaukee", Name: "Bucks"},
	{ID: 1610612750, Abbreviation: "MIN", City: "Minnesota", Name: "Timberwolves"},
	{ID: 1610612740, Abbreviation: "NOP", City: "New Orleans", Name: "Pelicans"},
	{ID: 1610612752, Abbreviation: "NYK", City: "New York", Name: "Knicks"},
	{ID: 1610612760, Abbreviation: "OKC", City: "Oklahoma City", Name: "Thunder"},
	{ID: 1610612753, Abbreviation: "ORL", City: "Orlando", Name: "Magic"},
	{ID: 1610612755, Abbreviation: "PHI", City: "Philadelphia", Name: "76ers"},
	{ID: 1610612756, Abbreviation: "PHX", City: "Phoenix", Name: "Suns"},
	{ID: 1610612757, Abbreviation: "POR", City: "Portland", Name: "Trail Blazers"},
	{ID: 1610612758, Abbreviation: "SAC", City: "Sacramento", Name: "Kings"},
	{ID: 1610612759, Abbreviation: "SAS", City: "San Antonio", Name: "Spurs"},
	{ID: 1610612761, Abbreviation: "TOR", City: "Toronto", Name: "Raptors"},
	{ID: 1610612762, Abbreviation: "UTA", City: "Utah", Name: "Jazz"},
	{ID: 1610612764, Abbreviation: "WAS", City: "Washington", Name: "Wizards"},
}
