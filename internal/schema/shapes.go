package schema

// Declared shapes for the endpoint tables the facade consumes. Field sets
// track what upstream actually sends today; percentages and streak-style
// fields are nullable because upstream omits them for edge rows (inactive
// players, preseason tables). Anything not listed passes through untouched.

var PlayerListRow = Shape{
	Name: "playerListRow",
	Fields: map[string]Field{
		"personId":              Num(),
		"displayFirstLast":      Opt(StrNull()),
		"displayLastCommaFirst": Opt(StrNull()),
		"rosterstatus":          Opt(NumNull()),
		"fromYear":              Opt(StrNull()),
		"toYear":                Opt(StrNull()),
		"teamId":                NumNull(),
		"teamAbbreviation":      StrNull(),
	},
}

var PlayerInfoRow = Shape{
	Name: "playerInfoRow",
	Fields: map[string]Field{
		"personId":         Num(),
		"firstName":        Str(),
		"lastName":         Str(),
		"birthdate":        StrNull(),
		"height":           StrNull(),
		"weight":           StrNull(),
		"position":         StrNull(),
		"jersey":           StrNull(),
		"teamId":           NumNull(),
		"teamAbbreviation": StrNull(),
		"country":          Opt(StrNull()),
		"draftYear":        Opt(StrNull()),
	},
}

var CareerStatRow = Shape{
	Name: "careerStatRow",
	Fields: map[string]Field{
		"playerId": Num(),
		"seasonId": Str(),
		"teamId":   NumNull(),
		"gp":       NumNull(),
		"min":      NumNull(),
		"pts":      NumNull(),
		"reb":      NumNull(),
		"ast":      NumNull(),
		"fgPct":    NumNull(),
		"fg3Pct":   NumNull(),
		"ftPct":    NumNull(),
	},
}

var GameLogRow = Shape{
	Name: "gameLogRow",
	Fields: map[string]Field{
		"gameId":    Str(),
		"gameDate":  Str(),
		"matchup":   StrNull(),
		"wl":        StrNull(),
		"min":       NumNull(),
		"pts":       NumNull(),
		"reb":       NumNull(),
		"ast":       NumNull(),
		"plusMinus": Opt(NumNull()),
	},
}

var AwardRow = Shape{
	Name: "awardRow",
	Fields: map[string]Field{
		"personId":    Num(),
		"description": StrNull(),
		"season":      StrNull(),
		"type":        Opt(StrNull()),
	},
}

var LeaderRow = Shape{
	Name: "leaderRow",
	Fields: map[string]Field{
		"playerId": Num(),
		"rank":     Num(),
		"player":   Str(),
		"teamId":   Opt(NumNull()),
		"team":     Opt(StrNull()),
		"gp":       NumNull(),
	},
}

var TeamInfoRow = Shape{
	Name: "teamInfoRow",
	Fields: map[string]Field{
		"teamId":           Num(),
		"teamCity":         Str(),
		"teamName":         Str(),
		"teamAbbreviation": Str(),
		"teamConference":   StrNull(),
		"teamDivision":     StrNull(),
		"w":                Opt(NumNull()),
		"l":                Opt(NumNull()),
		"pct":              Opt(NumNull()),
	},
}

var RosterRow = Shape{
	Name: "rosterRow",
	Fields: map[string]Field{
		"teamId":   Num(),
		"playerId": Num(),
		"player":   Str(),
		"num":      StrNull(),
		"position": StrNull(),
		"height":   StrNull(),
		"weight":   StrNull(),
		"age":      NumNull(),
		"exp":      StrNull(),
	},
}

var TeamYearRow = Shape{
	Name: "teamYearRow",
	Fields: map[string]Field{
		"teamId": Num(),
		"year":   Str(),
		"wins":   NumNull(),
		"losses": NumNull(),
		"winPct": NumNull(),
	},
}

var FranchiseRow = Shape{
	Name: "franchiseRow",
	Fields: map[string]Field{
		"teamId":    Num(),
		"teamCity":  StrNull(),
		"teamName":  StrNull(),
		"startYear": StrNull(),
		"endYear":   StrNull(),
		"games":     NumNull(),
		"wins":      NumNull(),
		"losses":    NumNull(),
	},
}

var StandingRow = Shape{
	Name: "standingRow",
	Fields: map[string]Field{
		"teamId":      Num(),
		"teamCity":    Str(),
		"teamName":    Str(),
		"conference":  StrNull(),
		"division":    StrNull(),
		"wins":        NumNull(),
		"losses":      NumNull(),
		"winPct":      NumNull(),
		"playoffRank": Opt(NumNull()),
	},
}

var DashStatRow = Shape{
	Name: "dashStatRow",
	Fields: map[string]Field{
		"gp":     NumNull(),
		"w":      NumNull(),
		"l":      NumNull(),
		"min":    NumNull(),
		"pts":    NumNull(),
		"reb":    NumNull(),
		"ast":    NumNull(),
		"fgPct":  NumNull(),
		"fg3Pct": NumNull(),
		"ftPct":  NumNull(),
	},
}

var DraftHistoryRow = Shape{
	Name: "draftHistoryRow",
	Fields: map[string]Field{
		"personId":     Num(),
		"playerName":   Str(),
		"season":       Str(),
		"roundNumber":  NumNull(),
		"roundPick":    NumNull(),
		"overallPick":  NumNull(),
		"teamId":       NumNull(),
		"organization": Opt(StrNull()),
	},
}

var GameHeaderRow = Shape{
	Name: "gameHeaderRow",
	Fields: map[string]Field{
		"gameId":         Str(),
		"gameDateEst":    StrNull(),
		"gameStatusText": StrNull(),
		"homeTeamId":     NumNull(),
		"visitorTeamId":  NumNull(),
		"season":         Opt(StrNull()),
	},
}

var LineScoreRow = Shape{
	Name: "lineScoreRow",
	Fields: map[string]Field{
		"gameId":           Str(),
		"teamId":           Num(),
		"teamAbbreviation": StrNull(),
		"pts":              NumNull(),
	},
}

var GameSummaryRow = Shape{
	Name: "gameSummaryRow",
	Fields: map[string]Field{
		"gameId":         Str(),
		"gameDateEst":    StrNull(),
		"gamecode":       StrNull(),
		"gameStatusText": StrNull(),
		"homeTeamId":     NumNull(),
		"visitorTeamId":  NumNull(),
	},
}

var PlayByPlayRow = Shape{
	Name: "playByPlayRow",
	Fields: map[string]Field{
		"gameId":             Str(),
		"eventnum":           Num(),
		"eventmsgtype":       NumNull(),
		"period":             NumNull(),
		"pctimestring":       StrNull(),
		"homedescription":    StrNull(),
		"visitordescription": StrNull(),
		"neutraldescription": Opt(StrNull()),
		"score":              StrNull(),
	},
}

var ShotChartRow = Shape{
	Name: "shotChartRow",
	Fields: map[string]Field{
		"gameId":        Str(),
		"playerId":      Num(),
		"teamId":        NumNull(),
		"locX":          NumNull(),
		"locY":          NumNull(),
		"shotDistance":  NumNull(),
		"shotMadeFlag":  NumNull(),
		"actionType":    StrNull(),
		"shotZoneBasic": Opt(StrNull()),
	},
}

var BoxScorePlayerRow = Shape{
	Name: "boxScorePlayerRow",
	Fields: map[string]Field{
		"gameId":      Str(),
		"teamId":      Num(),
		"teamTricode": StrNull(),
		"personId":    Num(),
		"name":        StrNull(),
		"position":    Opt(StrNull()),
		"points":      NumNull(),
		"reb":         Opt(NumNull()),
		"assists":     Opt(NumNull()),
	},
}

var BoxScoreTeamRow = Shape{
	Name: "boxScoreTeamRow",
	Fields: map[string]Field{
		"gameId":      Str(),
		"teamId":      Num(),
		"teamName":    StrNull(),
		"teamCity":    StrNull(),
		"teamTricode": StrNull(),
		"points":      NumNull(),
	},
}

var BoxScoreAdvancedPlayerRow = Shape{
	Name: "boxScoreAdvancedPlayerRow",
	Fields: map[string]Field{
		"gameId":      Str(),
		"teamId":      Num(),
		"teamTricode": StrNull(),
		"personId":    Num(),
		"name":        StrNull(),
		"position":    Opt(StrNull()),
		"offRating":   NumNull(),
		"defRating":   NumNull(),
		"netRating":   Opt(NumNull()),
		"eOffRating":  Opt(NumNull()),
		"tsPct":       Opt(NumNull()),
		"usgPct":      Opt(NumNull()),
		"pace":        Opt(NumNull()),
		"pie":         Opt(NumNull()),
	},
}

var BoxScoreAdvancedTeamRow = Shape{
	Name: "boxScoreAdvancedTeamRow",
	Fields: map[string]Field{
		"gameId":      Str(),
		"teamId":      Num(),
		"teamName":    StrNull(),
		"teamCity":    StrNull(),
		"teamTricode": StrNull(),
		"offRating":   NumNull(),
		"defRating":   NumNull(),
		"netRating":   Opt(NumNull()),
		"pace":        Opt(NumNull()),
	},
}

var ScoreboardGameRow = Shape{
	Name: "scoreboardGameRow",
	Fields: map[string]Field{
		"gameId":          Str(),
		"gameDate":        StrNull(),
		"gameStatus":      NumNull(),
		"gameStatusText":  StrNull(),
		"homeTeamId":      NumNull(),
		"awayTeamId":      NumNull(),
		"homeScore":       NumNull(),
		"awayScore":       NumNull(),
		"homeTeamTricode": Opt(StrNull()),
		"awayTeamTricode": Opt(StrNull()),
	},
}
