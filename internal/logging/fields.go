package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService  = "service"
	FieldVersion  = "version"
	FieldEndpoint = "endpoint"
	FieldShape    = "shape"
	FieldSeason   = "season"
	FieldGameID   = "game_id"
	FieldPlayerID = "player_id"
	FieldTeamID   = "team_id"
	FieldRunID    = "run_id"
	FieldCallID   = "call_id"
	FieldReport   = "report"
	FieldCount    = "count"
	FieldStatus   = "status_code"
	FieldTier     = "tier"
	FieldDuration = "duration_ms"
	FieldError    = "error"
)
