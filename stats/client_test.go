package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/aself101/nba-api/internal/schema"
)

type recorderStub struct {
	mu     sync.Mutex
	calls  []string
	errs   int
	drifts []string
}

func (r *recorderStub) RecordEndpointCall(endpoint string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, endpoint)
	if err != nil {
		r.errs++
	}
}

func (r *recorderStub) RecordShapeDrift(endpoint string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drifts = append(r.drifts, endpoint)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recorderStub) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	rec := &recorderStub{}
	client := New(Config{
		StatsBaseURL: srv.URL,
		LiveBaseURL:  srv.URL,
		Recorder:     rec,
	})
	return client, rec
}

func TestTableReturnsCamelCasedRows(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"resultSets":[{"name":"X","headers":["A_B","PLAYER_ID"],"rowSet":[[1,2544]]}]}`))
	})

	rows, err := client.Table(context.Background(), "commonallplayers", "X", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["aB"] != float64(1) {
		t.Fatalf("expected camelCased key aB=1, got %#v", rows[0])
	}
	if rows[0]["playerId"] != float64(2544) {
		t.Fatalf("expected playerId=2544, got %#v", rows[0])
	}
	if len(rec.calls) != 1 || rec.calls[0] != "commonallplayers" {
		t.Fatalf("expected one recorded call, got %v", rec.calls)
	}
}

func TestTableUnknownNameYieldsNoRows(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultSets":[{"name":"X","headers":["A"],"rowSet":[[1]]}]}`))
	})

	rows, err := client.Table(context.Background(), "commonallplayers", "Missing", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows for unknown table, got %d", len(rows))
	}
}

func TestSingleRowEmptyIsNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultSets":[{"name":"CommonPlayerInfo","headers":["PERSON_ID"],"rowSet":[]}]}`))
	})

	_, err := client.PlayerInfo(context.Background(), 999999, nil)
	if err == nil {
		t.Fatal("expected not-found error")
	}
	nf, ok := AsNotFoundError(err)
	if !ok {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
	if nf.Resource != "player" || nf.ID != "999999" {
		t.Fatalf("unexpected not-found detail: %+v", nf)
	}
}

func TestServerErrorIsNetworkError(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Table(context.Background(), "leagueleaders", "LeagueLeaders", nil)
	if err == nil {
		t.Fatal("expected error on 500")
	}
	netErr, ok := AsNetworkError(err)
	if !ok {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
	if netErr.Endpoint != "leagueleaders" {
		t.Fatalf("expected endpoint in error, got %q", netErr.Endpoint)
	}
	if rec.errs != 1 {
		t.Fatalf("expected recorded error, got %d", rec.errs)
	}
}

func TestInvalidInputSkipsFetch(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for invalid input")
	})

	_, err := client.PlayerGameLog(context.Background(), -1, "2023-24", nil)
	if _, ok := AsInputError(err); !ok {
		t.Fatalf("expected InputError, got %v", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no recorded calls, got %v", rec.calls)
	}
}

func TestValidatedRecordsShapeDrift(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	rows := client.validated("leagueleaders", schema.LeaderRow, []Row{{"unexpected": "value"}})
	if len(rows) != 1 {
		t.Fatalf("expected drifting rows passed through, got %d", len(rows))
	}
	if rows[0]["unexpected"] != "value" {
		t.Fatalf("expected row unchanged, got %#v", rows[0])
	}
	if len(rec.drifts) != 1 || rec.drifts[0] != "leagueleaders" {
		t.Fatalf("expected one drift record, got %v", rec.drifts)
	}
}

func TestScoreboardLive(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scoreboard/todaysScoreboard_00.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"scoreboard":{"gameDate":"2024-01-15","games":[
			{"gameId":"0022300555","gameStatus":3,"gameStatusText":"Final",
			 "homeTeam":{"teamId":1610612747,"teamTricode":"LAL","score":120},
			 "awayTeam":{"teamId":1610612738,"teamTricode":"BOS","score":115}}
		]}}`))
	})

	board, err := client.ScoreboardLive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.GameDate != "2024-01-15" {
		t.Fatalf("expected game date, got %q", board.GameDate)
	}
	if len(board.Games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(board.Games))
	}
	game := board.Games[0]
	if game["gameId"] != "0022300555" {
		t.Fatalf("expected gameId, got %#v", game)
	}
	if game["homeTeamTricode"] != "LAL" || game["awayTeamTricode"] != "BOS" {
		t.Fatalf("expected folded team fields, got %#v", game)
	}
}

func TestBoxScoreAdvancedHealthyCallRecordsNoDrift(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/boxscoresummaryv2":
			w.Write([]byte(`{"resultSets":[{"name":"GameSummary",
				"headers":["GAME_ID","GAME_DATE_EST","GAMECODE","GAME_STATUS_TEXT","HOME_TEAM_ID","VISITOR_TEAM_ID"],
				"rowSet":[["0022300555","2024-01-15T00:00:00","20240115/BOSLAL","Final",1610612747,1610612738]]}]}`))
		case "/boxscoreadvancedv2":
			w.Write([]byte(`{"resultSets":[
				{"name":"PlayerStats",
				 "headers":["GAME_ID","TEAM_ID","TEAM_ABBREVIATION","TEAM_CITY","PLAYER_ID","PLAYER_NAME","START_POSITION","OFF_RATING","DEF_RATING","NET_RATING","TS_PCT","USG_PCT","PACE","PIE"],
				 "rowSet":[["0022300555",1610612747,"LAL","Los Angeles",2544,"LeBron James","F",118.2,109.5,8.7,0.612,0.31,99.4,0.18]]},
				{"name":"TeamStats",
				 "headers":["GAME_ID","TEAM_ID","TEAM_NAME","TEAM_ABBREVIATION","TEAM_CITY","OFF_RATING","DEF_RATING","NET_RATING","PACE"],
				 "rowSet":[["0022300555",1610612747,"Lakers","LAL","Los Angeles",114.1,108.3,5.8,99.4]]}]}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})

	box, err := client.BoxScoreAdvanced(context.Background(), "0022300555")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.drifts) != 0 {
		t.Fatalf("healthy advanced box score must not report drift, got %v", rec.drifts)
	}
	if box.GameDate != "2024-01-15T00:00:00" || box.GameCode != "20240115/BOSLAL" {
		t.Fatalf("expected game context resolved from summary: %+v", box)
	}
	if len(box.PlayerStats) != 1 || len(box.TeamStats) != 1 {
		t.Fatalf("expected one player and one team row: %+v", box)
	}
	player := box.PlayerStats[0]
	if player["personId"] != float64(2544) || player["name"] != "LeBron James" {
		t.Fatalf("expected shared identity vocabulary: %#v", player)
	}
	if player["teamTricode"] != "LAL" || player["position"] != "F" {
		t.Fatalf("expected tricode and position remapped: %#v", player)
	}
	if _, ok := player["playerId"]; ok {
		t.Fatalf("tabular spelling should not leak through: %#v", player)
	}
	if box.TeamStats[0]["teamTricode"] != "LAL" || box.TeamStats[0]["offRating"] != 114.1 {
		t.Fatalf("unexpected team row: %#v", box.TeamStats[0])
	}
}

func TestResolvePlayerAndTeam(t *testing.T) {
	client := New(Config{})

	player, err := client.ResolvePlayer("lebron")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if player.ID != 2544 {
		t.Fatalf("expected LeBron's id, got %d", player.ID)
	}

	team, err := client.ResolveTeam("BOS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.ID != 1610612738 {
		t.Fatalf("expected Celtics id, got %d", team.ID)
	}

	if _, err := client.ResolveTeam("ZZZ"); err == nil {
		t.Fatal("expected not-found for unknown tricode")
	}
}
