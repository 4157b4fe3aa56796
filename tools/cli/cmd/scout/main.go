// Command scout fetches scouting data from the backend and prints the
// normalized view models as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/scout9/scout9-web/internal/logic"
	"github.com/scout9/scout9-web/internal/models"
	"github.com/scout9/scout9-web/internal/roster"
	"github.com/scout9/scout9-web/internal/scoutapi"
)

const usage = `usage: scout [-api URL] <command> [flags]

commands:
  report <id> [-title lol|valorant]
  generate -team ID [-name NAME] [-title lol|valorant] [-matches N]
  matchup -team1 ID -team2 ID [-title lol|valorant] [-matches N]
  teams [-title lol|valorant] [-q QUERY] [-remote]
  list
`

var errUsage = errors.New("invalid usage")

// backend is the part of the scouting client the CLI calls.
type backend interface {
	Report(ctx context.Context, id string) ([]byte, error)
	GenerateReport(ctx context.Context, req scoutapi.GenerateRequest) ([]byte, error)
	Matchup(ctx context.Context, req scoutapi.MatchupRequest) ([]byte, error)
	ListReports(ctx context.Context) ([]models.ReportListItem, error)
	SearchTeams(ctx context.Context, query string, title models.Title) ([]models.Team, error)
}

func main() {
	global := flag.NewFlagSet("scout", flag.ExitOnError)
	baseURL := global.String("api", envOr("SCOUT9_API_URL", "http://localhost:8080"), "scouting backend URL")
	timeout := global.Duration("timeout", 5*time.Minute, "request timeout")
	global.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	global.Parse(os.Args[1:])

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	api := scoutapi.New(scoutapi.Config{BaseURL: *baseURL, Timeout: *timeout, Logger: logger})
	if err := run(context.Background(), global.Args(), os.Stdout, api); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "scout: %s\n", scoutapi.MessageOf(err, err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, api backend) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	titleFlag := fs.String("title", "lol", "game title")

	switch cmd {
	case "report":
		// The id may precede the flags
		var id string
		if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			id, rest = rest[0], rest[1:]
		}
		if err := fs.Parse(rest); err != nil {
			return errUsage
		}
		if id == "" {
			id = fs.Arg(0)
		}
		if id == "" {
			return errUsage
		}
		raw, err := api.Report(ctx, id)
		if err != nil {
			return err
		}
		r, err := logic.NormalizeReport(raw)
		if err != nil {
			return err
		}
		return printJSON(out, r)

	case "generate":
		team := fs.String("team", "", "team id")
		name := fs.String("name", "", "team name")
		matches := fs.Int("matches", scoutapi.DefaultMatchCount, "matches to analyze")
		if err := fs.Parse(rest); err != nil || *team == "" {
			return errUsage
		}
		title, err := parseTitle(*titleFlag)
		if err != nil {
			return err
		}
		raw, err := api.GenerateReport(ctx, scoutapi.GenerateRequest{
			TeamID:     *team,
			TeamName:   *name,
			MatchCount: *matches,
			TitleID:    title.BackendID(),
		})
		if err != nil {
			return err
		}
		r, err := logic.NormalizeReport(raw)
		if err != nil {
			return err
		}
		return printJSON(out, r)

	case "matchup":
		team1 := fs.String("team1", "", "first team id")
		team2 := fs.String("team2", "", "second team id")
		matches := fs.Int("matches", scoutapi.DefaultMatchupGames, "matches to compare")
		if err := fs.Parse(rest); err != nil || *team1 == "" || *team2 == "" {
			return errUsage
		}
		if *team1 == *team2 {
			return errors.New("team1 and team2 must differ")
		}
		title, err := parseTitle(*titleFlag)
		if err != nil {
			return err
		}
		raw, err := api.Matchup(ctx, scoutapi.MatchupRequest{Team1: *team1, Team2: *team2, Title: title, Matches: *matches})
		if err != nil {
			return err
		}
		h2h, err := logic.NormalizeHeadToHead(raw, title, teamOf(*team1, title), teamOf(*team2, title))
		if err != nil {
			return err
		}
		return printJSON(out, h2h)

	case "teams":
		q := fs.String("q", "", "name fragment")
		remote := fs.Bool("remote", false, "search the backend instead of the local index")
		if err := fs.Parse(rest); err != nil {
			return errUsage
		}
		title, err := parseTitle(*titleFlag)
		if err != nil {
			return err
		}
		if *remote {
			teams, err := api.SearchTeams(ctx, *q, title)
			if err != nil {
				return err
			}
			return printJSON(out, teams)
		}
		if strings.TrimSpace(*q) == "" {
			return printJSON(out, roster.Featured(title, ""))
		}
		return printJSON(out, roster.Search(*q, title))

	case "list":
		items, err := api.ListReports(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, items)
	}
	return errUsage
}

func parseTitle(s string) (models.Title, error) {
	t, ok := models.ParseTitle(s)
	if !ok {
		return "", fmt.Errorf("unknown title %q", s)
	}
	return t, nil
}

func teamOf(id string, title models.Title) models.Team {
	if t, ok := roster.FindByID(id, title); ok {
		return t
	}
	return models.Team{ID: id, Name: "Team " + id}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
