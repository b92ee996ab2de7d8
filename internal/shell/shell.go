// Package shell is the administrator console: a REPL on the server's own
// stdin that calls into the persistence gateway and the live world registry.
// It is the only code path allowed to reach the ad-hoc statement executor,
// and it is never wired to network input.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oldentide/server/internal/persist"
	"github.com/oldentide/server/internal/validate"
	"github.com/oldentide/server/internal/world"
	"go.uber.org/zap"
)

type Shell struct {
	db       *persist.DB
	accounts *persist.AccountRepo
	npcs     *persist.NPCRepo
	state    *world.State
	shutdown func()
	log      *zap.Logger

	in       io.Reader
	out      io.Writer
	hostname string
}

func New(db *persist.DB, accounts *persist.AccountRepo, npcs *persist.NPCRepo, state *world.State, shutdown func(), log *zap.Logger) *Shell {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	return &Shell{
		db:       db,
		accounts: accounts,
		npcs:     npcs,
		state:    state,
		shutdown: shutdown,
		log:      log,
		in:       os.Stdin,
		out:      os.Stdout,
		hostname: hostname,
	}
}

// Run reads commands until stdin closes or the operator shuts the server
// down. A failed command reports to the operator and the loop continues.
func (s *Shell) Run(ctx context.Context) {
	fmt.Fprintln(s.out, "Starting Server Administrator Shell.")
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprintf(s.out, "OldentideAdmin@%s: ", s.hostname)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !s.dispatch(ctx, line) {
			return
		}
	}
}

// dispatch runs one command line. Returns false when the loop should stop.
func (s *Shell) dispatch(ctx context.Context, line string) bool {
	tokens := validate.Tokenize(line, ' ')
	switch tokens[0] {
	case "/shutdown":
		fmt.Fprintln(s.out, "Oldentide dedicated server is shutting down...")
		s.shutdown()
		return false
	case "/list":
		if len(tokens) != 2 {
			s.printUsage()
			return true
		}
		s.list(ctx, tokens[1])
	case "/db":
		if len(tokens) < 2 {
			s.printUsage()
			return true
		}
		s.db.ExecAdHoc(ctx, strings.TrimSpace(strings.TrimPrefix(line, "/db")), false, s.out)
	default:
		s.printUsage()
	}
	return true
}

func (s *Shell) list(ctx context.Context, what string) {
	switch what {
	case "accounts":
		accounts, err := s.accounts.List(ctx)
		if err != nil {
			fmt.Fprintf(s.out, "could not list accounts: %v\n", err)
			s.log.Warn("list accounts", zap.Error(err))
			return
		}
		for _, a := range accounts {
			fmt.Fprintf(s.out, "%-20s %-30s valid=%t playing=%t\n", a.Name, a.Email, a.Valid, a.Playing)
		}
		fmt.Fprintf(s.out, "%d account(s)\n", len(accounts))
	case "players":
		players := s.state.Players()
		for _, p := range players {
			fmt.Fprintln(s.out, p.DisplayName())
		}
		fmt.Fprintf(s.out, "%d player(s) online\n", len(players))
	case "npcs":
		npcs, err := s.npcs.List(ctx)
		if err != nil {
			fmt.Fprintf(s.out, "could not list npcs: %v\n", err)
			s.log.Warn("list npcs", zap.Error(err))
			return
		}
		for _, n := range npcs {
			fmt.Fprintf(s.out, "%-20s %-15s zone=%s\n", n.Firstname+" "+n.Lastname, n.Profession, n.Location.Zone)
		}
		fmt.Fprintf(s.out, "%d npc(s)\n", len(npcs))
	default:
		s.printUsage()
	}
}

func (s *Shell) printUsage() {
	fmt.Fprintln(s.out, "Dedicated Server Admin Usage:")
	fmt.Fprintln(s.out, "/shutdown    = Shuts down the server.")
	fmt.Fprintln(s.out, "/list <var>  = Lists all entities of given <var>, where <var> is [accounts, players, npcs].")
	fmt.Fprintln(s.out, "/db <query>  = Runs a given sql query on the sqlite3 database.")
}
