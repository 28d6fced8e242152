// Command psychmark searches swim-meet psych sheet PDFs for a team code
// or swimmer name and writes a copy with the matching lines highlighted.
//
// It runs either as a one-shot CLI:
//
//	psychmark -in sheet.pdf -query MAC-MA -out highlighted.pdf
//
// or as an HTTP server serving the upload form:
//
//	psychmark -serve -addr :8080
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/swimtools/psychmark"
	"github.com/swimtools/psychmark/internal/config"
	"github.com/swimtools/psychmark/model"
	"github.com/swimtools/psychmark/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		serve      = flag.Bool("serve", false, "run the HTTP server instead of a one-shot search")
		addr       = flag.String("addr", "", "listen address (overrides config)")
		in         = flag.String("in", "", "input psych sheet PDF")
		query      = flag.String("query", "", "team code or swimmer name to search for")
		mode       = flag.String("mode", "team", `search mode: "team" or "name"`)
		out        = flag.String("out", "", "write the highlighted PDF here (optional)")
	)
	flag.Parse()

	log := logrus.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("invalid log level %q: %v", cfg.Log.Level, err)
	}
	log.SetLevel(level)

	if *serve {
		log.Fatal(server.New(cfg, log).ListenAndServe())
	}

	if err := runOnce(cfg, *in, *query, *mode, *out); err != nil {
		log.Fatal(err)
	}
}

// runOnce performs a single search from the command line, printing the
// match table and optionally writing the annotated copy.
func runOnce(cfg config.Config, in, query, modeName, out string) error {
	query = strings.TrimSpace(query)
	if in == "" || query == "" {
		flag.Usage()
		return fmt.Errorf("-in and -query are required (or use -serve)")
	}

	var mode model.Mode
	switch modeName {
	case "team":
		mode = model.ModeTeamCode
	case "name":
		mode = model.ModeSwimmerName
	default:
		return fmt.Errorf("unknown mode %q (want team or name)", modeName)
	}

	pipeline := psychmark.Open(in).
		Query(query).
		SearchMode(mode).
		HighlightColor(cfg.Highlight.R, cfg.Highlight.G, cfg.Highlight.B).
		Opacity(cfg.Highlight.Opacity)

	if out == "" {
		matches, err := pipeline.Matches()
		if err != nil {
			return err
		}
		printMatches(matches)
		return nil
	}

	annotated, matches, err := pipeline.Highlight()
	if err != nil {
		return err
	}
	printMatches(matches)

	if len(matches) == 0 {
		fmt.Println("Nothing to highlight; no file written.")
		return nil
	}
	if err := os.WriteFile(out, annotated, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, len(annotated))
	return nil
}

func printMatches(matches []model.Match) {
	if len(matches) == 0 {
		fmt.Println("No matches found.")
		return
	}

	fmt.Printf("Found %d matching line(s):\n", len(matches))
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PAGE\tLINE\tTEXT")
	for _, m := range matches {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", m.Page+1, m.Line+1, m.Text)
	}
	tw.Flush()
}
