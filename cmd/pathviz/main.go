// Command pathviz runs grid searches from text layouts and serves the
// visualizer API.
//
//	pathviz search --layout maze.txt --algorithm bfs
//	pathviz serve --addr :8080
//
// Settings not given as flags come from PATHVIZ_* environment variables or
// an optional .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/AmolBhere/pathfinding-visualizer-adv/board"
	"github.com/AmolBhere/pathfinding-visualizer-adv/config"
	"github.com/AmolBhere/pathfinding-visualizer-adv/search"
	"github.com/AmolBhere/pathfinding-visualizer-adv/server"
)

var log = logrus.New()

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.WithError(err).Error("pathviz failed")
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "pathviz",
		Usage: "grid pathfinding with Dijkstra, BFS and DFS",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "dotenv files to read settings from",
				Value: []string{".env"},
			},
		},
		Commands: []*cli.Command{
			searchCommand(),
			serveCommand(),
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "run a search over a text layout and print the trace",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "layout",
				Aliases:  []string{"l"},
				Usage:    "layout file ('-' for stdin) using . # S E",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "dijkstra, bfs or dfs",
				Value:   string(search.AlgorithmDijkstra),
			},
		},
		Action: runSearch,
	}
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	algo, err := search.ParseAlgorithm(cmd.String("algorithm"))
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if path := cmd.String("layout"); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open layout: %w", err)
		}
		defer f.Close()
		in = f
	}
	b, err := board.Read(in)
	if err != nil {
		return err
	}

	run, err := b.Run(algo)
	if err != nil {
		return err
	}
	res := run.Result

	w := cmd.Root().Writer
	fmt.Fprint(w, board.Render(b.Grid(), run.Start, run.End, res))
	fmt.Fprintf(w, "%s: visited %d, path %d", algo, len(res.Visited), len(res.Path))
	if res.Found() {
		fmt.Fprintf(w, ", steps %d\n", res.Steps())
	} else {
		fmt.Fprintln(w, ", no path")
	}
	return nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the HTTP and WebSocket API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address (overrides PATHVIZ_ADDR)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "logrus level (overrides PATHVIZ_LOG_LEVEL)",
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.StringSlice("env-file")...)
	if err != nil {
		return err
	}
	if addr := cmd.String("addr"); addr != "" {
		cfg.Addr = addr
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	log.SetLevel(level)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":  cfg.Addr,
			"board": fmt.Sprintf("%d×%d", cfg.Rows, cfg.Cols),
		}).Info("pathviz listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
