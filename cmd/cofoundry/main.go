// Copyright 2026 Veridian Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/veridian-labs/cofoundry"
	"github.com/veridian-labs/cofoundry/ai"
	"github.com/veridian-labs/cofoundry/core"
	"github.com/veridian-labs/cofoundry/dataset"
	"github.com/veridian-labs/cofoundry/ingestion"
	"github.com/veridian-labs/cofoundry/search"
	"github.com/veridian-labs/cofoundry/server"
)

func main() {
	// Optional .env for local development, flags and env vars win
	godotenv.Load()

	app := &cli.App{
		Name:  "cofoundry",
		Usage: "Natural-language co-founder matchmaking over a founder dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Generate a synthetic founder dataset as CSV",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "rows",
						Usage: "Number of profiles to generate",
						Value: 700,
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "PRNG seed, same seed gives the same dataset",
						Value: 42,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output CSV path",
						Value:   "people.csv",
					},
				},
			},
			{
				Name:   "index",
				Usage:  "Build the search index from a profile CSV",
				Action: indexCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "csv",
						Usage:    "Path to the profile CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Rebuild even if the index matches the dataset",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Embedding worker pool size (0 uses the default)",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Documents embedded per request (0 uses the default)",
					},
				}, aiFlags()...),
			},
			{
				Name:      "search",
				Usage:     "Run a matchmaking query against the index",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Candidates to retrieve before re-ranking (0 uses the default)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum matches to return (0 uses the default)",
					},
				}, aiFlags()...),
			},
			{
				Name:   "serve",
				Usage:  "Serve the matchmaking API over HTTP",
				Action: serveCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address",
						Value:   ":8080",
					},
				}, aiFlags()...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// aiFlags are the model service flags shared by every command that
// talks to the AI stack.
func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Usage:   "Host URL for both embedding and generator services",
			EnvVars: []string{"COFOUNDRY_AI_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-host",
			Usage:   "Embedding service host URL (overrides --host)",
			EnvVars: []string{"COFOUNDRY_EMBEDDING_HOST"},
		},
		&cli.StringFlag{
			Name:    "generator-host",
			Usage:   "Generator service host URL (overrides --host)",
			EnvVars: []string{"COFOUNDRY_GENERATOR_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			EnvVars: []string{"COFOUNDRY_EMBEDDING_MODEL"},
		},
		&cli.StringFlag{
			Name:    "generator-model",
			Usage:   "Generator model name",
			EnvVars: []string{"COFOUNDRY_GENERATOR_MODEL"},
		},
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "API key for the model services",
			EnvVars: []string{"COFOUNDRY_API_KEY"},
		},
	}
}

func aiConfigFromFlags(c *cli.Context) *ai.Config {
	var opts []ai.ConfigOption
	if v := c.String("host"); v != "" {
		opts = append(opts, ai.WithHost(v))
	}
	if v := c.String("embedding-host"); v != "" {
		opts = append(opts, ai.WithEmbeddingHost(v))
	}
	if v := c.String("generator-host"); v != "" {
		opts = append(opts, ai.WithGeneratorHost(v))
	}
	if v := c.String("embedding-model"); v != "" {
		opts = append(opts, ai.WithEmbeddingModel(v))
	}
	if v := c.String("generator-model"); v != "" {
		opts = append(opts, ai.WithGeneratorModel(v))
	}
	if v := c.String("api-key"); v != "" {
		opts = append(opts, ai.WithAPIKey(v))
	}
	return ai.NewConfig(opts...)
}

func seedCommand(c *cli.Context) error {
	rows := c.Int("rows")
	if rows <= 0 {
		return fmt.Errorf("rows must be greater than 0")
	}

	profiles := dataset.NewGenerator(c.Int64("seed")).Generate(rows)
	output := c.String("output")
	if err := dataset.WriteCSVFile(output, profiles); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Generated %d profiles to %s\n", rows, output)
	return nil
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	profiles, err := dataset.ReadCSVFile(c.String("csv"))
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	svc, err := cofoundry.NewService(c.String("db"), cofoundry.WithAIConfig(aiConfigFromFlags(c)))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer svc.Close()

	if !c.Bool("force") {
		stale, err := svc.Stale(ctx, core.FingerprintProfiles(profiles))
		if err != nil {
			return err
		}
		if !stale {
			fmt.Fprintln(os.Stderr, "Index already matches the dataset, use --force to rebuild")
			return nil
		}
	}

	var pipelineOpts []ingestion.Option
	if v := c.Int("pool-size"); v > 0 {
		pipelineOpts = append(pipelineOpts, ingestion.WithPoolSize(v))
	}
	if v := c.Int("batch-size"); v > 0 {
		pipelineOpts = append(pipelineOpts, ingestion.WithBatchSize(v))
	}

	pipeline, err := svc.NewIngestionPipeline(pipelineOpts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	indexed, err := pipeline.IndexProfiles(ctx, profiles)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %d profiles\n", indexed)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	svc, err := cofoundry.NewService(c.String("db"), cofoundry.WithAIConfig(aiConfigFromFlags(c)))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer svc.Close()

	var searcherOpts []search.Option
	if v := c.Int("top-k"); v > 0 {
		searcherOpts = append(searcherOpts, search.WithTopK(v))
	}
	if v := c.Int("limit"); v > 0 {
		searcherOpts = append(searcherOpts, search.WithResultLimit(v))
	}

	searcher, err := svc.NewSearcher(searcherOpts...)
	if err != nil {
		return err
	}

	results, err := searcher.Search(context.Background(), query)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := cofoundry.NewService(c.String("db"), cofoundry.WithAIConfig(aiConfigFromFlags(c)))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer svc.Close()

	searcher, err := svc.NewSearcher()
	if err != nil {
		return err
	}

	srv, err := server.New(searcher)
	if err != nil {
		return err
	}

	return srv.ListenAndServe(ctx, c.String("addr"))
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
