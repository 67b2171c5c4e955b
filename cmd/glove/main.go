// Copyright 2026 The tokenvec authors
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

// Command glove trains GloVe embeddings from a text file and answers
// distance and analogy queries over the trained model.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tokenvec/glove"
)

// Artifact names inside a model directory.
const (
	corpusFile  = "corpus.gob"
	cooccurFile = "cooccur.bin"
	vectorFile  = "vectors.bin"
	biasFile    = "biases.bin"
)

var (
	configPath string
	window     int
	topN       int
	accuracy   float64
	verbose    bool

	cfg = glove.DefaultConfig()
)

func main() {
	root := &cobra.Command{
		Use:           "glove",
		Short:         "Train and query GloVe word embeddings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelInfo
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			if configPath == "" {
				return nil
			}
			raw, err := os.ReadFile(configPath)
			if err != nil {
				return err
			}
			return yaml.Unmarshal(raw, &cfg)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log training progress")

	root.AddCommand(fitCommand(), similarCommand(), analogyCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit corpus.txt modeldir",
		Short: "Fit and train a model from a text file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := os.MkdirAll(args[1], 0o755); err != nil {
				return err
			}

			model, err := glove.NewModel(cfg, glove.WithWindow(window))
			if err != nil {
				return err
			}
			if err := model.Fit(string(text)); err != nil {
				return err
			}
			if err := model.Train(); err != nil {
				return err
			}
			return model.Save(artifacts(args[1]))
		},
	}

	cmd.Flags().IntVar(&window, "window", 2, "symmetric context window")
	cmd.Flags().IntVar(&cfg.NumComponents, "dim", cfg.NumComponents, "embedding dimensionality")
	cmd.Flags().IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "training epochs")
	cmd.Flags().IntVar(&cfg.Threads, "threads", cfg.Threads, "worker threads")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time-based)")
	cmd.Flags().BoolVar(&cfg.Deterministic, "deterministic", false, "single-worker reproducible training")

	return cmd
}

func similarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar modeldir",
		Short: "Read words from stdin and print their nearest neighbors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(args[0])
			if err != nil {
				return err
			}

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Split(bufio.ScanWords)
			for scanner.Scan() {
				for _, ws := range model.MostSimilar(scanner.Text(), topN) {
					fmt.Println(ws.Word, ws.Similarity)
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().IntVarP(&topN, "num", "n", 10, "number of results")
	return cmd
}

func analogyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analogy modeldir",
		Short: "Read word triples from stdin and print analogy results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(args[0])
			if err != nil {
				return err
			}

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				parts := strings.Fields(scanner.Text())
				if len(parts) != 3 {
					fmt.Fprintf(os.Stderr, "Skipping line that does not have three words: %s\n", scanner.Text())
					continue
				}
				for _, ws := range model.AnalogyWords(parts[0], parts[1], parts[2], topN, accuracy) {
					fmt.Println(ws.Word, ws.Similarity)
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().IntVarP(&topN, "num", "n", 10, "number of results")
	cmd.Flags().Float64Var(&accuracy, "accuracy", 0.0001, "baseline exclusion band")
	return cmd
}

func loadModel(dir string) (*glove.Model, error) {
	model, err := glove.NewModel(cfg)
	if err != nil {
		return nil, err
	}
	if err := model.Load(artifacts(dir)); err != nil {
		return nil, err
	}
	return model, nil
}

func artifacts(dir string) (string, string, string, string) {
	return filepath.Join(dir, corpusFile),
		filepath.Join(dir, cooccurFile),
		filepath.Join(dir, vectorFile),
		filepath.Join(dir, biasFile)
}
