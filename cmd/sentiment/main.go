package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crimson-sun/sentiment/internal/config"
	"github.com/crimson-sun/sentiment/internal/logging"
	"github.com/crimson-sun/sentiment/internal/shell"
	"github.com/crimson-sun/sentiment/pkg/sentiment"
)

// errReported marks failures whose diagnostic has already been printed.
var errReported = errors.New("reported")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Interrupts end the session at the next loop boundary instead of
	// killing the process.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentiment",
		Short: "Interactive text sentiment analyzer",
		Long: `sentiment loads a pre-trained DistilBERT sentiment model and classifies
each line you type as POSITIVE or NEGATIVE with a confidence score.

The model is downloaded from the Hugging Face Hub on first run and cached.
Type 'quit', 'exit' or 'q' (or press Ctrl-C) to leave.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), config.Load(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// run loads the model and drives the interactive shell until the user quits.
func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	logging.Init(logging.ParseLevel(cfg.Log.Level))

	shell.PrintBanner(out)

	fmt.Fprintln(out, "Loading sentiment analysis model...")
	fmt.Fprintln(out, "(This may take a moment on first run)")
	analyzer, err := sentiment.Load(ctx, modelOptions(cfg.Model)...)
	if err != nil {
		fmt.Fprintf(out, "Error loading model: %v\n", err)
		fmt.Fprintln(out, "Please ensure you have internet connection and try again.")
		return fmt.Errorf("load model: %w", errors.Join(errReported, err))
	}
	defer analyzer.Close()
	color.New(color.FgGreen).Fprintln(out, "✓ Model loaded successfully!")
	fmt.Fprintln(out)

	shell.PrintUsage(out)
	return shell.New(analyzer, in, out).Run(ctx)
}

func modelOptions(m config.ModelConfig) []sentiment.Option {
	opts := []sentiment.Option{
		sentiment.WithModelID(m.ID),
		sentiment.WithRevision(m.Revision),
		sentiment.WithHubURL(m.HubURL),
		sentiment.WithToken(m.Token),
		sentiment.WithRuntimeLibrary(m.RuntimeLibrary),
		sentiment.WithOffline(m.Offline),
		sentiment.WithDownloadTimeout(m.DownloadTimeout),
	}
	if m.Dir != "" {
		opts = append(opts, sentiment.WithModelDir(m.Dir))
	}
	return opts
}
