// Command gomaze is the console maze game: manual play, enumeration of
// possible routes, shortest-path display, and PNG export. Run without a
// subcommand for the interactive menu.
package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gomaze/maze"
	"github.com/katalvlaran/gomaze/render"
)

var log = logrus.New()

var (
	mazeFile string
	verbose  bool
	noColor  bool
	noClear  bool
	delay    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "gomaze",
	Short: "Play and solve text-file mazes in the terminal",
	Long: `gomaze loads a maze from a plain text file ('#' walls, one 'S' start,
one 'E' exit, every row the same length) and offers manual navigation,
randomized route enumeration, and BFS shortest-path display.

Examples:
  gomaze --maze maze.txt
  gomaze play --maze maze.txt
  gomaze paths --limit 5 --seed 42
  gomaze solve
  gomaze export --out solved.png --solve`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(logrus.WarnLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&mazeFile, "maze", "m", "maze.txt", "Path to the maze text file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	rootCmd.PersistentFlags().BoolVar(&noClear, "no-clear", false, "Do not clear the screen between frames")
	rootCmd.PersistentFlags().DurationVar(&delay, "delay", time.Second, "Pause after transient messages")
}

// loadGrid reads the configured maze file and logs load diagnostics.
func loadGrid() (*maze.Grid, error) {
	started := time.Now()
	g, err := maze.LoadFile(mazeFile, maze.DefaultLoadOptions())
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"file":    mazeFile,
		"rows":    g.Rows(),
		"cols":    g.Cols(),
		"elapsed": time.Since(started),
	}).Debug("maze loaded")

	return g, nil
}

// newDisplay builds the console display from the global flags.
func newDisplay(cmd *cobra.Command) *render.Console {
	opts := render.DefaultConsoleOptions()
	opts.Color = !noColor
	opts.ClearScreen = !noClear
	opts.MessageDelay = delay

	return render.NewConsole(cmd.OutOrStdout(), opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
