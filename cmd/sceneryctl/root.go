package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	latest "github.com/tcnksm/go-latest"

	"github.com/skysort/sceneryctl/internal/version"
	"github.com/skysort/sceneryctl/pkg/config"
	"github.com/skysort/sceneryctl/pkg/help"
	"github.com/skysort/sceneryctl/pkg/logging"
	"github.com/skysort/sceneryctl/pkg/paths"
	"github.com/skysort/sceneryctl/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		colorMode string
	)

	rootCmd := &cobra.Command{
		Use:     "sceneryctl",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			config.Initialize(cfg)

			if colorMode == "" {
				colorMode = cfg.Output.Color
			}
			style.ConfigureColor(colorMode)
			if err := style.LoadTheme(paths.ThemeFile()); err != nil {
				log.Warn().Err(err).Msg("Ignoring broken theme file")
			}

			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", MsgFlagColor)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "order",
		Title: "LOAD ORDER:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sync",
		Title: "SYNC:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newOnCmd())
	rootCmd.AddCommand(newOffCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newUpCmd())
	rootCmd.AddCommand(newDownCmd())
	rootCmd.AddCommand(newCategoryCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newConflictsCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(help.NewTopicsCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sceneryctl version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
			if check {
				checkUpdate(version.Version)
			}
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)
	return cmd
}

// checkUpdate compares the running version against the latest release
// tag. Network failures are silent, a version check is best effort.
func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "skysort",
		Repository: "sceneryctl",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return
	}

	if res.Outdated {
		fmt.Printf("\nA new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("Download it from https://github.com/skysort/sceneryctl/releases")
	} else {
		fmt.Printf("You are using the latest version: %s\n", currentVer)
	}
}

func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenconfigShort,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := paths.ConfigFile()
			if err := config.WriteStarter(path); err != nil {
				return err
			}
			fmt.Printf(MsgConfigWritten, path)
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion script",
		GroupID:   "misc",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
