package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	cfg "github.com/Tomas-vilte/MateNotes/internal/config"
	domainErrors "github.com/Tomas-vilte/MateNotes/internal/errors"
	"github.com/Tomas-vilte/MateNotes/internal/i18n"
	"github.com/Tomas-vilte/MateNotes/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateNotes/internal/logger"
	"github.com/Tomas-vilte/MateNotes/internal/services"
	"github.com/Tomas-vilte/MateNotes/internal/ui"
	"github.com/Tomas-vilte/MateNotes/internal/version"
	"github.com/urfave/cli/v3"
)

// NewApp builds the root command. mate-notes has a single behavior, so
// everything hangs off the root action instead of subcommands.
func NewApp(config *cfg.Config, trans *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:        "mate-notes",
		Usage:       trans.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: trans.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input file containing changeset text (default: stdin)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file for the release notes (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   "GitHub repository in owner/repo format",
				Value:   config.DefaultRepository,
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "language for messages (en, es)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable informational logging",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: runAction(config, trans),
	}
}

func runAction(config *cfg.Config, trans *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))

		if lang := cmd.String("lang"); lang != "" {
			if err := trans.SetLanguage(lang); err != nil {
				return err
			}
		}

		changeset, err := readChangeset(cmd.String("input"), trans)
		if err != nil {
			return err
		}

		owner, repo, err := cfg.SplitRepository(cmd.String("repo"))
		if err != nil {
			return domainErrors.ErrInvalidRepo.WithError(err)
		}

		token := config.ResolveToken()
		if token == "" {
			token = ui.AskToken(trans)
		}
		if token == "" {
			return domainErrors.ErrTokenMissing
		}

		spinner := ui.NewSmartSpinner(trans.GetMessage("notes.resolving", 0, map[string]interface{}{
			"Count": len(services.ExtractCommitHashes(changeset)),
		}))
		spinner.Start()

		vcsClient := github.NewGitHubClient(owner, repo, token, trans, spinner.Log)
		notesService := services.NewNotesService(vcsClient, trans, spinner.Log)

		notes := notesService.GenerateReleaseNotes(ctx, changeset)
		spinner.Success(trans.GetMessage("notes.done", 0, nil))

		return writeNotes(cmd.String("output"), notes, trans)
	}
}

func readChangeset(inputPath string, trans *i18n.Translations) (string, error) {
	var changeset string

	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", domainErrors.ErrReadInput.WithError(err).WithContext("path", inputPath)
		}
		changeset = string(data)
	} else {
		fmt.Println(trans.GetMessage("notes.paste_prompt", 0, nil))
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", domainErrors.ErrReadInput.WithError(err)
		}
		changeset = string(data)
	}

	if len(changeset) == 0 || isBlank(changeset) {
		return "", domainErrors.ErrEmptyChangeset
	}
	return changeset, nil
}

func writeNotes(outputPath, notes string, trans *i18n.Translations) error {
	if outputPath == "" {
		fmt.Println()
		fmt.Println(trans.GetMessage("notes.generated_banner", 0, nil))
		fmt.Println()
		fmt.Println(notes)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(notes), 0644); err != nil {
		return domainErrors.ErrWriteOutput.WithError(err).WithContext("path", outputPath)
	}

	fmt.Printf("%s %s\n", ui.SuccessEmoji, trans.GetMessage("notes.written", 0, map[string]interface{}{
		"File": outputPath,
	}))
	return nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
