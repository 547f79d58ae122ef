package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorewood/nextkit/internal/interview"
	"github.com/gorewood/nextkit/internal/output"
	"github.com/gorewood/nextkit/internal/scaffold"
)

// setupFlags holds the command-line flags for the setup command.
type setupFlags struct {
	answers     string
	yes         bool
	name        string
	description string
	dryRun      bool
}

// setupResult is the --json document of the setup command.
type setupResult struct {
	Answers interview.Answers `json:"answers"`
	*scaffold.Result
}

// newSetupCmd creates the setup command.
func newSetupCmd() *cobra.Command {
	flags := &setupFlags{}

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the project interview and scaffold the project",
		Long: `Ask a few questions about the project and adapt the starter to the answers.

Steps:
  package_json   Set name and description, add feature dependencies
  next_config    Write next.config.js
  tsconfig       Write tsconfig.json
  tailwind       Write Tailwind and PostCSS config (tailwind feature)
  ai_workflows   Fill in AI-WORKFLOWS/START-PROMPT.md
  starter_files  Write the src/app starter pages
  docker         Write Dockerfile and .dockerignore (Docker selected)
  documentation  Fill in the overview and project docs, add feature docs

A failed step is reported and the remaining steps still run.

Examples:
  nextkit setup                              # Interactive interview
  nextkit setup --yes --name shop            # Defaults with a project name
  nextkit setup --answers answers.yaml       # Answers from a YAML file
  nextkit setup --yes --dry-run              # Show what would be written`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.answers, "answers", "", "Read answers from a YAML file instead of asking")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Accept the default answers without asking")
	cmd.Flags().StringVar(&flags.name, "name", "", "Project name (overrides the answers)")
	cmd.Flags().StringVar(&flags.description, "description", "", "Project description (overrides the answers)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show the steps without writing files")

	return cmd
}

// runSetup executes the setup command.
func runSetup(cmd *cobra.Command, flags *setupFlags) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	answers, err := collectAnswers(cmd, rt, flags)
	if err != nil {
		return fail(rt.printer, err)
	}
	rt.logger.Debug("setup answers",
		zap.String("name", answers.ProjectName),
		zap.String("type", answers.ProjectType),
		zap.Strings("features", answers.Features))

	result := scaffold.New(rt.root, answers, scaffold.Options{
		DryRun: flags.dryRun,
		Now:    time.Now,
		Logger: rt.logger,
	}).Run()

	if rt.printer.IsJSON() {
		if err := rt.printer.WriteJSON(setupResult{Answers: answers, Result: result}); err != nil {
			return err
		}
	} else {
		outputSetupHuman(rt.printer, result)
	}

	if !result.OK {
		return output.NewIssuesError(fmt.Sprintf("%d setup steps failed", len(result.Failed())))
	}
	return nil
}

// collectAnswers resolves answers from a file, the defaults, or the
// interactive interview, then applies the --name and --description overrides.
func collectAnswers(cmd *cobra.Command, rt *runtime, flags *setupFlags) (interview.Answers, error) {
	var (
		answers interview.Answers
		err     error
	)
	switch {
	case flags.answers != "":
		answers, err = interview.LoadFile(flags.answers)
		if err != nil {
			return interview.Answers{}, err
		}
	case flags.yes:
		answers = interview.Defaults()
	case rt.printer.IsJSON():
		return interview.Answers{}, output.NewUserError("interactive setup cannot run with --json; pass --answers or --yes")
	default:
		answers, err = askAnswers(cmd.Context(), cmd, overrides(interview.Defaults(), flags))
		if err != nil {
			return interview.Answers{}, err
		}
	}

	answers = overrides(answers, flags)
	if err := answers.Validate(); err != nil {
		return interview.Answers{}, output.NewUserError(fmt.Sprintf("invalid answers: %v", err))
	}
	return answers, nil
}

func askAnswers(ctx context.Context, cmd *cobra.Command, initial interview.Answers) (interview.Answers, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	answers, err := interview.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), initial)
	if err != nil {
		if errors.Is(err, interview.ErrAborted) {
			return interview.Answers{}, output.NewUserError("setup aborted")
		}
		return interview.Answers{}, output.NewUserError(err.Error())
	}
	return answers, nil
}

// overrides applies the --name and --description flags to answers.
func overrides(answers interview.Answers, flags *setupFlags) interview.Answers {
	if flags.name != "" {
		answers.ProjectName = flags.name
	}
	if flags.description != "" {
		answers.Description = flags.description
	}
	return answers
}
