package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"create-anchor-app/internal/execx"
	"create-anchor-app/internal/pm"
	"create-anchor-app/internal/preflight"
	"create-anchor-app/internal/project"
	"create-anchor-app/internal/prompt"
	"create-anchor-app/internal/scaffold"
	"create-anchor-app/internal/template"
)

var version = "dev"

var templateFlag string

var rootCmd = &cobra.Command{
	Use:   "create-anchor-app [name]",
	Short: "Scaffold a Solana/Anchor + React project",
	Long: `Interactive scaffolding for Solana/Anchor + React starter kits.

Picks a template, copies it into a new project directory, patches project
metadata for the package manager that invoked the tool, initializes git,
and installs dependencies.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := template.Catalog()
		if err != nil {
			return err
		}
		fmt.Println("Available templates:")
		for _, info := range infos {
			fmt.Printf("  %-20s %s\n", info.Value, info.Description)
		}
		return nil
	},
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	runner := execx.NewExecRunner()
	manager := pm.Detect(os.Getenv("npm_config_user_agent"))

	if err := reportPreflight(ctx, runner); err != nil {
		return err
	}

	infos, err := template.Catalog()
	if err != nil {
		return err
	}

	templateID := templateFlag
	if templateID == "" {
		templateID, err = prompt.SelectTemplate(infos)
		if err != nil {
			return err
		}
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		name, err = prompt.ProjectName()
		if err != nil {
			return err
		}
	}

	req, err := project.New(templateID, name)
	if err != nil {
		return err
	}

	files, err := template.Files(req.Template)
	if err != nil {
		return err
	}

	s := scaffold.New(runner, os.Stdout)
	if _, err := s.Create(ctx, files, req, manager); err != nil {
		return err
	}

	color.Green("\n%s is ready!", req.Name)
	fmt.Println("")
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", req.Name)
	fmt.Printf("  %s dev       - start the frontend\n", manager.RunCommand)
	fmt.Println("  anchor build  - build the program")
	fmt.Println("  anchor test   - run the program tests")
	return nil
}

func reportPreflight(ctx context.Context, runner execx.Runner) error {
	fmt.Println("Checking toolchain...")
	report := preflight.Check(ctx, runner)
	for _, status := range report.Statuses {
		if status.Found {
			fmt.Printf("  ok %-7s %s\n", status.Tool.Name, status.Version)
		}
	}

	missing := report.Missing()
	if len(missing) == 0 {
		return nil
	}
	for _, status := range missing {
		color.Red("  missing %s - install it from %s", status.Tool.Name, status.Tool.InstallURL)
	}
	return fmt.Errorf("%d required tool(s) missing", len(missing))
}

func main() {
	rootCmd.Flags().StringVarP(&templateFlag, "template", "t", "", "Template to use (skips the template prompt)")
	rootCmd.AddCommand(listCmd)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Println("Cancelled.")
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
