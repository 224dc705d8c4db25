package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ec2fab/ec2fab/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// isInteractive reports whether stdin is a terminal.
	isInteractive = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	// runWizard runs the interactive setup wizard.
	runWizard = config.RunWizard

	// saveSettings writes the settings file.
	saveSettings = config.Save
)

// Init runs the setup wizard and writes the resulting settings file.
//
// The wizard needs a terminal; when stdin is piped the command refuses to
// run instead of hanging on form input. An existing file at the output path
// is overwritten after a warning.
func Init(ctx context.Context, outputPath string) error {
	if outputPath == "" {
		outputPath = config.DefaultFileName
	}

	if !isInteractive() {
		return errors.New("init needs an interactive terminal; write the settings file by hand when scripting")
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	settings := result.ToSettings()

	if err := saveSettings(settings, outputPath); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	printInitSuccess(outputPath, result)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("ec2fab - EC2 instances for deployment automation")
	fmt.Println("================================================")
	fmt.Println()
	fmt.Println("This wizard creates a settings file with one launch config.")
	fmt.Println("Every answer can be changed later by editing the file.")
	fmt.Println()
}

// printInitSuccess prints the success message with next steps.
func printInitSuccess(outputPath string, result *config.WizardResult) {
	fmt.Println()
	fmt.Println("Settings saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Put the private key for key pair %q into %s as %s.pem\n", result.KeyName, result.KeyPairDir, result.KeyName)
	fmt.Println()
	fmt.Println("  2. Launch your first instance:")
	fmt.Printf("     ec2fab launch %s --name myserver --wait\n", result.ConfigName)
	fmt.Println()
	fmt.Println("  3. Open a shell on it:")
	fmt.Println("     $(ec2fab ssh myserver --by-name)")
	fmt.Println()
}
