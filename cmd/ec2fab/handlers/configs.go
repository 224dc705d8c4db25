package handlers

import (
	"fmt"

	"github.com/ec2fab/ec2fab/internal/launch"
)

// Configs handles the configs command.
//
// It lists the launch configs defined in the settings file.
func Configs(configPath string) error {
	settings, err := loadSettings(configPath)
	if err != nil {
		return err
	}

	if len(settings.LaunchConfigs) == 0 {
		fmt.Println("No launch configs defined. Add a launch_configs section to your ec2fab.yaml.")
		return nil
	}

	fmt.Print(launch.ConfigTable(settings))
	return nil
}
