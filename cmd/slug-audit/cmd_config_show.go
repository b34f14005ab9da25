package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// resolvedConfig is what `config show` prints: the effective settings after
// merging flags, YAML and environment, with secrets masked.
type resolvedConfig struct {
	ConfigFile string   `yaml:"config-file"`
	Debug      bool     `yaml:"debug"`
	ProjectID  string   `yaml:"project-id"`
	Languages  []string `yaml:"languages"`

	DeliveryAPIKey   string `yaml:"delivery-api-key"`
	ManagementAPIKey string `yaml:"management-api-key"`
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Output current config",
	Long: `
Is something not working for you?  Have a look whether your config is as you expect.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved := resolvedConfig{
			ConfigFile:       ConfigActual,
			Debug:            Debug,
			ProjectID:        ProjectID,
			Languages:        Languages,
			DeliveryAPIKey:   maskSecret(DeliveryAPIKey),
			ManagementAPIKey: maskSecret(ManagementAPIKey),
		}

		out, err := yaml.Marshal(resolved)
		if err != nil {
			return fmt.Errorf("cmd: couldn't marshal resolved config: %w", err)
		}

		fmt.Printf("Resolved configuration:\n\n%s", out)
		return nil
	},
}

func maskSecret(s string) string {
	if s == "" {
		return "NOT SET"
	}
	return "***PRESENT***"
}

func init() {
	configCmd.AddCommand(showCmd)
}
