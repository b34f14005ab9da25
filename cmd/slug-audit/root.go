package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/fatih/structs"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var (
	// Store the result of binding cobra flags
	Config       string
	ConfigActual string
	Debug        bool

	ProjectID string
	Languages []string

	// Secrets, environment-only so they never end up in shell history.
	DeliveryAPIKey   string
	ManagementAPIKey string

	ParsedConfig YamlConfig
)

// Build the cobra command that handles our command line tool.
var rootCmd = &cobra.Command{
	Use:   "slug-audit",
	Short: "Audit a Kontent.ai project for duplicate URL slugs",
	Long: `
Two content items publishing under the same URL slug collide on the live
site.  This tool crawls the project's delivery API across languages and
reports slugs shared by distinct content items, and can hunt down every
occurrence of one specific slug.
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(cmd); err != nil {
			return fmt.Errorf("slug-audit: failed to initialise config: %w", err)
		}
		return nil
	},
}

func init() {
	// Define cobra flags, the default value has the lowest (least significant) precedence
	rootCmd.PersistentFlags().StringVar(&Config, "config", "", "config file location (default: ~/.config/slug-audit.yaml, respects SLUG_AUDIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "display debug output")
	rootCmd.PersistentFlags().StringVar(&ProjectID, "project-id", "", "Kontent.ai project (environment) ID")
	rootCmd.PersistentFlags().StringSliceVar(&Languages, "languages", nil, "language codenames to audit (default: de,en,zh)")
}

func initializeConfig(cmd *cobra.Command) error {
	// A .env alongside the binary is the easiest place for local secrets.
	// Missing is fine.
	_ = godotenv.Load()

	explicit := Config != ""
	if Config == "" {
		// Did the user provide an ENV?
		envConfig := os.Getenv("SLUG_AUDIT_CONFIG")
		if envConfig != "" {
			Config = envConfig
			explicit = true
		} else {
			// As fallback, search for config in home XDG-ish directory
			Config = "~/.config/slug-audit.yaml"
		}
	}
	config, err := homedir.Expand(Config)
	if err != nil {
		return fmt.Errorf("slug-audit: unable to expand homedir: %w", err)
	}
	ConfigActual = config

	if _, err := os.Stat(ConfigActual); errors.Is(err, os.ErrNotExist) {
		if explicit {
			fmt.Printf("Couldn't read config file %s, does it exist?  Override with --config.\n", ConfigActual)
			return fmt.Errorf("slug-audit: specified config file does not exist: %w", err)
		}
		// No config file at the default location; flags and env suffice.
	} else {
		yamlFile, err := os.ReadFile(ConfigActual)
		if err != nil {
			return fmt.Errorf("slug-audit: error reading config file: %w", err)
		}

		// I'd like to bark if a user sets a key we don't recognise:
		if err := yaml.UnmarshalStrict(yamlFile, &ParsedConfig); err != nil {
			return fmt.Errorf("slug-audit: issue parsing config file: %w", err)
		}

		if err := bindFlags(cmd, ParsedConfig); err != nil {
			return fmt.Errorf("slug-audit: failed to bind flags: %w", err)
		}
	}

	if ProjectID == "" {
		ProjectID = os.Getenv("KONTENT_PROJECT_ID")
	}
	DeliveryAPIKey = os.Getenv("KONTENT_API_KEY")
	ManagementAPIKey = os.Getenv("KONTENT_MANAGEMENT_API_KEY")

	debugLog("config resolved (file: %s, project: %s)\n", ConfigActual, ProjectID)

	return nil
}

type YamlConfig struct {
	WithVCR *bool `yaml:"with-vcr"`

	ProjectID  string   `yaml:"project-id"`
	Languages  []string `yaml:"languages"`
	ListenAddr string   `yaml:"listen-addr"`
}

// Bind each YAML key to its cobra flag, unless the flag was set explicitly.
func bindFlags(cmd *cobra.Command, v YamlConfig) error {
	for _, field := range structs.Fields(v) {
		key := field.Tag("yaml")
		if key == "" {
			return fmt.Errorf("slug-audit: could not retrieve struct tag 'yaml'")
		}
		if flag := cmd.Flag(key); flag == nil {
			// hmm... the flag is unknown.  but that can legitimately happen if you're running
			// e.g. `duplicates` which has no `listen-addr` flag but your YAML file does
			// define that key...
			continue
		}
		if !cmd.Flags().Changed(key) {
			switch field.Kind() {
			case reflect.Ptr:
				// err, this is crappy, but i know YamlConfig only uses pointers for bools.....
				b, ok := field.Value().(*bool)
				if !ok {
					return fmt.Errorf("slug-audit: found unrecognised field: %+v", field)
				}
				if b != nil {
					cmd.Flags().Set(key, fmt.Sprintf("%v", *b))
				}

			case reflect.String:
				s, ok := field.Value().(string)
				if !ok {
					return fmt.Errorf("slug-audit: found unrecognised field: %+v", field)
				}
				if s != "" {
					cmd.Flags().Set(key, s)
				}

			case reflect.Slice:
				ss, ok := field.Value().([]string)
				if !ok {
					return fmt.Errorf("slug-audit: found unrecognised field: %+v", field)
				}
				for _, s := range ss {
					// yes, repeatedly calling Set() appends to the slice...
					cmd.Flags().Set(key, s)
				}

			default:
				return fmt.Errorf("slug-audit: found unrecognised field: %+v", field)
			}
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("slug-audit: execution error: %w", err)
	}

	return nil
}
