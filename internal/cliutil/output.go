package cliutil

import (
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

var textStyle = lipgloss.NewStyle().Bold(true)

// AddOutputFlags registers the --format and --template flags read by
// HandleOutput.
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("template", "", "Template for output format. Accepts Go template format (e.g. --template='{{len .}}')")
	cmd.Flags().String("format", "json", "Output format. Accepts 'json', 'yaml', or 'text'")
}

// HandleOutput writes result to the command's output according to the
// template or format flag. When --format is not given on the command line,
// the "format" config value is used if set.
func HandleOutput(cmd *cobra.Command, result any) error {
	templateFlag, _ := cmd.Flags().GetString("template")
	formatFlag, _ := cmd.Flags().GetString("format")
	if !cmd.Flags().Changed("format") {
		if configured := viper.GetString("format"); configured != "" {
			formatFlag = configured
		}
	}

	if templateFlag != "" {
		tmpl, err := template.New("output").Parse(templateFlag)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}

		if err := tmpl.Execute(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to execute template: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	var output []byte
	var err error

	switch formatFlag {
	case "yaml":
		output, err = yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
	case "text":
		output = []byte(textStyle.Render(fmt.Sprint(result)))
	case "json", "":
		output, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format: %s", formatFlag)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
