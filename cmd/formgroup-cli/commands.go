package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	formgroup "github.com/goliatone/go-formgroup"
	fg "github.com/goliatone/go-formgroup/pkg/formgroup"
	"github.com/goliatone/go-formgroup/pkg/loader"
	"github.com/goliatone/go-formgroup/pkg/model"
	"github.com/goliatone/go-formgroup/pkg/openapi"
	"github.com/goliatone/go-formgroup/pkg/prompt"
	"github.com/goliatone/go-formgroup/pkg/validation"
)

var (
	definitionsPath string
	outputPath      string
	themeName       string
	themeVariant    string
	sourcePath      string
	operationID     string
	validateSource  bool
)

func init() {
	for _, cmd := range []*cobra.Command{renderCmd, openapiCmd} {
		cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (stdout if empty)")
		cmd.Flags().StringVar(&themeName, "theme", "", "Theme name emitted as data-theme")
		cmd.Flags().StringVar(&themeVariant, "variant", "", "Theme variant emitted as data-theme-variant")
	}
	for _, cmd := range []*cobra.Command{renderCmd, promptCmd} {
		cmd.Flags().StringVarP(&definitionsPath, "definitions", "d", "", "Definitions file or directory (JSON/YAML)")
		_ = cmd.MarkFlagRequired("definitions")
	}

	openapiCmd.Flags().StringVarP(&sourcePath, "source", "s", "", "OpenAPI document path")
	openapiCmd.Flags().StringVar(&operationID, "operation", "", "Operation ID (lists operations when empty)")
	openapiCmd.Flags().BoolVar(&validateSource, "validate", false, "Validate the document before rendering")
	_ = openapiCmd.MarkFlagRequired("source")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(openapiCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(typesCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [name...]",
	Short: "Render definitions as HTML",
	Long: `Render one or more named definitions. With no names every definition in
the file or directory is rendered, in name order.`,
	Example: `  # Render a single group
  formgroup-cli render -d forms/ email

  # Render every group with a theme marker
  formgroup-cli render -d forms/account.yaml --theme acme --variant dark`,
	RunE: runRender,
}

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Render the request body of an OpenAPI operation",
	Example: `  formgroup-cli openapi -s api.yaml --operation createAccount`,
	RunE:    runOpenAPI,
}

var promptCmd = &cobra.Command{
	Use:   "prompt <name>",
	Short: "Fill a definition interactively and print the model as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrompt,
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported input types",
	Run: func(cmd *cobra.Command, args []string) {
		for _, inputType := range model.InputTypes() {
			fmt.Fprintln(cmd.OutOrStdout(), inputType)
		}
	},
}

func runRender(cmd *cobra.Command, args []string) error {
	store, err := loadDefinitions(definitionsPath)
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		names = store.Names()
	}

	var props []model.Props
	for _, name := range names {
		p, err := store.Props(name)
		if err != nil {
			return err
		}
		props = append(props, p)
	}
	logger.Debug("rendering definitions", zap.String("source", definitionsPath), zap.Strings("names", names))
	return renderAll(cmd.Context(), cmd.OutOrStdout(), props)
}

func runOpenAPI(cmd *cobra.Command, args []string) error {
	var opts []openapi.LoaderOption
	if validateSource {
		opts = append(opts, openapi.WithValidation())
	}
	doc, err := openapi.Load(cmd.Context(), sourcePath, opts...)
	if err != nil {
		return err
	}

	if strings.TrimSpace(operationID) == "" {
		for _, id := range doc.Operations() {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	}

	props, err := doc.Props(operationID)
	if err != nil {
		return err
	}
	logger.Debug("rendering operation", zap.String("source", sourcePath), zap.String("operation", operationID), zap.Int("fields", len(props)))
	return renderAll(cmd.Context(), cmd.OutOrStdout(), props)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	store, err := loadDefinitions(definitionsPath)
	if err != nil {
		return err
	}
	props, err := store.Props(args[0])
	if err != nil {
		return err
	}

	component, err := formgroup.New(props, fg.WithAutoBind(), fg.WithLogger(logger))
	if err != nil {
		return err
	}
	driver := prompt.NewSurveyDriver(survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
	if _, err := prompt.Fill(cmd.Context(), component, driver); err != nil {
		return err
	}
	if issues := validation.Check(component.Props()); len(issues) > 0 {
		for _, issue := range issues {
			logger.Debug("constraint failed", zap.String("field", issue.Field), zap.String("constraint", issue.Constraint))
		}
		return fmt.Errorf("%s: %s", props.Name, issues[0].Message)
	}

	payload, err := json.Marshal(map[string]model.Value{props.Name: component.Model()})
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}

func renderAll(ctx context.Context, stdout io.Writer, props []model.Props) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []fg.Option{fg.WithLogger(logger)}
	if themeName != "" || themeVariant != "" {
		opts = append(opts, fg.WithTheme(&theme.RendererConfig{Theme: themeName, Variant: themeVariant}))
	}

	var buf bytes.Buffer
	for _, p := range props {
		out, err := formgroup.RenderHTML(ctx, p, opts...)
		if err != nil {
			return fmt.Errorf("render %q: %w", p.Name, err)
		}
		buf.Write(out)
		buf.WriteByte('\n')
	}

	if outputPath == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Form written to %s\n", outputPath)
	return nil
}

func loadDefinitions(path string) (*loader.Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("definitions: %w", err)
	}
	if info.IsDir() {
		return loader.LoadDir(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definitions: %w", err)
	}
	store := loader.NewStore()
	if err := store.Add(data, filepath.Base(path)); err != nil {
		return nil, err
	}
	return store, nil
}
