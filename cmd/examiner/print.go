package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reclamegraag/examiner/internal/config"
	"github.com/reclamegraag/examiner/internal/pdf"
)

type HideFlag pdf.Hide

// Set implements pflag.Value.
func (h *HideFlag) Set(v string) error {
	switch pdf.Hide(v) {
	case pdf.HideA, pdf.HideB, pdf.HideNone:
		*h = HideFlag(v)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, pdf.HideA, pdf.HideB)
	}
	return nil
}

// String implements pflag.Value.
func (h *HideFlag) String() string {
	if h == nil {
		return ""
	}
	return string(*h)
}

// Type implements pflag.Value.
func (h *HideFlag) Type() string {
	return "HideFlag"
}

func newPrintCommand() *cobra.Command {
	var (
		hide         HideFlag
		templatePath string
		outputDir    string
	)
	command := &cobra.Command{
		Use:   "print <set id>",
		Short: "Write a printable PDF word list of a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := parseID("set", args[0])
			if err != nil {
				return err
			}
			return withStore(func(cfg *config.Config, s *store) error {
				set, err := findSet(cmd.Context(), s.repo, setID)
				if err != nil {
					return err
				}
				pairs, err := s.repo.FindPairsBySet(cmd.Context(), setID)
				if err != nil {
					return fmt.Errorf("FindPairsBySet(%d) > %w", setID, err)
				}
				if outputDir == "" {
					outputDir = cfg.Outputs.PDFDirectory
				}

				path, err := pdf.RenderSet(outputDir, templatePath, pdf.NewWordList(*set, pairs, pdf.Hide(hide)))
				if err != nil {
					return fmt.Errorf("pdf.RenderSet() > %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "PDF generated: %s\n", path)
				return nil
			})
		},
	}
	command.Flags().Var(&hide, "hide", "Leave one side blank for a written test. Options: a, b")
	command.Flags().StringVar(&templatePath, "template", "", "Markdown template, the built-in one when empty")
	command.Flags().StringVar(&outputDir, "output", "", "Output directory, outputs.pdf_directory when empty")
	return command
}
