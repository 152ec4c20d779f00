package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"git.sr.ht/~rockorager/gloss"
)

type widthFlags struct {
	method  string
	verbose bool
}

// newWidthCmd measures text as gloss will lay it out
func newWidthCmd() *cobra.Command {
	flags := &widthFlags{}

	cmd := &cobra.Command{
		Use:   "width [text]",
		Short: "Print the display width of text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := parseWidthMethod(flags.method)
			if err != nil {
				return err
			}
			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), "Enter text: ")
				scanner := bufio.NewScanner(cmd.InOrStdin())
				scanner.Scan()
				input = scanner.Text()
			}
			r := gloss.NewRenderer(gloss.Options{WidthMethod: method})
			fmt.Fprint(cmd.OutOrStdout(), measure(r, input, flags.verbose))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.method, "method", "m", "unicode", "Width method (unicode, wcwidth, no-zwj)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Print the text between rulers")

	return cmd
}

func parseWidthMethod(s string) (gloss.WidthMethod, error) {
	for _, m := range []gloss.WidthMethod{gloss.UnicodeStd, gloss.WCWidth, gloss.NoZWJ} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown width method %q", s)
}

func measure(r gloss.Renderer, input string, verbose bool) string {
	w := r.Width(input)
	out := fmt.Sprintln(w)
	if verbose {
		ruler := r.NewStyle().Border(gloss.ASCIIBorder(), true, true, false)
		out += fmt.Sprintln(ruler.Render(input))
	}
	return out
}
