package main

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/app"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/sheet"
)

const version = "1.0.0"

// cli carries the state shared by all subcommands of one invocation.
type cli struct {
	out, errOut io.Writer

	configPath string
	asJSON     bool

	funcs *sheet.Functions

	// outcome of the last lookup, set through sheet.Functions.OnResult
	status lookup.Status
	err    error
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "wikilookup",
		Short: "Look up Wikipedia, Wikidata and Google Suggest data",
		Long: `wikilookup runs one lookup and prints the rows, one per line.

Articles are given as language:Title (de:Berlin), categories as
language:Category:Title (en:Category:Physics). An empty result prints
nothing; a failed lookup prints the error and exits with status 1.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file (default $WIKILOOKUP_CONFIG)")
	root.PersistentFlags().BoolVar(&c.asJSON, "json", false, "print the result as JSON")

	root.AddCommand(
		c.articleCmd("synonyms", "Alternative names (redirects) of an article", (*sheet.Functions).WikiSynonyms),
		c.translateCmd(),
		c.expandCmd(),
		c.articleCmd("category-members", "Articles in a category", (*sheet.Functions).WikiCategoryMembers),
		c.articleCmd("subcategories", "Subcategories of a category", (*sheet.Functions).WikiSubcategories),
		c.articleCmd("inbound", "Articles linking to an article", (*sheet.Functions).WikiInbound),
		c.articleCmd("outbound", "Articles an article links to", (*sheet.Functions).WikiOutbound),
		c.articleCmd("mutual", "Articles linked in both directions", (*sheet.Functions).WikiMutual),
		c.coordinatesCmd(),
		c.articleCmd("facts", "Single-valued Wikidata facts of an article", (*sheet.Functions).WikidataFacts),
		c.suggestCmd(),
	)

	return root
}

func (c *cli) init() error {
	cfg, err := app.LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg, c.errOut)

	c.funcs = app.NewClients(cfg, logger).Sheet(logger)
	c.funcs.OnResult = func(op string, status lookup.Status, err error) {
		c.status, c.err = status, err
	}
	return nil
}

// articleCmd builds a subcommand taking one article or category reference.
func (c *cli) articleCmd(use, short string, fn func(*sheet.Functions, context.Context, string) any) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <reference>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(fn(c.funcs, cmd.Context(), args[0]))
		},
	}
}

func (c *cli) translateCmd() *cobra.Command {
	var (
		langs      []string
		asObject   bool
		skipHeader bool
	)
	cmd := &cobra.Command{
		Use:     "translate <article>",
		Short:   "Article title in other language editions",
		Example: "  wikilookup translate de:Berlin --langs fr,it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(c.funcs.WikiTranslate(cmd.Context(), args[0], langs, asObject, skipHeader))
		},
	}
	cmd.Flags().StringSliceVar(&langs, "langs", nil, "language codes to keep (default all)")
	cmd.Flags().BoolVar(&asObject, "object", false, "return a language to title object")
	cmd.Flags().BoolVar(&skipHeader, "skip-header", false, "print titles without the language column")
	return cmd
}

func (c *cli) expandCmd() *cobra.Command {
	var (
		langs    []string
		asObject bool
	)
	cmd := &cobra.Command{
		Use:     "expand <article>",
		Short:   "Translations plus the synonyms of each translation",
		Example: "  wikilookup expand en:Berlin --langs de",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(c.funcs.WikiExpand(cmd.Context(), args[0], langs, asObject))
		},
	}
	cmd.Flags().StringSliceVar(&langs, "langs", nil, "language codes to keep (default all)")
	cmd.Flags().BoolVar(&asObject, "object", false, "return a language to titles object")
	return cmd
}

func (c *cli) coordinatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coordinates <article>",
		Short: "Latitude and longitude of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := c.funcs.WikiGeoCoordinates(cmd.Context(), args[0])
			if point, ok := v.([]any); ok && !c.asJSON {
				// one row, not one value per line
				v = []any{point}
			}
			return c.run(v)
		},
	}
}

func (c *cli) suggestCmd() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "suggest <keyword>",
		Short: "Google autocomplete suggestions for a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(c.funcs.GoogleSuggest(cmd.Context(), args[0], lang))
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "interface language")
	return cmd
}

// run prints a sheet value, or the error when the lookup failed.
func (c *cli) run(v any) error {
	if v == sheet.Empty {
		if c.status != lookup.StatusFailed {
			return nil
		}
		if c.err == nil {
			return errors.New("lookup failed")
		}
		return c.err
	}

	if c.asJSON {
		return writeJSON(c.out, v)
	}
	return writeTable(c.out, v)
}
