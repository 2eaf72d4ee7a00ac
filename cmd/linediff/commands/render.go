package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"linediff/internal/config"
	"linediff/internal/render"
)

var (
	htmlOut  string
	pagePath string
	title    string
	cssPath  string
)

// render <doc.md>: convert Markdown to a standalone HTML page.
func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <doc.md>",
		Short: "Convert a Markdown document into a standalone HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]

			page := render.Page{Title: title}
			out := htmlOut
			css := cssPath
			if pagePath != "" {
				pc, err := config.LoadPage(pagePath)
				if err != nil {
					return err
				}
				if page.Title == "" {
					page.Title = pc.Title
				}
				if css == "" {
					css = pc.CSS
				}
				if out == "" {
					out = pc.Output
				}
			}
			if page.Title == "" {
				page.Title = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
			}
			if out == "" {
				out = strings.TrimSuffix(src, filepath.Ext(src)) + ".html"
			}
			if css != "" {
				body, err := wire.Files.ReadText(css)
				if err != nil {
					return fmt.Errorf("read %s: %w", css, err)
				}
				page.CSS = body
			}

			md, err := wire.Files.ReadText(src)
			if err != nil {
				return fmt.Errorf("read %s: %w", src, err)
			}
			html, err := render.Render([]byte(md), page)
			if err != nil {
				return err
			}
			if err := wire.Files.WriteText(out, html); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Printf("Rendered %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&htmlOut, "output", "o", "", "output HTML path (default input with .html)")
	cmd.Flags().StringVar(&pagePath, "config", "", "YAML page config (title, css, output)")
	cmd.Flags().StringVar(&title, "title", "", "page title (default input file name)")
	cmd.Flags().StringVar(&cssPath, "css", "", "stylesheet file to inline into the page")
	return cmd
}
