package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
)

const (
	// maxBaseStat is the highest base stat any pokemon has; bars scale to it
	maxBaseStat = 255
	barWidth    = 40
)

func newShowCmd(a *app) *cobra.Command {
	var (
		outDir    string
		noSprites bool
	)

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one pokemon's sprites and base stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			loaded, err := a.service.LoadPokemon(ctx, &pokedex.LoadPokemonInput{Name: args[0]})
			if err != nil {
				return err
			}
			pokemon := loaded.Pokemon

			fmt.Fprintf(w, "%s\n", pokemon.Name())
			if pokemon.HasBaseExperience() {
				fmt.Fprintf(w, "Base experience: %d\n", pokemon.BaseExperience())
			} else {
				fmt.Fprintln(w, "Base experience: unknown")
			}

			if !noSprites {
				for _, side := range []entities.SpriteSide{entities.SpriteFront, entities.SpriteBack} {
					if err := showSprite(cmd, a.service, pokemon, side, outDir); err != nil {
						return err
					}
				}
			}

			stats, err := a.service.GetStats(ctx, &pokedex.GetStatsInput{Pokemon: pokemon})
			if err != nil {
				return err
			}
			fmt.Fprintln(w)
			renderStats(w, stats.Stats)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory to save the sprites into")
	cmd.Flags().BoolVar(&noSprites, "no-sprites", false, "skip downloading sprites")

	return cmd
}

func showSprite(cmd *cobra.Command, service pokedex.Service, pokemon *entities.Pokemon, side entities.SpriteSide, outDir string) error {
	w := cmd.OutOrStdout()

	sprite, err := service.FetchSprite(cmd.Context(), &pokedex.FetchSpriteInput{Pokemon: pokemon, Side: side})
	if err != nil {
		return err
	}
	if !sprite.Available {
		fmt.Fprintf(w, "%-6s sprite: no image available\n", side)
		return nil
	}

	fmt.Fprintf(w, "%-6s sprite: %s (%s, %d bytes)\n", side, sprite.URL, sprite.ContentType, sprite.Size)
	if outDir == "" {
		return nil
	}

	fileName, err := spriteFileName(pokemon.Name(), side, sprite.ContentType)
	if err != nil {
		return err
	}
	path := filepath.Join(outDir, fileName)
	if err := saveImage(path, sprite.Image); err != nil {
		return err
	}
	fmt.Fprintf(w, "       saved to %s\n", path)
	return nil
}

// spriteFileName names a saved sprite after the pokemon. The name comes from
// the upstream payload, so anything that could leave the output directory is
// rejected.
func spriteFileName(name string, side entities.SpriteSide, contentType string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return "", errors.InvalidArgumentf("refusing to save sprite for unsafe pokemon name %q", name)
	}
	return fmt.Sprintf("%s_%s%s", name, side, imageExt(contentType)), nil
}

func saveImage(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func imageExt(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}

// renderStats draws the stats as a horizontal bar chart in record order
func renderStats(w io.Writer, stats *entities.StatsView) {
	width := len("total")
	for _, name := range stats.Names() {
		if len(name) > width {
			width = len(name)
		}
	}

	for _, stat := range stats.Entries() {
		fmt.Fprintf(w, "%-*s %4d %s\n", width, stat.Name, stat.Value, bar(stat.Value))
	}
	fmt.Fprintf(w, "%-*s %4d\n", width, "total", stats.Total())
}

func bar(value int) string {
	if value <= 0 {
		return ""
	}
	n := value * barWidth / maxBaseStat
	if n == 0 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("#", n)
}
