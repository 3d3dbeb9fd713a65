// Command facade measures window-to-wall ratios of segmented building
// meshes.
//
// Each input is a PLY mesh whose vertex colors mark wall, window, roof,
// and background classes according to a palette file. For each mesh,
// facade writes a JSON annotation with the overall WWR and the position,
// orientation, area, and WWR of every wall.
package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/aclements/facade"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("facade: ")
	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "facade",
		Short:         "Measure window-to-wall ratios of segmented building meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(analyzeCmd(), maskCmd())
	return root
}

type analyzeFlags struct {
	palette  string
	outDir   string
	jobs     int
	cacheDir string
	chart    bool
}

func analyzeCmd() *cobra.Command {
	var fl analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze [flags] model.ply...",
		Short: "Write a WWR annotation for each mesh",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeAll(&fl, args)
		},
	}
	cmd.Flags().StringVarP(&fl.palette, "palette", "p", "", "class color `file` (JSON or YAML)")
	cmd.Flags().StringVarP(&fl.outDir, "out", "o", ".", "output `directory` for annotations")
	cmd.Flags().IntVarP(&fl.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of meshes to analyze in parallel")
	cmd.Flags().StringVar(&fl.cacheDir, "cache", ".cache", "cache `directory`; empty disables caching")
	cmd.Flags().BoolVar(&fl.chart, "chart", false, "also write a per-wall WWR chart as PNG")
	cmd.MarkFlagRequired("palette")
	return cmd
}

func analyzeAll(fl *analyzeFlags, paths []string) error {
	bases, err := outputBases(paths)
	if err != nil {
		return err
	}
	pal, err := facade.ReadPaletteFile(fl.palette)
	if err != nil {
		return fmt.Errorf("reading palette %s: %w", fl.palette, err)
	}
	if err := os.MkdirAll(fl.outDir, 0777); err != nil {
		return err
	}
	var cache *resultCache
	if fl.cacheDir != "" {
		cache = &resultCache{dir: fl.cacheDir}
	}

	var g errgroup.Group
	if fl.jobs > 0 {
		g.SetLimit(fl.jobs)
	}
	for i, path := range paths {
		path, base := path, bases[i]
		g.Go(func() error {
			if err := analyzeOne(fl, cache, pal, path, base); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// outputBases returns the output file name, without extension, for each
// input path. Inputs that would write the same output are rejected.
func outputBases(paths []string) ([]string, error) {
	bases := make([]string, len(paths))
	seen := make(map[string]string)
	for i, path := range paths {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if prev, ok := seen[base]; ok {
			return nil, fmt.Errorf("%s and %s would both write %s.json", prev, path, base)
		}
		seen[base] = path
		bases[i] = base
	}
	return bases, nil
}

func analyzeOne(fl *analyzeFlags, cache *resultCache, pal *facade.Palette, path, base string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var a *facade.Annotation
	var key string
	if cache != nil {
		key = cache.key(data, pal)
		var ok bool
		if a, ok = cache.load(key); ok {
			log.Printf("%s: using cached result", path)
		}
	}
	if a == nil {
		mesh, err := facade.ReadPLY(bytes.NewReader(data))
		if err != nil {
			return err
		}
		m, err := facade.NewSegmentedModel(mesh, pal)
		if err != nil {
			return err
		}
		a = m.Annotation()
		if cache != nil {
			cache.store(key, a)
		}
	}

	log.Printf("%s: %d walls, WWR %.3f", path, len(a.Walls), a.Overall.WWR)
	if a.Overall.WWR > 1 {
		log.Printf("%s: warning: window area exceeds wall area (WWR %.3f)", path, a.Overall.WWR)
	}
	for i, w := range a.Walls {
		if w.WWR > 1 {
			log.Printf("%s: warning: wall %d WWR %.3f exceeds 1", path, i, w.WWR)
		}
	}

	out, err := os.Create(filepath.Join(fl.outDir, base+".json"))
	if err != nil {
		return err
	}
	if err := a.WriteJSON(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if fl.chart {
		if err := saveWallChart(filepath.Join(fl.outDir, base+".png"), base, a); err != nil {
			return fmt.Errorf("writing chart: %w", err)
		}
	}
	return nil
}

func maskCmd() *cobra.Command {
	var palette string
	cmd := &cobra.Command{
		Use:   "mask [flags] in-image out.png",
		Short: "Snap a rendered segmentation mask to the palette colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := facade.ReadPaletteFile(palette)
			if err != nil {
				return fmt.Errorf("reading palette %s: %w", palette, err)
			}
			return quantizeMask(pal, args[0], args[1])
		},
	}
	cmd.Flags().StringVarP(&palette, "palette", "p", "", "class color `file` (JSON or YAML)")
	cmd.MarkFlagRequired("palette")
	return cmd
}

func quantizeMask(pal *facade.Palette, inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()
	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	q, err := facade.QuantizeImage(img, pal)
	if err != nil {
		return err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := png.Encode(out, q); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
