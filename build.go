package learnphoto

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"impractical.co/learnphoto/dom"
)

var (
	// ErrNoOutputDir is returned by Build when BuildOptions.OutputDir is
	// empty.
	ErrNoOutputDir = errors.New("an output directory is required")

	// ErrOutputOverlapsInput is returned by Build when cleaning the output
	// directory would delete its inputs, or when copying into it would
	// copy it into itself.
	ErrOutputOverlapsInput = errors.New("output directory overlaps an input directory")
)

// BuildOptions control where Build reads from and writes to.
type BuildOptions struct {
	// OutputDir is removed and recreated, then filled with the site.
	OutputDir string

	// HostDir, if set, holds hand-written host documents. Every .html
	// file in it gets its mount points filled; every other file is
	// copied as-is. If it's empty, a Shell is generated for each page
	// and the embedded stylesheet is written alongside them.
	//
	// OutputDir may be inside HostDir, and is skipped when HostDir is
	// read, but may not be HostDir or contain it.
	HostDir string

	// ImagesDir, if it exists, is copied to images/ in OutputDir. It may
	// not be inside OutputDir, nor contain it.
	ImagesDir string
}

// within reports whether path is dir or inside it. Both must be absolute.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// checkPaths resolves opts.OutputDir and makes sure building into it can't
// remove or recurse into the directories it reads from.
func checkPaths(opts BuildOptions) (string, error) {
	out, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return "", fmt.Errorf("error resolving %s: %w", opts.OutputDir, err)
	}
	if opts.HostDir != "" {
		host, err := filepath.Abs(opts.HostDir)
		if err != nil {
			return "", fmt.Errorf("error resolving %s: %w", opts.HostDir, err)
		}
		if within(host, out) {
			return "", fmt.Errorf("output %s, host documents %s: %w", opts.OutputDir, opts.HostDir, ErrOutputOverlapsInput)
		}
	}
	if opts.ImagesDir != "" {
		images, err := filepath.Abs(opts.ImagesDir)
		if err != nil {
			return "", fmt.Errorf("error resolving %s: %w", opts.ImagesDir, err)
		}
		if within(images, out) || within(out, images) {
			return "", fmt.Errorf("output %s, images %s: %w", opts.OutputDir, opts.ImagesDir, ErrOutputOverlapsInput)
		}
	}
	return out, nil
}

// Build writes the whole site for site into opts.OutputDir.
func Build(ctx context.Context, site *PhotoSite, opts BuildOptions) error {
	if opts.OutputDir == "" {
		return ErrNoOutputDir
	}
	absOut, err := checkPaths(opts)
	if err != nil {
		return err
	}
	log := Logger(ctx)

	log.InfoContext(ctx, "cleaning output directory", "dir", opts.OutputDir)
	if err := os.RemoveAll(opts.OutputDir); err != nil {
		return fmt.Errorf("error removing output directory %s: %w", opts.OutputDir, err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory %s: %w", opts.OutputDir, err)
	}

	if opts.HostDir == "" {
		err = buildGenerated(ctx, site, opts.OutputDir)
	} else {
		err = buildHosted(ctx, site, opts.HostDir, opts.OutputDir, absOut)
	}
	if err != nil {
		return err
	}

	if opts.ImagesDir == "" {
		return nil
	}
	if _, err := os.Stat(opts.ImagesDir); errors.Is(err, fs.ErrNotExist) {
		log.WarnContext(ctx, "images directory not found, skipping copy", "dir", opts.ImagesDir)
		return nil
	}
	dst := filepath.Join(opts.OutputDir, "images")
	log.InfoContext(ctx, "copying images", "from", opts.ImagesDir, "to", dst)
	if err := copyDir(opts.ImagesDir, dst); err != nil {
		return fmt.Errorf("error copying images: %w", err)
	}
	return nil
}

func buildGenerated(ctx context.Context, site *PhotoSite, outDir string) error {
	for _, kind := range Kinds() {
		doc, err := BuildDocument(ctx, site, kind.ID())
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, kind.File())
		if err := writeDocument(path, doc); err != nil {
			return err
		}
		Logger(ctx).InfoContext(ctx, "wrote page", "page", kind.ID(), "path", path)
	}
	path := filepath.Join(outDir, StylesheetName)
	if err := os.WriteFile(path, Stylesheet(), 0o644); err != nil { // #nosec G306
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// buildHosted fills every host document in hostDir and writes the results to
// outDir. absOut is outDir made absolute; if it's inside hostDir, it isn't
// read.
func buildHosted(ctx context.Context, site *PhotoSite, hostDir, outDir, absOut string) error {
	injector := NewInjector(site)
	return filepath.WalkDir(hostDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(hostDir, path)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", path, err)
		}
		dst := filepath.Join(outDir, rel)
		if d.IsDir() {
			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("error resolving %s: %w", path, err)
			}
			if abs == absOut {
				return fs.SkipDir
			}
			return os.MkdirAll(dst, 0o755)
		}
		if !strings.EqualFold(filepath.Ext(path), ".html") {
			return copyFile(path, dst)
		}

		src, err := os.Open(path) // #nosec G304
		if err != nil {
			return fmt.Errorf("error opening %s: %w", path, err)
		}
		doc, err := dom.Parse(src)
		src.Close()
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", path, err)
		}
		if err := injector.Apply(ctx, doc); err != nil {
			return fmt.Errorf("error injecting into %s: %w", path, err)
		}
		if err := writeDocument(dst, doc); err != nil {
			return err
		}
		Logger(ctx).InfoContext(ctx, "wrote page", "page", doc.PageID(), "path", dst)
		return nil
	})
}

func writeDocument(path string, doc *dom.Document) error {
	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	if err := doc.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", path, err)
	}
	return nil
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", path, err)
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304
	if err != nil {
		return fmt.Errorf("error opening %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", dst, err)
	}
	out, err := os.Create(dst) // #nosec G304
	if err != nil {
		return fmt.Errorf("error creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("error copying %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
