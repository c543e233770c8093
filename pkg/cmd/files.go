package cmd

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/pseudomuto/sqlfmt/pkg/reformat"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type pathParams struct {
	Paths     []string
	WriteBack bool
	Writer    io.Writer
	Settings  format.Settings
	Logger    *logrus.Logger
}

// formatPaths formats every SQL file named by p.Paths. Directories are
// searched recursively for .sql files.
//
// Files are formatted concurrently, but results are written in argument
// order (and lexicographical order within a directory). Nothing is written
// unless every file formats successfully.
func formatPaths(ctx context.Context, p pathParams) error {
	var files []string
	for _, path := range p.Paths {
		found, err := sqlFiles(path)
		if err != nil {
			return err
		}
		files = append(files, found...)
	}

	results := make([][]byte, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := formatFile(file, p.Settings)
			if err != nil {
				return err
			}

			results[i] = out
			p.Logger.WithField("file", file).Debug("formatted file")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, file := range files {
		if !p.WriteBack {
			if _, err := p.Writer.Write(results[i]); err != nil {
				return errors.Wrap(err, "failed to write formatted content to output")
			}
			continue
		}

		if err := writeIfChanged(file, results[i]); err != nil {
			return err
		}
	}

	return nil
}

// sqlFiles returns path itself when it is a file, or every .sql file below
// it when it is a directory.
func sqlFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), consts.SQLFileExt) {
			files = append(files, file)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no SQL files found in directory: %s", path)
	}

	return files, nil
}

// formatFile formats a single SQL file the same way filter mode formats
// standard input.
func formatFile(path string, settings format.Settings) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	var buf bytes.Buffer
	if err := reformat.Run(bytes.NewReader(content), &buf, reformat.Default, settings); err != nil {
		return nil, errors.Wrapf(err, "failed to format file: %s", path)
	}

	return buf.Bytes(), nil
}

func writeIfChanged(path string, content []byte) error {
	current, err := os.ReadFile(path)
	if err == nil && bytes.Equal(current, content) {
		return nil
	}

	if err := os.WriteFile(path, content, consts.ModeFile); err != nil {
		return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
	}

	return nil
}
