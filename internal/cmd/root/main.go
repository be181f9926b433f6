package root

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/beccau/fix-mode/internal/decoder"
	"github.com/beccau/fix-mode/internal/dictionary"
	"github.com/beccau/fix-mode/internal/source"
	"github.com/beccau/fix-mode/internal/source/file"
	"github.com/beccau/fix-mode/internal/source/mock"
	"github.com/beccau/fix-mode/internal/source/stdin"
	"github.com/beccau/fix-mode/internal/viewer"
	"github.com/beccau/fix-mode/pkg/log"
)

const separator = "----------------------------------------"

func Run(cmd *cobra.Command, args []string) {
	store := buildStore()

	var src source.Source
	switch {
	case viper.GetBool("mock"):
		src = mock.New()
	case len(args) == 1:
		src = file.New(args[0], viper.GetBool("follow"))
	default:
		src = stdin.New()
	}

	// Start source
	if err := src.Start(context.Background()); err != nil {
		log.Fatal("failed to start log source", zap.Error(err))
	}

	if viper.GetBool("no-tui") {
		printMessages(os.Stdout, src, store)
	} else {
		v := viewer.New(src, store)

		err := v.Run()
		if err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

// buildStore assembles dictionary sources from --dict and --dict-dir and
// loads them. With neither given, the compiled-in FIX.4.4 subset is
// registered so common fields still resolve.
func buildStore() *dictionary.Store {
	sources := make(map[string]string)

	for _, entry := range viper.GetStringSlice("dict") {
		version, path, found := strings.Cut(entry, "=")
		if !found || version == "" || path == "" {
			log.Warn("ignoring malformed --dict entry, want VERSION=path", zap.String("entry", entry))
			continue
		}
		sources[version] = path
	}

	if dir := viper.GetString("dict-dir"); dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Warn("failed to read dictionary directory", zap.String("dir", dir), zap.Error(err))
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".xml") {
				continue
			}
			version := strings.TrimSuffix(e.Name(), ".xml")
			if _, ok := sources[version]; !ok {
				sources[version] = filepath.Join(dir, e.Name())
			}
		}
	}

	store := dictionary.Load(sources)
	if len(sources) == 0 || viper.GetBool("mock") {
		if _, ok := store.Lookup(dictionary.BuiltinVersion); !ok {
			store.Add(dictionary.BuiltinVersion, dictionary.Builtin())
		}
	}
	return store
}

// printMessages drains the source and writes each decoded message followed
// by a separator, until the source is exhausted.
func printMessages(w io.Writer, src source.Source, store *dictionary.Store) {
	for {
		lines, err := src.Read()
		if err != nil {
			log.Error("failed to read log source", zap.Error(err))
			return
		}
		printLines(w, lines, store)
		if len(lines) > 0 {
			continue
		}
		if !src.Connected() {
			// lines may have been buffered between the empty read and the
			// disconnect, drain once more before giving up
			lines, err := src.Read()
			if err != nil {
				log.Error("failed to read log source", zap.Error(err))
				return
			}
			printLines(w, lines, store)
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func printLines(w io.Writer, lines []string, store *dictionary.Store) {
	for _, line := range lines {
		out := decoder.DecodeLine(line, store)
		if len(out) == 0 {
			continue
		}
		for _, l := range out {
			fmt.Fprintln(w, l)
		}
		fmt.Fprintln(w, separator)
	}
}
