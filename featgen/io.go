// SPDX-License-Identifier: MIT

package featgen

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgleje/CRF/dict"
	"github.com/lgleje/CRF/idtable"
)

// Write persists the dictionary section (when a dictionary is configured)
// followed by the id table.
func (g *Generator) Write(w io.Writer) error {
	if g.dict != nil {
		if _, err := g.dict.WriteTo(w); err != nil {
			return fmt.Errorf("featgen: write dictionary: %w", err)
		}
	}
	if _, err := g.table.WriteTo(w); err != nil {
		return fmt.Errorf("featgen: write feature ids: %w", err)
	}

	return nil
}

// Read loads what Write produced. The dictionary section is expected exactly
// when the generator has a dictionary. The id table arrives frozen and is
// handed to every TableUser kind. The dictionary and table are replaced only
// when every section parses.
func (g *Generator) Read(r io.Reader) error {
	br := bufio.NewReader(r)
	var d *dict.Dictionary
	if g.dict != nil {
		var err error
		if d, err = dict.Read(br, g.model.NumStates()); err != nil {
			return fmt.Errorf("featgen: read dictionary: %w", err)
		}
	}
	t, err := idtable.Read(br)
	if err != nil {
		return fmt.Errorf("featgen: read feature ids: %w", err)
	}

	for _, k := range g.kinds {
		if u, ok := k.(TableUser); ok {
			if err := u.UseTable(t); err != nil {
				return fmt.Errorf("featgen: restore kind %s: %w", k.Name(), err)
			}
		}
	}

	if d != nil {
		g.dict = d
		g.shareDictionary()
	}
	g.setTable(t)
	g.logger.Info("feature ids loaded", slog.Int("features", t.Size()))

	return nil
}

// WriteFile writes the generator state to path.
func (g *Generator) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = g.Write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ReadFile reads the generator state from path.
func (g *Generator) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return g.Read(f)
}

// DisplayModel writes one "name label state weight" line per feature id,
// where weights is indexed by feature id.
func (g *Generator) DisplayModel(weights []float64, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for id, wt := range weights {
		d, err := g.table.Descriptor(id)
		if err != nil {
			return fmt.Errorf("featgen: display weight %d: %w", id, err)
		}
		if _, err = fmt.Fprintf(bw, "%s %d %d %g\n", d.Name(), g.model.LabelOf(d.Label), d.Label, wt); err != nil {
			return err
		}
	}

	return bw.Flush()
}
