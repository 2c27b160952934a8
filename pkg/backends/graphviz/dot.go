package graphviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// DOTOptions configures the diagram.
type DOTOptions struct {
	// Detailed includes triangle and point counts in node labels.
	// When false, only the actor name is shown.
	Detailed bool

	// ShowHidden includes hidden actors, drawn greyed out.
	ShowHidden bool
}

// ToDOT converts a scene's object hierarchy to Graphviz DOT format. The
// scene is the root; each actor hangs off it, and edge actors hang off
// the actor of their parent object.
func ToDOT(sc *scene.Scene, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph scene {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse];\n", sc.ID, "scene "+sc.ID)

	// Edge actors attach to the actor owning their parent object.
	parentByObject := make(map[*scene.MeshObject]string)
	for _, a := range sc.Actors() {
		if a.Object != nil && !a.IsEdge() {
			parentByObject[a.Object] = a.ID
		}
	}

	for _, a := range sc.Actors() {
		if a.Hidden && !opts.ShowHidden {
			continue
		}
		attrs := fmtAttrs(a, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", a.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, a := range sc.Actors() {
		if a.Hidden && !opts.ShowHidden {
			continue
		}
		from := sc.ID
		if a.IsEdge() && a.Edge != nil && a.Edge.Parent != nil {
			if id, ok := parentByObject[a.Edge.Parent]; ok {
				from = id
			}
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", from, a.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(a *scene.Actor, opts DOTOptions) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(a, opts.Detailed))}
	if a.Style.Color != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", a.Style.Color))
	}
	switch {
	case a.Hidden:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	case a.IsEdge():
		attrs = append(attrs, "style=\"rounded,filled,dotted\"")
	}
	return attrs
}

func fmtLabel(a *scene.Actor, detailed bool) string {
	if !detailed {
		return a.Name
	}
	m := a.Mesh()
	if m == nil {
		return a.Name
	}
	return fmt.Sprintf("%s\ntriangles: %d\npoints: %d", a.Name, len(m.Triangles), len(m.Points))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the diagram scales
// to its container: origin at 0 0 and explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
