package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/render"
)

const actorInteractionCSS = `
    .actor { transition: stroke-width 0.15s ease; }
    .actor.highlight { stroke: #BB6EEE; stroke-width: 2; }`

const actorInteractionJS = `
    function highlight(id) {
      document.querySelectorAll('.actor').forEach(el => el.classList.toggle('highlight', el.dataset.actor === id));
    }
    function clearHighlight() {
      document.querySelectorAll('.actor').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.actor').forEach(el => {
      el.addEventListener('mouseenter', () => highlight(el.dataset.actor));
      el.addEventListener('mouseleave', clearHighlight);
    });`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title       string
	interactive bool
}

// WithTitle embeds a title element in the document.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithInteraction adds hover highlighting of actors.
func WithInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// RenderSVG renders a projected frame as an SVG document. Primitives
// are emitted in slice order, which [render.Frame.SortByDepth] has
// already arranged far to near.
func RenderSVG(f *render.Frame, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		f.Width, f.Height, f.Width, f.Height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", xmlEscaper.Replace(r.title))
	}
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", f.Background)

	for _, p := range f.Polygons {
		if p.Opacity <= 0 {
			// Opacity 0 is invisible.
			continue
		}
		fmt.Fprintf(&buf, `  <polygon class="actor" data-actor="%s" points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"`,
			p.ActorID,
			p.Points[0].X, p.Points[0].Y,
			p.Points[1].X, p.Points[1].Y,
			p.Points[2].X, p.Points[2].Y,
			p.Fill)
		if p.Opacity < 1 {
			fmt.Fprintf(&buf, ` fill-opacity="%.3f"`, p.Opacity)
		}
		if p.Name != "" {
			fmt.Fprintf(&buf, `><title>%s</title></polygon>`+"\n", xmlEscaper.Replace(p.Name))
		} else {
			buf.WriteString("/>\n")
		}
	}

	for _, s := range f.Segments {
		fmt.Fprintf(&buf, `  <line class="actor" data-actor="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
			s.ActorID, s.From.X, s.From.Y, s.To.X, s.To.Y, s.Color, s.Width)
	}

	for _, l := range f.Labels {
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" fill="%s" font-family="sans-serif" font-size="12">%s</text>`+"\n",
			l.Pos.X, l.Pos.Y, l.Color, xmlEscaper.Replace(l.Text))
	}

	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", actorInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", actorInteractionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
